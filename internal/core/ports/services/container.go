package services

// ServiceContainer aggregates the service facades for route registration.
type ServiceContainer struct {
	Trade          TradeSvcFacade
	Reporting      TradeReportingSvcFacade
	AdditionalInfo AdditionalInfoSvcFacade
	User           UserSvcFacade
	RefData        RefDataSvcFacade
}
