// Package pagination implements opaque keyset pagination tokens.
package pagination

import (
	"encoding/base64"
	"encoding/json"
	"fmt"
)

// TradeCursor marks the position after the last trade of a page. Listing
// orders by business key, so the key alone identifies the position.
type TradeCursor struct {
	LastTradeID int64 `json:"lastTradeID"`
}

// EncodeToken serializes a cursor into an opaque URL-safe token.
func EncodeToken(cursor TradeCursor) (string, error) {
	raw, err := json.Marshal(cursor)
	if err != nil {
		return "", fmt.Errorf("marshalling pagination cursor: %w", err)
	}
	return base64.URLEncoding.EncodeToString(raw), nil
}

// DecodeToken deserializes an opaque token back into a cursor.
func DecodeToken(token string) (TradeCursor, error) {
	var cursor TradeCursor
	raw, err := base64.URLEncoding.DecodeString(token)
	if err != nil {
		return cursor, fmt.Errorf("invalid pagination token: %w", err)
	}
	if err := json.Unmarshal(raw, &cursor); err != nil {
		return cursor, fmt.Errorf("invalid pagination token: %w", err)
	}
	return cursor, nil
}
