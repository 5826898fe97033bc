package pagination_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/swapsdesk/tradebook/internal/utils/pagination"
)

func TestTokenRoundTrip(t *testing.T) {
	token, err := pagination.EncodeToken(pagination.TradeCursor{LastTradeID: 4242})
	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	cursor, err := pagination.DecodeToken(token)
	assert.NoError(t, err)
	assert.Equal(t, int64(4242), cursor.LastTradeID)
}

func TestDecodeToken_Invalid(t *testing.T) {
	for _, token := range []string{"not base64!!", "bm90IGpzb24="} {
		t.Run(token, func(t *testing.T) {
			_, err := pagination.DecodeToken(token)
			assert.Error(t, err)
		})
	}
}
