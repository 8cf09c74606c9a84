package market

import (
	"context"
	"errors"
)

// ErrPriceUnavailable indicates the external market-data source could not
// produce a reference price. Settlement treats it as "abort this cycle".
var ErrPriceUnavailable = errors.New("reference price unavailable")

// PriceSource looks up daily reference prices for a ticker symbol.
type PriceSource interface {
	ClosePrice(ctx context.Context, symbol string) (float64, error)
	OpenPrice(ctx context.Context, symbol string) (float64, error)
}
