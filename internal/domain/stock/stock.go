// Package stock defines the instrument catalog contract consumed by the
// purchase flow.
package stock

import (
	"context"
	"errors"

	vo "github.com/famvest-inc/famvest/internal/domain/payment/valueobjects"
)

// ErrInstrumentNotFound is returned for unknown symbols.
var ErrInstrumentNotFound = errors.New("instrument not found")

// Instrument is a tradable stock as presented by the catalog.
type Instrument struct {
	Symbol        string
	Name          string
	UnitPrice     vo.Money
	ChangePercent float64
	MarketCap     string
}

// Catalog looks up instruments by symbol.
type Catalog interface {
	Get(ctx context.Context, symbol string) (*Instrument, error)
	List(ctx context.Context) ([]*Instrument, error)
}
