// Package catalog serves the static instrument data set the app's invest
// screens are built on.
package catalog

import (
	"context"
	_ "embed"
	"encoding/json"
	"fmt"
	"math"
	"sort"
	"strings"

	vo "github.com/famvest-inc/famvest/internal/domain/payment/valueobjects"
	"github.com/famvest-inc/famvest/internal/domain/stock"
)

//go:embed stocks.json
var stocksJSON []byte

type stockEntry struct {
	Symbol        string  `json:"symbol"`
	Name          string  `json:"name"`
	Price         float64 `json:"price"`
	ChangePercent float64 `json:"changePercent"`
	MarketCap     string  `json:"marketCap"`
}

type stocksFile struct {
	Trending []stockEntry `json:"trending"`
}

// Static is an instrument catalog backed by the embedded data set.
type Static struct {
	bySymbol map[string]*stock.Instrument
	ordered  []*stock.Instrument
}

func NewStatic() (*Static, error) {
	var file stocksFile
	if err := json.Unmarshal(stocksJSON, &file); err != nil {
		return nil, fmt.Errorf("failed to parse embedded stock data: %w", err)
	}

	c := &Static{bySymbol: make(map[string]*stock.Instrument, len(file.Trending))}
	for _, entry := range file.Trending {
		instrument := &stock.Instrument{
			Symbol:        entry.Symbol,
			Name:          entry.Name,
			UnitPrice:     vo.NewMoney(int64(math.Round(entry.Price*100)), vo.DefaultCurrency),
			ChangePercent: entry.ChangePercent,
			MarketCap:     entry.MarketCap,
		}
		c.bySymbol[entry.Symbol] = instrument
		c.ordered = append(c.ordered, instrument)
	}
	sort.Slice(c.ordered, func(i, j int) bool {
		return c.ordered[i].Symbol < c.ordered[j].Symbol
	})

	return c, nil
}

func (c *Static) Get(ctx context.Context, symbol string) (*stock.Instrument, error) {
	instrument, ok := c.bySymbol[strings.ToUpper(strings.TrimSpace(symbol))]
	if !ok {
		return nil, stock.ErrInstrumentNotFound
	}
	return instrument, nil
}

func (c *Static) List(ctx context.Context) ([]*stock.Instrument, error) {
	out := make([]*stock.Instrument, len(c.ordered))
	copy(out, c.ordered)
	return out, nil
}
