// Package market prices everything the character can buy or hold: stocks
// and crypto from monthly series, homes from history or a random drift,
// and cars by depreciation.
package market

import (
	"math"

	"github.com/rustyeddy/lifesim/player"
	"github.com/rustyeddy/lifesim/refdata"
	"github.com/rustyeddy/lifesim/rng"
)

const (
	HomeDriftMinPct = -3
	HomeDriftMaxPct = 5
	HomeFloor       = 0.8
)

// Home is the current market for one property definition.
type Home struct {
	Def   refdata.Property
	Price float64
	Rent  float64
}

type Model struct {
	stocks  map[string]*Series
	cryptos map[string]*Series
	splits  []refdata.Split
	homes   []*Home
	history *refdata.RealEstateHistory
}

// New generates every price series for months starting at (year, month)
// and seeds home prices from their base values.
func New(data *refdata.Data, year, month, months int, src rng.Source) *Model {
	m := &Model{
		stocks:  map[string]*Series{},
		cryptos: map[string]*Series{},
		splits:  data.Splits,
		history: data.RealEstate,
	}
	for _, s := range data.Stocks {
		m.stocks[s.Symbol] = Generate(s, data.Splits, year, month, months, src)
	}
	for _, c := range data.Cryptos {
		m.cryptos[c.Symbol] = Generate(c, nil, year, month, months, src)
	}
	for _, p := range data.Properties {
		m.homes = append(m.homes, &Home{Def: p, Price: p.BasePrice, Rent: p.BaseRent})
	}
	m.applyHistory(player.YearMonth(year, month))
	return m
}

func (m *Model) StockPrice(symbol, ym string) (float64, bool) {
	s, ok := m.stocks[symbol]
	if !ok {
		return 0, false
	}
	return s.At(ym)
}

func (m *Model) CryptoPrice(symbol, ym string) (float64, bool) {
	s, ok := m.cryptos[symbol]
	if !ok {
		return 0, false
	}
	return s.At(ym)
}

func (m *Model) Home(id string) (*Home, bool) {
	for _, h := range m.homes {
		if h.Def.ID == id {
			return h, true
		}
	}
	return nil, false
}

// SplitsAt returns the splits effective in (year, month).
func (m *Model) SplitsAt(year, month int) []refdata.Split {
	var out []refdata.Split
	for _, s := range m.splits {
		if s.Year == year && s.Month == month {
			out = append(out, s)
		}
	}
	return out
}

type SplitResult struct {
	Split     refdata.Split
	OldShares float64
	NewShares float64
}

// ApplySplits multiplies held shares by each split ratio. Total cost is
// unchanged, so cost per share falls by the same ratio.
func ApplySplits(s *player.State, splits []refdata.Split) []SplitResult {
	var out []SplitResult
	for _, sp := range splits {
		h, ok := s.Portfolio.Stocks[sp.Symbol]
		if !ok || h.Shares <= 0 {
			continue
		}
		r := SplitResult{Split: sp, OldShares: h.Shares}
		h.Shares *= sp.Ratio
		r.NewShares = h.Shares
		s.Portfolio.Stocks[sp.Symbol] = h
		out = append(out, r)
	}
	return out
}

// UpdateHomes moves home prices into (year, month). With history for that
// month prices follow the index; otherwise each price and rent drifts by
// an independent U_int(−3, 5)% floored at 80% of its base.
func (m *Model) UpdateHomes(year, month int, src rng.Source) {
	if m.applyHistory(player.YearMonth(year, month)) {
		return
	}
	for _, h := range m.homes {
		pct := rng.IntRange(src, HomeDriftMinPct, HomeDriftMaxPct)
		h.Price = math.Max(h.Def.BasePrice*HomeFloor, h.Price*(1+float64(pct)/100))
		pct = rng.IntRange(src, HomeDriftMinPct, HomeDriftMaxPct)
		h.Rent = math.Max(h.Def.BaseRent*HomeFloor, h.Rent*(1+float64(pct)/100))
	}
}

func (m *Model) applyHistory(ym string) bool {
	if m.history == nil {
		return false
	}
	idx, ok := m.history.Prices[ym]
	if !ok {
		return false
	}
	rent, hasRent := m.history.Rents[ym]
	for _, h := range m.homes {
		mult := 1.0
		if v, ok := m.history.TypeMultipliers[h.Def.Type]; ok {
			mult = v
		}
		h.Price = idx * mult
		if hasRent {
			h.Rent = rent * mult
		}
	}
	return true
}

// Revalue marks owned homes to market and depreciates cars by a twelfth of
// their annual rate.
func (m *Model) Revalue(s *player.State) {
	for i := range s.Properties {
		if h, ok := m.Home(s.Properties[i].PropertyID); ok {
			s.Properties[i].Value = h.Price
		}
	}
	for i := range s.Cars {
		c := &s.Cars[i]
		c.Value = math.Max(0, c.Value*(1-c.Depreciation/12))
	}
}

// HoldingsValue is the market value of all stock and crypto at ym.
func (m *Model) HoldingsValue(s *player.State, ym string) float64 {
	var v float64
	for sym, h := range s.Portfolio.Stocks {
		if p, ok := m.StockPrice(sym, ym); ok {
			v += h.Shares * p
		}
	}
	for sym, amt := range s.Portfolio.Crypto {
		if p, ok := m.CryptoPrice(sym, ym); ok {
			v += amt * p
		}
	}
	return v
}
