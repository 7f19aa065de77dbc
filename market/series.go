package market

import (
	"math"

	"github.com/rustyeddy/lifesim/player"
	"github.com/rustyeddy/lifesim/refdata"
	"github.com/rustyeddy/lifesim/rng"
)

// MinPrice keeps generated prices strictly positive.
const MinPrice = 0.01

// Series is a monthly price table for one symbol keyed by YYYY-MM.
type Series struct {
	Symbol string
	Name   string
	Prices map[string]float64
}

func (s *Series) At(ym string) (float64, bool) {
	p, ok := s.Prices[ym]
	return p, ok
}

// Generate builds months of prices starting at (year, month). Supplied
// history wins for any month it covers; other months follow
// price·(1 + trend/12 + vol/√12·N(0,1)). Nothing is produced before the
// listing month. A split divides the generated price from its month on.
func Generate(sec refdata.Security, splits []refdata.Split, year, month, months int, src rng.Source) *Series {
	out := &Series{Symbol: sec.Symbol, Name: sec.Name, Prices: make(map[string]float64, months)}

	ratios := map[string]float64{}
	for _, sp := range splits {
		if sp.Symbol == sec.Symbol {
			ratios[player.YearMonth(sp.Year, sp.Month)] = sp.Ratio
		}
	}

	drift := sec.Trend / 12
	shock := sec.Volatility / math.Sqrt(12)

	var price float64
	listed := false
	y, m := year, month
	for i := 0; i < months; i++ {
		ym := player.YearMonth(y, m)
		if sec.ListedFrom == "" || ym >= sec.ListedFrom {
			if listed {
				price *= 1 + drift + shock*src.NormFloat64()
			} else {
				price = sec.StartPrice
				listed = true
			}
			if r, ok := ratios[ym]; ok {
				price /= r
			}
			price = math.Max(MinPrice, price)
			if h, ok := sec.History[ym]; ok {
				price = h
			}
			out.Prices[ym] = price
		}
		y, m = player.NextMonth(y, m)
	}
	return out
}
