package game

import (
	"fmt"
	"math"

	"github.com/rustyeddy/lifesim/player"
)

const (
	TradeFeeRate = 0.001
	MinTradeFee  = 1.0
)

// TradeFee is charged on every buy and sell: 0.1% of notional, at least $1.
func TradeFee(notional float64) float64 {
	return math.Max(MinTradeFee, notional*TradeFeeRate)
}

func (g *Game) stockPrice(symbol string) (float64, error) {
	if _, ok := g.Data.Stock(symbol); !ok {
		return 0, invalid("Unknown stock %q", symbol)
	}
	p, ok := g.Market.StockPrice(symbol, g.State.YearMonth())
	if !ok {
		return 0, invalid("%s is not trading in %s", symbol, g.State.YearMonth())
	}
	return p, nil
}

func (g *Game) cryptoPrice(symbol string) (float64, error) {
	if _, ok := g.Data.Crypto(symbol); !ok {
		return 0, invalid("Unknown crypto %q", symbol)
	}
	p, ok := g.Market.CryptoPrice(symbol, g.State.YearMonth())
	if !ok {
		return 0, invalid("%s does not exist yet in %s", symbol, g.State.YearMonth())
	}
	return p, nil
}

// BuyStock buys whole shares at this month's price.
func (g *Game) BuyStock(symbol string, shares int) (string, error) {
	if g.Over() {
		return "", ErrGameOver
	}
	if shares <= 0 {
		return "", invalid("Number of shares must be positive")
	}
	price, err := g.stockPrice(symbol)
	if err != nil {
		return "", err
	}
	s := g.State
	notional := price * float64(shares)
	fee := TradeFee(notional)
	if s.Portfolio.Cash < notional+fee {
		return "", invalid("Not enough cash: %d %s costs %s including fees", shares, symbol, money(notional+fee))
	}

	h := s.Portfolio.Stocks[symbol]
	h.Shares += float64(shares)
	h.TotalCost += notional
	s.Portfolio.Stocks[symbol] = h
	g.ledger.Record(s, player.Expense, notional+fee, fmt.Sprintf("Bought %d %s", shares, symbol), "investment")
	return fmt.Sprintf("Bought %d shares of %s at %s (fee %s)", shares, symbol, money(price), money(fee)), nil
}

// SellStock sells whole shares. Cost basis falls in proportion and the
// holding is dropped once empty.
func (g *Game) SellStock(symbol string, shares int) (string, error) {
	if g.Over() {
		return "", ErrGameOver
	}
	if shares <= 0 {
		return "", invalid("Number of shares must be positive")
	}
	price, err := g.stockPrice(symbol)
	if err != nil {
		return "", err
	}
	s := g.State
	h, ok := s.Portfolio.Stocks[symbol]
	if !ok || h.Shares < float64(shares) {
		return "", invalid("You only hold %g shares of %s", h.Shares, symbol)
	}
	notional := price * float64(shares)
	fee := TradeFee(notional)

	basis := h.TotalCost * float64(shares) / h.Shares
	h.Shares -= float64(shares)
	h.TotalCost -= basis
	if h.Shares <= 0 {
		delete(s.Portfolio.Stocks, symbol)
	} else {
		s.Portfolio.Stocks[symbol] = h
	}
	g.ledger.Record(s, player.Income, notional-fee, fmt.Sprintf("Sold %d %s", shares, symbol), "investment")
	return fmt.Sprintf("Sold %d shares of %s at %s (gain %s)", shares, symbol, money(price), money(notional-basis-fee)), nil
}

// BuyCrypto buys a fractional amount of coin.
func (g *Game) BuyCrypto(symbol string, amount float64) (string, error) {
	if g.Over() {
		return "", ErrGameOver
	}
	if amount <= 0 {
		return "", invalid("Amount must be positive")
	}
	price, err := g.cryptoPrice(symbol)
	if err != nil {
		return "", err
	}
	s := g.State
	notional := price * amount
	fee := TradeFee(notional)
	if s.Portfolio.Cash < notional+fee {
		return "", invalid("Not enough cash: %g %s costs %s including fees", amount, symbol, money(notional+fee))
	}
	s.Portfolio.Crypto[symbol] += amount
	g.ledger.Record(s, player.Expense, notional+fee, fmt.Sprintf("Bought %g %s", amount, symbol), "investment")
	return fmt.Sprintf("Bought %g %s at %s", amount, symbol, money(price)), nil
}

func (g *Game) SellCrypto(symbol string, amount float64) (string, error) {
	if g.Over() {
		return "", ErrGameOver
	}
	if amount <= 0 {
		return "", invalid("Amount must be positive")
	}
	price, err := g.cryptoPrice(symbol)
	if err != nil {
		return "", err
	}
	s := g.State
	held := s.Portfolio.Crypto[symbol]
	if held < amount {
		return "", invalid("You only hold %g %s", held, symbol)
	}
	notional := price * amount
	fee := TradeFee(notional)
	if held-amount <= 0 {
		delete(s.Portfolio.Crypto, symbol)
	} else {
		s.Portfolio.Crypto[symbol] = held - amount
	}
	g.ledger.Record(s, player.Income, notional-fee, fmt.Sprintf("Sold %g %s", amount, symbol), "investment")
	return fmt.Sprintf("Sold %g %s at %s", amount, symbol, money(price)), nil
}

// Account is one of the three places money is kept.
type Account int

const (
	Cash Account = iota
	Bank
	Savings
)

func (a Account) String() string {
	switch a {
	case Bank:
		return "bank"
	case Savings:
		return "savings"
	}
	return "cash"
}

func (g *Game) balance(a Account) *float64 {
	p := &g.State.Portfolio
	switch a {
	case Bank:
		return &p.Bank
	case Savings:
		return &p.Savings
	}
	return &p.Cash
}

// Transfer moves money between cash, bank and savings. Moving money
// between accounts is not income or spending and leaves no history record.
func (g *Game) Transfer(from, to Account, amount float64) (string, error) {
	if g.Over() {
		return "", ErrGameOver
	}
	if amount <= 0 {
		return "", invalid("Amount must be positive")
	}
	if from == to {
		return "", invalid("Pick two different accounts")
	}
	src, dst := g.balance(from), g.balance(to)
	if *src < amount {
		return "", invalid("Not enough in %s: you have %s", from, money(*src))
	}
	*src -= amount
	*dst += amount
	return fmt.Sprintf("Moved %s from %s to %s", money(amount), from, to), nil
}

// Deposit moves cash into the bank.
func (g *Game) Deposit(amount float64) (string, error) { return g.Transfer(Cash, Bank, amount) }

// Withdraw moves money from the bank back to cash.
func (g *Game) Withdraw(amount float64) (string, error) { return g.Transfer(Bank, Cash, amount) }
