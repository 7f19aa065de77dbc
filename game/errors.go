package game

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

// ErrGameOver is returned by every call made after the game has ended.
var ErrGameOver = errors.New("game is over")

// ValidationError is a rejected command. State is untouched and Msg is
// meant to be shown to the player as is.
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string { return e.Msg }

func invalid(format string, args ...any) error {
	return &ValidationError{Msg: fmt.Sprintf(format, args...)}
}

// IsValidation reports whether err is a rejected command.
func IsValidation(err error) bool {
	var v *ValidationError
	return errors.As(err, &v)
}

func money(v float64) string {
	d := decimal.NewFromFloat(v).Round(2)
	if d.IsNegative() {
		return "-$" + d.Neg().StringFixed(2)
	}
	return "$" + d.StringFixed(2)
}
