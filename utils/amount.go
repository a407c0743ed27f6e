package utils

import (
	"github.com/shopspring/decimal"
)

// DisplayAmount converts a smallest-unit integer amount into display units
// with the given number of decimals, e.g. 1500000000000000000 with 18
// decimals renders as "1.5". The engine itself only ever accounts in
// smallest units; this is presentation only.
func DisplayAmount(amount uint64, decimals int32) string {
	return decimal.NewFromUint64(amount).Shift(-decimals).String()
}
