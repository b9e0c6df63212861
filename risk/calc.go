package risk

import "github.com/shopspring/decimal"

// Cost prices a buy of shares at price the way the ledger settles it: the
// fee is charged on the gross and added to it.
func Cost(shares int64, price, feeRate float64) (gross, fee, total decimal.Decimal) {
	gross = decimal.NewFromInt(shares).Mul(decimal.NewFromFloat(price))
	fee = gross.Mul(decimal.NewFromFloat(feeRate))
	return gross, fee, gross.Add(fee)
}
