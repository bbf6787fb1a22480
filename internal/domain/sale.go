package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Transaction representa uma linha de venda já validada
type Transaction struct {
	StaffID   string
	Timestamp time.Time
	Products  []ProductLine
	Amount    decimal.Decimal
}

type ProductLine struct {
	ProductID string
	Quantity  int
}
