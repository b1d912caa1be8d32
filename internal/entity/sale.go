package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

func init() {
	// amounts go over the wire as JSON numbers, not quoted strings
	decimal.MarshalJSONWithoutQuotes = true
}

// Sale is one persisted transaction.
type Sale struct {
	ID         int64           `json:"id"`
	SaleDate   time.Time       `json:"saleDate"`
	Amount     decimal.Decimal `json:"amount"`
	SellerID   int64           `json:"sellerId"`
	SellerName string          `json:"sellerName"`
}

// SaleInput carries the fields of a sale before an id is assigned.
type SaleInput struct {
	SaleDate   time.Time
	Amount     decimal.Decimal
	SellerID   int64
	SellerName string
}

// CreateSaleRequest is the body of POST /api/sales. Pointer fields tell
// "missing" apart from zero values.
type CreateSaleRequest struct {
	SaleDate   *time.Time       `json:"saleDate" validate:"required,notfuture"`
	Amount     *decimal.Decimal `json:"amount" validate:"required,gt=0"`
	SellerID   *int64           `json:"sellerId" validate:"required"`
	SellerName string           `json:"sellerName" validate:"notblank,max=100"`
}

// Input converts a validated request. It must not be called before validation.
func (r CreateSaleRequest) Input() SaleInput {
	return SaleInput{
		SaleDate:   r.SaleDate.UTC(),
		Amount:     *r.Amount,
		SellerID:   *r.SellerID,
		SellerName: r.SellerName,
	}
}
