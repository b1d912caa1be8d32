package entity

// SellerStatistic aggregates the sales of one seller name over a window.
type SellerStatistic struct {
	SellerName         string  `json:"sellerName"`
	TotalSales         int64   `json:"totalSales"`
	AverageSalesPerDay float64 `json:"averageSalesPerDay"`
}

type ErrorResponse struct {
	Error  string       `json:"error"`
	Fields []FieldError `json:"fields,omitempty"`
}

type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}
