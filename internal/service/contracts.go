package service

//go:generate mockgen -source=contracts.go -destination=mock_contracts_test.go -package=service

import (
	"context"
	"time"

	"github.com/dayanaadylkhanova/sales-stats/internal/entity"
)

// SalesPort is what the transport layer needs from the service.
type SalesPort interface {
	CreateSale(ctx context.Context, req entity.CreateSaleRequest) (entity.Sale, error)
	SellerStatistics(ctx context.Context, start time.Time, end *time.Time) ([]entity.SellerStatistic, error)
}

// SaleStore — durable storage of sales plus the grouped range query.
type SaleStore interface {
	Create(ctx context.Context, in entity.SaleInput) (entity.Sale, error)
	// FindStatisticsByPeriod groups sales with start <= sale_date <= end by
	// seller name. An empty slice means no sales in the window.
	FindStatisticsByPeriod(ctx context.Context, start, end time.Time, days int64) ([]StatisticsRow, error)
}

// StatisticsRow — one group as produced by the store.
type StatisticsRow struct {
	SellerName         string
	TotalSales         int64
	AverageSalesPerDay float64
}
