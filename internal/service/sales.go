package service

import (
	"context"
	"time"

	"github.com/dayanaadylkhanova/sales-stats/internal/entity"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
)

const day = 24 * time.Hour

type Sales struct {
	log       *zap.Logger
	store     SaleStore
	now       func() time.Time
	validator *validator.Validate
}

func NewSales(log *zap.Logger, store SaleStore) *Sales {
	s := &Sales{log: log, store: store, now: time.Now}
	// s.now is read lazily so a swapped clock also applies to validation
	s.validator = newValidator(func() time.Time { return s.now() })
	return s
}

// CreateSale validates the request and persists it. Store errors are
// returned as they are.
func (s *Sales) CreateSale(ctx context.Context, req entity.CreateSaleRequest) (entity.Sale, error) {
	if err := s.validate(req); err != nil {
		return entity.Sale{}, err
	}
	sale, err := s.store.Create(ctx, req.Input())
	if err != nil {
		s.log.Error("create sale", zap.Error(err))
		return entity.Sale{}, err
	}
	s.log.Debug("sale created",
		zap.Int64("id", sale.ID),
		zap.Int64("seller_id", sale.SellerID),
		zap.String("amount", sale.Amount.String()),
	)
	return sale, nil
}

// SellerStatistics reports per-seller totals for [start, end]. A nil end
// means now.
func (s *Sales) SellerStatistics(ctx context.Context, start time.Time, end *time.Time) ([]entity.SellerStatistic, error) {
	var to time.Time
	if end != nil {
		to = *end
	} else {
		to = s.now()
		s.log.Info("end date not set, defaulting to now", zap.Time("end", to))
	}

	days := InclusiveDays(start, to)
	if days <= 0 {
		return nil, ErrInvalidRange
	}

	rows, err := s.store.FindStatisticsByPeriod(ctx, start, to, days)
	if err != nil {
		s.log.Error("find statistics", zap.Error(err))
		return nil, err
	}
	if len(rows) == 0 {
		return nil, ErrNotFound
	}

	out := make([]entity.SellerStatistic, 0, len(rows))
	for _, r := range rows {
		out = append(out, entity.SellerStatistic{
			SellerName:         r.SellerName,
			TotalSales:         r.TotalSales,
			AverageSalesPerDay: r.AverageSalesPerDay,
		})
	}
	return out, nil
}

// InclusiveDays counts whole days between start and end, plus one: a window
// inside a single day counts as 1. Partial days are truncated toward zero.
func InclusiveDays(start, end time.Time) int64 {
	return int64(end.Sub(start)/day) + 1
}

// AveragePerDay is the shared definition of the per-day average used by
// every store.
func AveragePerDay(total, days int64) float64 {
	return float64(total) / float64(days)
}
