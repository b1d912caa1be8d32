package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/dayanaadylkhanova/sales-stats/internal/entity"
	"github.com/dayanaadylkhanova/sales-stats/internal/service"
)

// Store keeps sales in a map. Used for local runs and HTTP tests.
type Store struct {
	mu     sync.RWMutex
	nextID int64
	m      map[int64]entity.Sale
}

func New() *Store {
	return &Store{m: make(map[int64]entity.Sale)}
}

// Create implements service.SaleStore
func (s *Store) Create(_ context.Context, in entity.SaleInput) (entity.Sale, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nextID++
	sale := entity.Sale{
		ID:         s.nextID,
		SaleDate:   in.SaleDate,
		Amount:     in.Amount,
		SellerID:   in.SellerID,
		SellerName: in.SellerName,
	}
	s.m[sale.ID] = sale
	return sale, nil
}

// FindStatisticsByPeriod implements service.SaleStore
func (s *Store) FindStatisticsByPeriod(_ context.Context, start, end time.Time, days int64) ([]service.StatisticsRow, error) {
	s.mu.RLock()
	counts := make(map[string]int64)
	for _, sale := range s.m {
		if sale.SaleDate.Before(start) || sale.SaleDate.After(end) {
			continue
		}
		counts[sale.SellerName]++
	}
	s.mu.RUnlock()

	out := make([]service.StatisticsRow, 0, len(counts))
	for name, n := range counts {
		out = append(out, service.StatisticsRow{
			SellerName:         name,
			TotalSales:         n,
			AverageSalesPerDay: service.AveragePerDay(n, days),
		})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].TotalSales != out[j].TotalSales {
			return out[i].TotalSales > out[j].TotalSales
		}
		return out[i].SellerName < out[j].SellerName
	})
	return out, nil
}

// DeleteAll drops every sale and restarts ids. Test support only.
func (s *Store) DeleteAll(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.m = make(map[int64]entity.Sale)
	s.nextID = 0
	return nil
}

func (s *Store) Close() {}
