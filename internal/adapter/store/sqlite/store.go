package sqlite

import (
	"context"
	"time"

	"github.com/dayanaadylkhanova/sales-stats/internal/entity"
	"github.com/dayanaadylkhanova/sales-stats/internal/service"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// saleRow is the table layout. Amount is kept as text so it round-trips
// exactly; timestamps are stored in UTC so range comparisons hold.
type saleRow struct {
	ID         int64           `gorm:"primaryKey;autoIncrement"`
	SaleDate   time.Time       `gorm:"not null;index:idx_sales_sale_date"`
	Amount     decimal.Decimal `gorm:"type:text;not null"`
	SellerID   int64           `gorm:"not null"`
	SellerName string          `gorm:"size:100;not null"`
}

func (saleRow) TableName() string { return "sales" }

type Store struct {
	db  *gorm.DB
	log *zap.Logger
}

// New opens (or creates) the database file at dsn.
func New(dsn string, log *zap.Logger) (*Store, error) {
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{Logger: newGormLogger(log)})
	if err != nil {
		return nil, err
	}
	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	// sqlite serialises writers anyway
	sqlDB.SetMaxOpenConns(1)
	return &Store{db: db, log: log}, nil
}

func (s *Store) Init(ctx context.Context) error {
	return s.db.WithContext(ctx).AutoMigrate(&saleRow{})
}

// Create implements service.SaleStore
func (s *Store) Create(ctx context.Context, in entity.SaleInput) (entity.Sale, error) {
	row := saleRow{
		SaleDate:   in.SaleDate.UTC(),
		Amount:     in.Amount,
		SellerID:   in.SellerID,
		SellerName: in.SellerName,
	}
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Create(&row).Error
	})
	if err != nil {
		return entity.Sale{}, err
	}
	return entity.Sale{
		ID:         row.ID,
		SaleDate:   row.SaleDate,
		Amount:     row.Amount,
		SellerID:   row.SellerID,
		SellerName: row.SellerName,
	}, nil
}

// FindStatisticsByPeriod implements service.SaleStore
func (s *Store) FindStatisticsByPeriod(ctx context.Context, start, end time.Time, days int64) ([]service.StatisticsRow, error) {
	var groups []struct {
		SellerName string
		TotalSales int64
	}
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Model(&saleRow{}).
			Select("seller_name, COUNT(*) AS total_sales").
			Where("sale_date BETWEEN ? AND ?", start.UTC(), end.UTC()).
			Group("seller_name").
			Order("total_sales DESC, seller_name ASC").
			Scan(&groups).Error
	})
	if err != nil {
		return nil, err
	}

	out := make([]service.StatisticsRow, 0, len(groups))
	for _, g := range groups {
		out = append(out, service.StatisticsRow{
			SellerName:         g.SellerName,
			TotalSales:         g.TotalSales,
			AverageSalesPerDay: service.AveragePerDay(g.TotalSales, days),
		})
	}
	return out, nil
}

// DeleteAll removes every sale. Test support only.
func (s *Store) DeleteAll(ctx context.Context) error {
	return s.db.WithContext(ctx).Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(&saleRow{}).Error
}

func (s *Store) Close() {
	if sqlDB, err := s.db.DB(); err == nil {
		_ = sqlDB.Close()
	}
}
