package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/dayanaadylkhanova/sales-stats/internal/entity"
	"github.com/dayanaadylkhanova/sales-stats/internal/service"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

type Store struct {
	pool *pgxpool.Pool
	log  *zap.Logger
}

func New(ctx context.Context, dsn string, log *zap.Logger) (*Store, error) {
	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		return nil, err
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping postgres: %w", err)
	}
	return &Store{pool: pool, log: log}, nil
}

func (s *Store) Init(ctx context.Context) error {
	const ddl = `
CREATE TABLE IF NOT EXISTS sales (
	id          BIGSERIAL    PRIMARY KEY,
	sale_date   TIMESTAMPTZ  NOT NULL,
	amount      NUMERIC      NOT NULL,
	seller_id   BIGINT       NOT NULL,
	seller_name VARCHAR(100) NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_sales_sale_date ON sales (sale_date);
`
	_, err := s.pool.Exec(ctx, ddl)
	return err
}

// Create implements service.SaleStore
func (s *Store) Create(ctx context.Context, in entity.SaleInput) (entity.Sale, error) {
	const q = `
INSERT INTO sales (sale_date, amount, seller_id, seller_name)
VALUES ($1, $2::text::numeric, $3, $4)
RETURNING id, sale_date, amount::text, seller_id, seller_name`

	var out entity.Sale
	err := pgx.BeginFunc(ctx, s.pool, func(tx pgx.Tx) error {
		var amount string
		if err := tx.QueryRow(ctx, q, in.SaleDate, in.Amount.String(), in.SellerID, in.SellerName).
			Scan(&out.ID, &out.SaleDate, &amount, &out.SellerID, &out.SellerName); err != nil {
			return err
		}
		d, err := decimal.NewFromString(amount)
		if err != nil {
			return err
		}
		out.Amount = d
		out.SaleDate = out.SaleDate.UTC()
		return nil
	})
	if err != nil {
		return entity.Sale{}, err
	}
	return out, nil
}

// FindStatisticsByPeriod implements service.SaleStore
func (s *Store) FindStatisticsByPeriod(ctx context.Context, start, end time.Time, days int64) ([]service.StatisticsRow, error) {
	const q = `
SELECT seller_name,
       COUNT(*) AS total_sales,
       COUNT(*)::float8 / $3 AS average_sales_per_day
FROM sales
WHERE sale_date BETWEEN $1 AND $2
GROUP BY seller_name
ORDER BY total_sales DESC, seller_name ASC`

	out := make([]service.StatisticsRow, 0)
	err := pgx.BeginTxFunc(ctx, s.pool, pgx.TxOptions{AccessMode: pgx.ReadOnly}, func(tx pgx.Tx) error {
		rows, err := tx.Query(ctx, q, start, end, float64(days))
		if err != nil {
			return err
		}
		defer rows.Close()
		for rows.Next() {
			var r service.StatisticsRow
			if err := rows.Scan(&r.SellerName, &r.TotalSales, &r.AverageSalesPerDay); err != nil {
				return err
			}
			out = append(out, r)
		}
		return rows.Err()
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// DeleteAll empties the table and restarts the id sequence. Test support only.
func (s *Store) DeleteAll(ctx context.Context) error {
	_, err := s.pool.Exec(ctx, `TRUNCATE sales RESTART IDENTITY`)
	return err
}

func (s *Store) Close() { s.pool.Close() }
