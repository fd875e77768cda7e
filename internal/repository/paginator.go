package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	apperrors "github.com/Payphone-Digital/catalog/internal/errors"
	"github.com/Payphone-Digital/catalog/internal/query"
	"github.com/Payphone-Digital/catalog/pkg/logger"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// Paginator executes a validated query descriptor against one table as a
// consistent count-and-fetch pair.
type Paginator struct {
	db *gorm.DB
}

func NewPaginator(db *gorm.DB) *Paginator {
	return &Paginator{db: db}
}

// Paginate counts the rows matching where and fetches one ordered page into
// dest. Both statements run inside a single read-only repeatable-read
// transaction so the count and the returned rows observe the same snapshot;
// without that, writes landing between the two statements would make
// totalCount and the page mutually inconsistent.
//
// A non-positive take fetches without a limit and a non-positive skip
// without an offset, mirroring what the store does with absent bounds.
func (p *Paginator) Paginate(ctx context.Context, table string, dest any, where query.Where, order query.Order, skip, take int) (int64, error) {
	logger.DebugWithContext(ctx, "Executing paginated query").
		String("table", table).
		Int("skip", skip).
		Int("take", take).
		Log()

	start := time.Now()
	var total int64

	err := p.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := applyWhere(tx.Table(table), where).Count(&total).Error; err != nil {
			return err
		}

		fetch := applyOrder(applyWhere(tx.Table(table), where), order)
		if take > 0 {
			fetch = fetch.Limit(take)
		}
		if skip > 0 {
			fetch = fetch.Offset(skip)
		}
		return fetch.Find(dest).Error
	}, &sql.TxOptions{Isolation: sql.LevelRepeatableRead, ReadOnly: true})

	duration := time.Since(start)

	if err != nil {
		classified := classifyStoreError(err)
		logger.ErrorWithContext(ctx, "Paginated query failed").
			String("table", table).
			Duration(duration).
			Err(err).
			Log()
		return 0, classified
	}

	logger.DebugWithContext(ctx, "Paginated query completed").
		String("table", table).
		Int64("total", total).
		Duration(duration).
		Log()

	return total, nil
}

// classifyStoreError separates queries the store rejected as invalid from
// infrastructure faults. SQLSTATE class 22 covers data exceptions (for
// example a string compared against a numeric column) and class 42 syntax
// and access-rule violations; both become the generic malformed-query error
// so no store diagnostic leaks to the caller. Everything else propagates
// unchanged.
func classifyStoreError(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && len(pgErr.Code) >= 2 {
		switch pgErr.Code[:2] {
		case "22", "42":
			return apperrors.WrapError(apperrors.ErrMalformedQuery, err)
		}
	}
	return err
}
