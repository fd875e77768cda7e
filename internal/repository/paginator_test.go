package repository

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	apperrors "github.com/Payphone-Digital/catalog/internal/errors"
	"github.com/Payphone-Digital/catalog/internal/query"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{
		Conn:                 sqlDB,
		PreferSimpleProtocol: true,
	}), &gorm.Config{
		Logger:                 gormlogger.Default.LogMode(gormlogger.Silent),
		SkipDefaultTransaction: true,
	})
	require.NoError(t, err)

	return db, mock
}

func TestPaginateCountAndFetchShareTransaction(t *testing.T) {
	db, mock := newMockDB(t)

	where := query.Where{Clauses: []query.ColumnClause{
		{Column: "category", Conditions: []query.Condition{
			{Operator: query.OpEquals, Value: "voucher"},
		}},
	}}
	order := query.Order{{Column: "price", Direction: query.DirectionDesc}}

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT count(*) FROM "products"`)).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(45))
	mock.ExpectQuery(`SELECT \* FROM "products" WHERE .+ ORDER BY .+`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "category", "price"}).
			AddRow(1, "Prepaid Voucher 100K", "voucher", 100000).
			AddRow(2, "Prepaid Voucher 50K", "voucher", 50000))
	mock.ExpectCommit()

	type row struct {
		ID       uint
		Name     string
		Category string
		Price    float64
	}
	var rows []row

	total, err := NewPaginator(db).Paginate(context.Background(), "products", &rows, where, order, 0, 20)

	require.NoError(t, err)
	assert.Equal(t, int64(45), total)
	require.Len(t, rows, 2)
	assert.Equal(t, "Prepaid Voucher 100K", rows[0].Name)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPaginateNonPositiveBoundsOmitLimitAndOffset(t *testing.T) {
	db, mock := newMockDB(t)

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT count(*) FROM "customers"`)).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
	// No LIMIT and no OFFSET may appear in the fetch statement.
	mock.ExpectQuery(`^SELECT \* FROM "customers"$`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))
	mock.ExpectCommit()

	var rows []struct{ ID uint }
	total, err := NewPaginator(db).Paginate(context.Background(), "customers", &rows, query.Where{}, nil, -20, 0)

	require.NoError(t, err)
	assert.Equal(t, int64(0), total)
	assert.Empty(t, rows)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPaginateCountErrorRollsBack(t *testing.T) {
	db, mock := newMockDB(t)

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT count(*) FROM "products"`)).
		WillReturnError(errors.New("connection reset"))
	mock.ExpectRollback()

	var rows []struct{ ID uint }
	_, err := NewPaginator(db).Paginate(context.Background(), "products", &rows, query.Where{}, nil, 0, 20)

	require.Error(t, err)
	// Infrastructure faults pass through unclassified.
	assert.False(t, apperrors.IsDomainError(err))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPaginateStoreRejectionBecomesMalformedQuery(t *testing.T) {
	db, mock := newMockDB(t)

	pgErr := &pgconn.PgError{Code: "22P02", Message: `invalid input syntax for type numeric: "abc"`}

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT count(*) FROM "products"`)).
		WillReturnError(pgErr)
	mock.ExpectRollback()

	var rows []struct{ ID uint }
	_, err := NewPaginator(db).Paginate(context.Background(), "products", &rows, query.Where{}, nil, 0, 20)

	require.Error(t, err)
	domainErr := apperrors.GetDomainError(err)
	require.NotNil(t, domainErr)
	assert.Equal(t, "MALFORMED_QUERY", domainErr.Code)
	// The store diagnostic stays out of the presentable message.
	assert.Equal(t, "malformed query", apperrors.GetErrorMessage(err))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestClassifyStoreError(t *testing.T) {
	tests := []struct {
		name          string
		err           error
		wantMalformed bool
	}{
		{"data exception", &pgconn.PgError{Code: "22P02"}, true},
		{"undefined column", &pgconn.PgError{Code: "42703"}, true},
		{"syntax error", &pgconn.PgError{Code: "42601"}, true},
		{"too many connections", &pgconn.PgError{Code: "53300"}, false},
		{"plain error", errors.New("dial tcp: connection refused"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			classified := classifyStoreError(tt.err)

			if tt.wantMalformed {
				domainErr := apperrors.GetDomainError(classified)
				require.NotNil(t, domainErr)
				assert.Equal(t, "MALFORMED_QUERY", domainErr.Code)
				assert.ErrorIs(t, classified, tt.err)
			} else {
				assert.Equal(t, tt.err, classified)
			}
		})
	}
}
