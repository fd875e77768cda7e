package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/Payphone-Digital/catalog/internal/query"
	"github.com/Payphone-Digital/catalog/internal/repository"
	"github.com/Payphone-Digital/catalog/internal/service"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

var pgErrUndefinedColumn = pgconn.PgError{
	Code:    "42703",
	Message: `column "secret" does not exist`,
}

func newProductTestServer(t *testing.T) (*gin.Engine, sqlmock.Sqlmock) {
	t.Helper()
	gin.SetMode(gin.TestMode)

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

	handler := NewProductHandler(service.NewProductService(repository.NewProductRepository(db), 20))

	router := gin.New()
	router.GET("/products", handler.List)
	router.GET("/products/:id", handler.GetByID)

	return router, mock
}

func TestProductListEndpoint(t *testing.T) {
	router, mock := newProductTestServer(t)

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT count(*) FROM "products"`)).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(45))
	mock.ExpectQuery(`SELECT \* FROM "products"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "sku", "category", "price", "stock", "active"}).
			AddRow(1, "Prepaid Voucher 100K", "VCH-100", "voucher", 100000, 180, true))
	mock.ExpectCommit()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/products?filter.price=gte:50000&filter.secret=equals:x&orderBy=price:desc&orderBy=bogus:asc&page=2", nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var page query.PageResult
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &page))

	assert.Equal(t, int64(45), page.Meta.TotalCount)
	assert.Equal(t, 2, page.Meta.Page)
	assert.Equal(t, 20, page.Meta.Limit)
	assert.Equal(t, 3, page.Meta.LastPage)
	assert.Equal(t, []string{"price:desc"}, page.Meta.OrderBy)
	assert.Equal(t, map[string][]string{"price": {"gte:50000"}}, page.Meta.Filter)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestProductListEndpointStoreRejection(t *testing.T) {
	router, mock := newProductTestServer(t)

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT count(*) FROM "products"`)).
		WillReturnError(&pgErrUndefinedColumn)
	mock.ExpectRollback()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/products", nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusBadRequest, w.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	// Only the generic domain message goes out, never the store diagnostic.
	assert.Equal(t, "malformed query", body["details"])
	assert.NotContains(t, w.Body.String(), "does not exist")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestProductGetByIDInvalidParam(t *testing.T) {
	router, _ := newProductTestServer(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/products/abc", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestProductGetByIDNotFound(t *testing.T) {
	router, mock := newProductTestServer(t)

	mock.ExpectQuery(`SELECT \* FROM "products" WHERE id = \$1`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/products/42", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}
