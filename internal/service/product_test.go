package service

import (
	"context"
	"net/url"
	"testing"

	"github.com/Payphone-Digital/catalog/internal/dto"
	apperrors "github.com/Payphone-Digital/catalog/internal/errors"
	"github.com/Payphone-Digital/catalog/internal/model"
	"github.com/Payphone-Digital/catalog/internal/query"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// fakeProductStore records the descriptor it was called with and returns
// canned rows.
type fakeProductStore struct {
	lastWhere query.Where
	lastOrder query.Order
	lastSkip  int
	lastTake  int

	products []model.Product
	total    int64
	listErr  error

	bySKU map[string]*model.Product
}

func (f *fakeProductStore) List(_ context.Context, where query.Where, order query.Order, skip, take int) ([]model.Product, int64, error) {
	f.lastWhere = where
	f.lastOrder = order
	f.lastSkip = skip
	f.lastTake = take
	if f.listErr != nil {
		return nil, 0, f.listErr
	}
	return f.products, f.total, nil
}

func (f *fakeProductStore) GetByID(_ context.Context, id uint) (*model.Product, error) {
	for i := range f.products {
		if f.products[i].ID == id {
			return &f.products[i], nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeProductStore) GetBySKU(_ context.Context, sku string) (*model.Product, error) {
	if p, ok := f.bySKU[sku]; ok {
		return p, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeProductStore) Create(_ context.Context, product *model.Product) error {
	product.ID = 99
	return nil
}

func newProductService(store *fakeProductStore) *ProductService {
	return &ProductService{
		repo:            store,
		whitelist:       query.NewWhitelist(model.ProductFilterable, model.ProductSortable),
		defaultPageSize: 20,
	}
}

func TestProductListRunsPipeline(t *testing.T) {
	store := &fakeProductStore{
		products: []model.Product{
			{Model: gorm.Model{ID: 1}, Name: "Prepaid Voucher 100K", SKU: "VCH-100"},
		},
		total: 45,
	}
	svc := newProductService(store)

	values := url.Values{
		"filter.price":    {"gte:18"},
		"filter.password": {"equals:x"},
		"orderBy":         {"price:desc", "bogus:asc"},
		"page":            {"2"},
	}

	result, err := svc.List(context.Background(), values)
	require.NoError(t, err)

	// The store saw only the validated descriptor.
	require.Len(t, store.lastWhere.Clauses, 1)
	assert.Equal(t, "price", store.lastWhere.Clauses[0].Column)
	assert.Equal(t, query.Condition{Operator: query.OpGte, Value: float64(18)}, store.lastWhere.Clauses[0].Conditions[0])
	require.Len(t, store.lastOrder, 1)
	assert.Equal(t, "price", store.lastOrder[0].Column)
	assert.Equal(t, 20, store.lastSkip)
	assert.Equal(t, 20, store.lastTake)

	// Metadata echoes only what survived validation.
	assert.Equal(t, int64(45), result.Meta.TotalCount)
	assert.Equal(t, 2, result.Meta.Page)
	assert.Equal(t, 3, result.Meta.LastPage)
	assert.Equal(t, []string{"price:desc"}, result.Meta.OrderBy)
	assert.Equal(t, map[string][]string{"price": {"gte:18"}}, result.Meta.Filter)
	assert.NotContains(t, result.Meta.Filter, "password")

	records, ok := result.Records.([]dto.ProductResponse)
	require.True(t, ok)
	require.Len(t, records, 1)
	assert.Equal(t, "VCH-100", records[0].SKU)
}

func TestProductListDefaults(t *testing.T) {
	store := &fakeProductStore{total: 0}
	svc := newProductService(store)

	result, err := svc.List(context.Background(), url.Values{})
	require.NoError(t, err)

	assert.Equal(t, 0, store.lastSkip)
	assert.Equal(t, 20, store.lastTake)
	assert.Equal(t, 1, result.Meta.Page)
	assert.Equal(t, 20, result.Meta.Limit)
	assert.Equal(t, 0, result.Meta.LastPage)

	// Zero matches still yield an empty records slice, not nil.
	records, ok := result.Records.([]dto.ProductResponse)
	require.True(t, ok)
	assert.Empty(t, records)
}

func TestProductListStoreErrorPassesThrough(t *testing.T) {
	storeErr := apperrors.WrapError(apperrors.ErrMalformedQuery, assert.AnError)
	store := &fakeProductStore{listErr: storeErr}
	svc := newProductService(store)

	_, err := svc.List(context.Background(), url.Values{})

	require.Error(t, err)
	assert.Equal(t, storeErr, err)
}

func TestProductGetByIDNotFound(t *testing.T) {
	svc := newProductService(&fakeProductStore{})

	_, err := svc.GetByID(context.Background(), 1)

	assert.ErrorIs(t, err, apperrors.ErrProductNotFound)
}

func TestProductCreateRejectsDuplicateSKU(t *testing.T) {
	existing := &model.Product{Model: gorm.Model{ID: 1}, SKU: "VCH-100"}
	store := &fakeProductStore{bySKU: map[string]*model.Product{"VCH-100": existing}}
	svc := newProductService(store)

	_, err := svc.Create(context.Background(), &dto.CreateProductRequest{
		Name: "Prepaid Voucher 100K", SKU: "VCH-100", Category: "voucher", Price: 100000,
	})

	assert.ErrorIs(t, err, apperrors.ErrSKUExists)
}

func TestProductCreate(t *testing.T) {
	svc := newProductService(&fakeProductStore{})

	resp, err := svc.Create(context.Background(), &dto.CreateProductRequest{
		Name: "SIM Starter Pack", SKU: "SIM-001", Category: "hardware", Price: 25000, Stock: 40, Active: true,
	})

	require.NoError(t, err)
	assert.Equal(t, uint(99), resp.ID)
	assert.Equal(t, "SIM-001", resp.SKU)
}
