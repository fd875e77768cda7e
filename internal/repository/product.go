package repository

import (
	"context"
	"time"

	"github.com/Payphone-Digital/catalog/internal/model"
	"github.com/Payphone-Digital/catalog/internal/query"
	ctxutil "github.com/Payphone-Digital/catalog/pkg/context"
	"github.com/Payphone-Digital/catalog/pkg/logger"
	"gorm.io/gorm"
)

type ProductRepository struct {
	db        *gorm.DB
	paginator *Paginator
}

func NewProductRepository(db *gorm.DB) *ProductRepository {
	return &ProductRepository{db: db, paginator: NewPaginator(db)}
}

// List runs a validated descriptor against the products table and returns
// one page plus the matching total.
func (r *ProductRepository) List(ctx context.Context, where query.Where, order query.Order, skip, take int) ([]model.Product, int64, error) {
	ctx = ctxutil.NewContext(ctx, "repository", "ProductList")

	var products []model.Product
	total, err := r.paginator.Paginate(ctx, "products", &products, where, order, skip, take)
	if err != nil {
		return nil, 0, err
	}
	return products, total, nil
}

func (r *ProductRepository) GetByID(ctx context.Context, id uint) (*model.Product, error) {
	ctx = ctxutil.NewContext(ctx, "repository", "ProductGetByID")

	start := time.Now()
	var product model.Product
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&product)

	if result.Error != nil {
		logger.ErrorWithContext(ctx, "Failed to get product by ID").
			Int("product_id", int(id)).
			Duration(time.Since(start)).
			Err(result.Error).
			Log()
		return nil, result.Error
	}

	return &product, nil
}

func (r *ProductRepository) GetBySKU(ctx context.Context, sku string) (*model.Product, error) {
	ctx = ctxutil.NewContext(ctx, "repository", "ProductGetBySKU")

	var product model.Product
	result := r.db.WithContext(ctx).Where("sku = ?", sku).First(&product)
	if result.Error != nil {
		return nil, result.Error
	}
	return &product, nil
}

func (r *ProductRepository) Create(ctx context.Context, product *model.Product) error {
	ctx = ctxutil.NewContext(ctx, "repository", "ProductCreate")

	start := time.Now()
	result := r.db.WithContext(ctx).Create(product)

	if result.Error != nil {
		logger.ErrorWithContext(ctx, "Failed to create product").
			String("sku", product.SKU).
			Duration(time.Since(start)).
			Err(result.Error).
			Log()
		return result.Error
	}

	logger.InfoWithContext(ctx, "Product created successfully").
		String("sku", product.SKU).
		Int("product_id", int(product.ID)).
		Duration(time.Since(start)).
		Log()

	return nil
}
