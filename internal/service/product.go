package service

import (
	"context"
	"errors"
	"net/url"

	"github.com/Payphone-Digital/catalog/internal/dto"
	apperrors "github.com/Payphone-Digital/catalog/internal/errors"
	"github.com/Payphone-Digital/catalog/internal/model"
	"github.com/Payphone-Digital/catalog/internal/query"
	"github.com/Payphone-Digital/catalog/internal/repository"
	ctxutil "github.com/Payphone-Digital/catalog/pkg/context"
	"github.com/Payphone-Digital/catalog/pkg/logger"
	"gorm.io/gorm"
)

// productStore is the slice of the product repository the service needs.
type productStore interface {
	List(ctx context.Context, where query.Where, order query.Order, skip, take int) ([]model.Product, int64, error)
	GetByID(ctx context.Context, id uint) (*model.Product, error)
	GetBySKU(ctx context.Context, sku string) (*model.Product, error)
	Create(ctx context.Context, product *model.Product) error
}

type ProductService struct {
	repo            productStore
	whitelist       query.Whitelist
	defaultPageSize int
}

func NewProductService(repo *repository.ProductRepository, defaultPageSize int) *ProductService {
	return &ProductService{
		repo:            repo,
		whitelist:       query.NewWhitelist(model.ProductFilterable, model.ProductSortable),
		defaultPageSize: defaultPageSize,
	}
}

// List runs the sanitization pipeline over the raw query map and executes
// the resulting descriptor. Invalid filter and order tokens never fail the
// request; they are dropped during clause building and simply absent from
// the returned metadata. Only store execution can fail here.
func (s *ProductService) List(ctx context.Context, values url.Values) (query.PageResult, error) {
	ctx = ctxutil.NewContext(ctx, "service", "ProductList")

	req := query.Parse(values, s.defaultPageSize)
	where, acceptedFilters := query.BuildFilter(req.Filters, s.whitelist)
	order, acceptedOrders := query.BuildOrder(req.Orders, s.whitelist)

	logger.DebugWithContext(ctx, "Listing products").
		Int("page", req.Page).
		Int("take", req.Take).
		Int("filter_columns", len(where.Clauses)).
		Int("order_fields", len(order)).
		Log()

	products, total, err := s.repo.List(ctx, where, order, req.Skip, req.Take)
	if err != nil {
		logger.ErrorWithContext(ctx, "Failed to list products").
			Int("page", req.Page).
			Err(err).
			Log()
		return query.PageResult{}, err
	}

	records := make([]dto.ProductResponse, 0, len(products))
	for _, product := range products {
		records = append(records, toProductResponse(&product))
	}

	accepted := query.Accepted{Filters: acceptedFilters, Orders: acceptedOrders}
	return query.NewPageResult(records, total, req, accepted), nil
}

func (s *ProductService) GetByID(ctx context.Context, id uint) (*dto.ProductResponse, error) {
	ctx = ctxutil.NewContext(ctx, "service", "ProductGetByID")

	product, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrProductNotFound
		}
		return nil, apperrors.WrapError(apperrors.ErrInternal, err)
	}

	response := toProductResponse(product)
	return &response, nil
}

func (s *ProductService) Create(ctx context.Context, req *dto.CreateProductRequest) (*dto.ProductResponse, error) {
	ctx = ctxutil.NewContext(ctx, "service", "ProductCreate")

	if _, err := s.repo.GetBySKU(ctx, req.SKU); err == nil {
		return nil, apperrors.ErrSKUExists
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperrors.WrapError(apperrors.ErrInternal, err)
	}

	product := &model.Product{
		Name:       req.Name,
		SKU:        req.SKU,
		Category:   req.Category,
		Price:      req.Price,
		Stock:      req.Stock,
		Active:     req.Active,
		Attributes: req.Attributes,
	}

	if err := s.repo.Create(ctx, product); err != nil {
		return nil, apperrors.WrapError(apperrors.ErrInternal, err)
	}

	response := toProductResponse(product)
	return &response, nil
}

func toProductResponse(product *model.Product) dto.ProductResponse {
	return dto.ProductResponse{
		ID:         product.ID,
		Name:       product.Name,
		SKU:        product.SKU,
		Category:   product.Category,
		Price:      product.Price,
		Stock:      product.Stock,
		Active:     product.Active,
		Attributes: product.Attributes,
		CreatedAt:  product.CreatedAt,
		UpdatedAt:  product.UpdatedAt,
	}
}
