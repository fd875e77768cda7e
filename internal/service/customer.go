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

type customerStore interface {
	List(ctx context.Context, where query.Where, order query.Order, skip, take int) ([]model.Customer, int64, error)
	GetByID(ctx context.Context, id uint) (*model.Customer, error)
	GetByEmail(ctx context.Context, email string) (*model.Customer, error)
	Create(ctx context.Context, customer *model.Customer) error
}

type CustomerService struct {
	repo            customerStore
	whitelist       query.Whitelist
	defaultPageSize int
}

func NewCustomerService(repo *repository.CustomerRepository, defaultPageSize int) *CustomerService {
	return &CustomerService{
		repo:            repo,
		whitelist:       query.NewWhitelist(model.CustomerFilterable, model.CustomerSortable),
		defaultPageSize: defaultPageSize,
	}
}

// List runs the sanitization pipeline over the raw query map and executes
// the resulting descriptor against the customers collection.
func (s *CustomerService) List(ctx context.Context, values url.Values) (query.PageResult, error) {
	ctx = ctxutil.NewContext(ctx, "service", "CustomerList")

	req := query.Parse(values, s.defaultPageSize)
	where, acceptedFilters := query.BuildFilter(req.Filters, s.whitelist)
	order, acceptedOrders := query.BuildOrder(req.Orders, s.whitelist)

	customers, total, err := s.repo.List(ctx, where, order, req.Skip, req.Take)
	if err != nil {
		logger.ErrorWithContext(ctx, "Failed to list customers").
			Int("page", req.Page).
			Err(err).
			Log()
		return query.PageResult{}, err
	}

	records := make([]dto.CustomerResponse, 0, len(customers))
	for _, customer := range customers {
		records = append(records, toCustomerResponse(&customer))
	}

	accepted := query.Accepted{Filters: acceptedFilters, Orders: acceptedOrders}
	return query.NewPageResult(records, total, req, accepted), nil
}

func (s *CustomerService) GetByID(ctx context.Context, id uint) (*dto.CustomerResponse, error) {
	ctx = ctxutil.NewContext(ctx, "service", "CustomerGetByID")

	customer, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrCustomerNotFound
		}
		return nil, apperrors.WrapError(apperrors.ErrInternal, err)
	}

	response := toCustomerResponse(customer)
	return &response, nil
}

func (s *CustomerService) Create(ctx context.Context, req *dto.CreateCustomerRequest) (*dto.CustomerResponse, error) {
	ctx = ctxutil.NewContext(ctx, "service", "CustomerCreate")

	if _, err := s.repo.GetByEmail(ctx, req.Email); err == nil {
		return nil, apperrors.ErrEmailExists
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperrors.WrapError(apperrors.ErrInternal, err)
	}

	customer := &model.Customer{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Phone:     req.Phone,
		City:      req.City,
		Active:    req.Active,
	}

	if err := s.repo.Create(ctx, customer); err != nil {
		return nil, apperrors.WrapError(apperrors.ErrInternal, err)
	}

	response := toCustomerResponse(customer)
	return &response, nil
}

func toCustomerResponse(customer *model.Customer) dto.CustomerResponse {
	return dto.CustomerResponse{
		ID:        customer.ID,
		FirstName: customer.FirstName,
		LastName:  customer.LastName,
		Email:     customer.Email,
		Phone:     customer.Phone,
		City:      customer.City,
		Active:    customer.Active,
		CreatedAt: customer.CreatedAt,
		UpdatedAt: customer.UpdatedAt,
	}
}
