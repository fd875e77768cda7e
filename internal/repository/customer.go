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

type CustomerRepository struct {
	db        *gorm.DB
	paginator *Paginator
}

func NewCustomerRepository(db *gorm.DB) *CustomerRepository {
	return &CustomerRepository{db: db, paginator: NewPaginator(db)}
}

// List runs a validated descriptor against the customers table and returns
// one page plus the matching total.
func (r *CustomerRepository) List(ctx context.Context, where query.Where, order query.Order, skip, take int) ([]model.Customer, int64, error) {
	ctx = ctxutil.NewContext(ctx, "repository", "CustomerList")

	var customers []model.Customer
	total, err := r.paginator.Paginate(ctx, "customers", &customers, where, order, skip, take)
	if err != nil {
		return nil, 0, err
	}
	return customers, total, nil
}

func (r *CustomerRepository) GetByID(ctx context.Context, id uint) (*model.Customer, error) {
	ctx = ctxutil.NewContext(ctx, "repository", "CustomerGetByID")

	start := time.Now()
	var customer model.Customer
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&customer)

	if result.Error != nil {
		logger.ErrorWithContext(ctx, "Failed to get customer by ID").
			Int("customer_id", int(id)).
			Duration(time.Since(start)).
			Err(result.Error).
			Log()
		return nil, result.Error
	}

	return &customer, nil
}

func (r *CustomerRepository) GetByEmail(ctx context.Context, email string) (*model.Customer, error) {
	ctx = ctxutil.NewContext(ctx, "repository", "CustomerGetByEmail")

	var customer model.Customer
	result := r.db.WithContext(ctx).Where("email = ?", email).First(&customer)
	if result.Error != nil {
		return nil, result.Error
	}
	return &customer, nil
}

func (r *CustomerRepository) Create(ctx context.Context, customer *model.Customer) error {
	ctx = ctxutil.NewContext(ctx, "repository", "CustomerCreate")

	start := time.Now()
	result := r.db.WithContext(ctx).Create(customer)

	if result.Error != nil {
		logger.ErrorWithContext(ctx, "Failed to create customer").
			String("email", customer.Email).
			Duration(time.Since(start)).
			Err(result.Error).
			Log()
		return result.Error
	}

	logger.InfoWithContext(ctx, "Customer created successfully").
		String("email", customer.Email).
		Int("customer_id", int(customer.ID)).
		Duration(time.Since(start)).
		Log()

	return nil
}
