package handler

import (
	"net/http"
	"strconv"

	"github.com/Payphone-Digital/catalog/internal/constants"
	"github.com/Payphone-Digital/catalog/internal/dto"
	apperrors "github.com/Payphone-Digital/catalog/internal/errors"
	"github.com/Payphone-Digital/catalog/internal/service"
	ctxutil "github.com/Payphone-Digital/catalog/pkg/context"
	"github.com/Payphone-Digital/catalog/pkg/logger"
	"github.com/Payphone-Digital/catalog/pkg/validation"
	"github.com/gin-gonic/gin"
)

type CustomerHandler struct {
	customerService *service.CustomerService
}

func NewCustomerHandler(service *service.CustomerService) *CustomerHandler {
	return &CustomerHandler{customerService: service}
}

// List handles GET /customers with pagination, filter and orderBy parameters.
func (h *CustomerHandler) List(c *gin.Context) {
	ctx := ctxutil.NewContext(c.Request.Context(), "handler", "CustomerList")

	logger.InfoWithContext(ctx, "List customers request").
		String("query", c.Request.URL.RawQuery).
		Log()

	page, err := h.customerService.List(ctx, c.Request.URL.Query())
	if err != nil {
		status := apperrors.ToHTTPStatus(err)
		logger.ErrorWithContext(ctx, "Failed to list customers").
			Int("http_status", status).
			Err(err).
			Log()
		c.JSON(status, constants.BuildErrorResponse("Failed to list customers", apperrors.GetErrorMessage(err)))
		return
	}

	c.JSON(http.StatusOK, page)
}

func (h *CustomerHandler) GetByID(c *gin.Context) {
	ctx := ctxutil.NewContext(c.Request.Context(), "handler", "CustomerGetByID")

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, constants.BuildErrorResponse("Invalid customer ID", ""))
		return
	}

	customer, err := h.customerService.GetByID(ctx, uint(id))
	if err != nil {
		status := apperrors.ToHTTPStatus(err)
		logger.ErrorWithContext(ctx, "Failed to fetch customer").
			Int("customer_id", id).
			Int("http_status", status).
			Err(err).
			Log()
		c.JSON(status, constants.BuildErrorResponse("Failed to fetch customer", apperrors.GetErrorMessage(err)))
		return
	}

	c.JSON(http.StatusOK, customer)
}

func (h *CustomerHandler) Create(c *gin.Context) {
	ctx := ctxutil.NewContext(c.Request.Context(), "handler", "CustomerCreate")

	var req dto.CreateCustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.WarnWithContext(ctx, "Invalid request body for customer creation").
			Err(err).
			Log()
		if details := validation.BindingErrors(err); details != nil {
			c.JSON(http.StatusBadRequest, constants.BuildErrorResponse("Invalid request format", details))
			return
		}
		c.JSON(http.StatusBadRequest, constants.BuildErrorResponse("Invalid request format", ""))
		return
	}

	customer, err := h.customerService.Create(ctx, &req)
	if err != nil {
		status := apperrors.ToHTTPStatus(err)
		logger.ErrorWithContext(ctx, "Failed to create customer").
			String("email", req.Email).
			Int("http_status", status).
			Err(err).
			Log()
		c.JSON(status, constants.BuildErrorResponse("Failed to create customer", apperrors.GetErrorMessage(err)))
		return
	}

	logger.InfoWithContext(ctx, "Customer created").
		String("email", req.Email).
		Int("customer_id", int(customer.ID)).
		Log()

	c.JSON(http.StatusCreated, customer)
}
