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

type ProductHandler struct {
	productService *service.ProductService
}

func NewProductHandler(service *service.ProductService) *ProductHandler {
	return &ProductHandler{productService: service}
}

// List handles GET /products with pagination, filter and orderBy parameters.
// The raw query map goes to the service untouched; everything invalid in it
// is dropped there, so this endpoint never rejects a request over a bad
// filter or sort token.
func (h *ProductHandler) List(c *gin.Context) {
	ctx := ctxutil.NewContext(c.Request.Context(), "handler", "ProductList")

	logger.InfoWithContext(ctx, "List products request").
		String("query", c.Request.URL.RawQuery).
		Log()

	page, err := h.productService.List(ctx, c.Request.URL.Query())
	if err != nil {
		status := apperrors.ToHTTPStatus(err)
		logger.ErrorWithContext(ctx, "Failed to list products").
			Int("http_status", status).
			Err(err).
			Log()
		c.JSON(status, constants.BuildErrorResponse("Failed to list products", apperrors.GetErrorMessage(err)))
		return
	}

	c.JSON(http.StatusOK, page)
}

func (h *ProductHandler) GetByID(c *gin.Context) {
	ctx := ctxutil.NewContext(c.Request.Context(), "handler", "ProductGetByID")

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, constants.BuildErrorResponse("Invalid product ID", ""))
		return
	}

	product, err := h.productService.GetByID(ctx, uint(id))
	if err != nil {
		status := apperrors.ToHTTPStatus(err)
		logger.ErrorWithContext(ctx, "Failed to fetch product").
			Int("product_id", id).
			Int("http_status", status).
			Err(err).
			Log()
		c.JSON(status, constants.BuildErrorResponse("Failed to fetch product", apperrors.GetErrorMessage(err)))
		return
	}

	c.JSON(http.StatusOK, product)
}

func (h *ProductHandler) Create(c *gin.Context) {
	ctx := ctxutil.NewContext(c.Request.Context(), "handler", "ProductCreate")

	var req dto.CreateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.WarnWithContext(ctx, "Invalid request body for product creation").
			Err(err).
			Log()
		if details := validation.BindingErrors(err); details != nil {
			c.JSON(http.StatusBadRequest, constants.BuildErrorResponse("Invalid request format", details))
			return
		}
		c.JSON(http.StatusBadRequest, constants.BuildErrorResponse("Invalid request format", ""))
		return
	}

	product, err := h.productService.Create(ctx, &req)
	if err != nil {
		status := apperrors.ToHTTPStatus(err)
		logger.ErrorWithContext(ctx, "Failed to create product").
			String("sku", req.SKU).
			Int("http_status", status).
			Err(err).
			Log()
		c.JSON(status, constants.BuildErrorResponse("Failed to create product", apperrors.GetErrorMessage(err)))
		return
	}

	logger.InfoWithContext(ctx, "Product created").
		String("sku", req.SKU).
		Int("product_id", int(product.ID)).
		Log()

	c.JSON(http.StatusCreated, product)
}
