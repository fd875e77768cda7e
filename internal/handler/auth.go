package handler

import (
	"net/http"

	"github.com/Payphone-Digital/catalog/internal/constants"
	"github.com/Payphone-Digital/catalog/internal/dto"
	apperrors "github.com/Payphone-Digital/catalog/internal/errors"
	"github.com/Payphone-Digital/catalog/internal/service"
	ctxutil "github.com/Payphone-Digital/catalog/pkg/context"
	"github.com/Payphone-Digital/catalog/pkg/logger"
	"github.com/Payphone-Digital/catalog/pkg/validation"
	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	userService *service.UserService
}

func NewAuthHandler(userService *service.UserService) *AuthHandler {
	return &AuthHandler{userService: userService}
}

// Login authenticates a user and issues an access token
func (h *AuthHandler) Login(c *gin.Context) {
	ctx := ctxutil.NewContext(c.Request.Context(), "handler", "Login")

	var req dto.UserLoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.WarnWithContext(ctx, "Invalid login request body").
			Err(err).
			Log()
		if details := validation.BindingErrors(err); details != nil {
			c.JSON(http.StatusBadRequest, constants.BuildErrorResponse("Invalid request format", details))
			return
		}
		c.JSON(http.StatusBadRequest, constants.BuildErrorResponse("Invalid request format", ""))
		return
	}

	response, err := h.userService.Login(ctx, &req)
	if err != nil {
		status := apperrors.ToHTTPStatus(err)
		logger.WarnWithContext(ctx, "Login failed").
			String("email", req.Email).
			Int("http_status", status).
			Err(err).
			Log()
		c.JSON(status, constants.BuildErrorResponse("Login failed", apperrors.GetErrorMessage(err)))
		return
	}

	c.JSON(http.StatusOK, response)
}

// Register creates a new user account
func (h *AuthHandler) Register(c *gin.Context) {
	ctx := ctxutil.NewContext(c.Request.Context(), "handler", "Register")

	var req dto.CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.WarnWithContext(ctx, "Invalid register request body").
			Err(err).
			Log()
		if details := validation.BindingErrors(err); details != nil {
			c.JSON(http.StatusBadRequest, constants.BuildErrorResponse("Invalid request format", details))
			return
		}
		c.JSON(http.StatusBadRequest, constants.BuildErrorResponse("Invalid request format", ""))
		return
	}

	user, err := h.userService.CreateUser(ctx, &req)
	if err != nil {
		status := apperrors.ToHTTPStatus(err)
		logger.ErrorWithContext(ctx, "Failed to create user").
			String("email", req.Email).
			Int("http_status", status).
			Err(err).
			Log()
		c.JSON(status, constants.BuildErrorResponse("Failed to create user", apperrors.GetErrorMessage(err)))
		return
	}

	c.JSON(http.StatusCreated, user)
}
