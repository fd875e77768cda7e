package service

import (
	"context"
	"errors"

	"github.com/Payphone-Digital/catalog/internal/dto"
	apperrors "github.com/Payphone-Digital/catalog/internal/errors"
	"github.com/Payphone-Digital/catalog/internal/model"
	"github.com/Payphone-Digital/catalog/internal/repository"
	ctxutil "github.com/Payphone-Digital/catalog/pkg/context"
	"github.com/Payphone-Digital/catalog/pkg/logger"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type UserService struct {
	repo       *repository.UserRepository
	jwtService *JWTService
}

func NewUserService(repo *repository.UserRepository, jwtService *JWTService) *UserService {
	return &UserService{
		repo:       repo,
		jwtService: jwtService,
	}
}

// Login verifies credentials and issues an access token
func (s *UserService) Login(ctx context.Context, req *dto.UserLoginRequest) (*dto.UserLoginResponse, error) {
	ctx = ctxutil.NewContext(ctx, "service", "Login")

	user, err := s.repo.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, apperrors.WrapError(apperrors.ErrInternal, err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		logger.WarnWithContext(ctx, "Login failed").
			String("email", req.Email).
			Log()
		return nil, apperrors.ErrInvalidCredentials
	}

	token, err := s.jwtService.GenerateToken(user)
	if err != nil {
		return nil, apperrors.WrapError(apperrors.ErrInternal, err)
	}

	if err := s.repo.UpdateLastLogin(ctx, user.ID); err != nil {
		// Login still succeeds; the timestamp is best effort
		logger.WarnWithContext(ctx, "Failed to record last login").
			Int("user_id", int(user.ID)).
			Err(err).
			Log()
	}

	logger.InfoWithContext(ctx, "Login successful").
		Int("user_id", int(user.ID)).
		Log()

	return &dto.UserLoginResponse{
		Token:     token,
		ExpiresIn: int(s.jwtService.Expiry().Seconds()),
		User:      toUserResponse(user),
	}, nil
}

// CreateUser registers a new user with a bcrypt-hashed password
func (s *UserService) CreateUser(ctx context.Context, req *dto.CreateUserRequest) (*dto.UserResponse, error) {
	ctx = ctxutil.NewContext(ctx, "service", "CreateUser")

	if _, err := s.repo.GetByEmail(ctx, req.Email); err == nil {
		return nil, apperrors.ErrEmailExists
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperrors.WrapError(apperrors.ErrInternal, err)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, apperrors.WrapError(apperrors.ErrInternal, err)
	}

	user := &model.User{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Password:  string(hashed),
	}

	if err := s.repo.Create(ctx, user); err != nil {
		return nil, apperrors.WrapError(apperrors.ErrInternal, err)
	}

	response := toUserResponse(user)
	return &response, nil
}

func toUserResponse(user *model.User) dto.UserResponse {
	return dto.UserResponse{
		ID:        user.ID,
		FirstName: user.FirstName,
		LastName:  user.LastName,
		Email:     user.Email,
		LastLogin: user.LastLogin,
		CreatedAt: user.CreatedAt,
	}
}
