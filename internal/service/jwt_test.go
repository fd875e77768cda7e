package service

import (
	"testing"
	"time"

	apperrors "github.com/Payphone-Digital/catalog/internal/errors"
	"github.com/Payphone-Digital/catalog/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestJWTRoundTrip(t *testing.T) {
	svc := NewJWTService("test-secret", time.Hour)
	user := &model.User{
		Model:     gorm.Model{ID: 7},
		Email:     "admin@catalog.local",
		FirstName: "Admin",
		LastName:  "Catalog",
	}

	token, err := svc.GenerateToken(user)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, float64(7), claims["user_id"])
	assert.Equal(t, "admin@catalog.local", claims["email"])
}

func TestJWTRejectsWrongSecret(t *testing.T) {
	issuer := NewJWTService("issuer-secret", time.Hour)
	verifier := NewJWTService("other-secret", time.Hour)

	token, err := issuer.GenerateToken(&model.User{Model: gorm.Model{ID: 1}})
	require.NoError(t, err)

	_, err = verifier.ValidateToken(token)
	require.Error(t, err)
	domainErr := apperrors.GetDomainError(err)
	require.NotNil(t, domainErr)
	assert.Equal(t, "INVALID_TOKEN", domainErr.Code)
}

func TestJWTRejectsExpiredToken(t *testing.T) {
	svc := NewJWTService("test-secret", -time.Minute)

	token, err := svc.GenerateToken(&model.User{Model: gorm.Model{ID: 1}})
	require.NoError(t, err)

	_, err = svc.ValidateToken(token)
	require.Error(t, err)
	domainErr := apperrors.GetDomainError(err)
	require.NotNil(t, domainErr)
	assert.Equal(t, "INVALID_TOKEN", domainErr.Code)
}
