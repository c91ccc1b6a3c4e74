package service_test

import (
	"testing"

	"site-security-backend/internal/config"
	apperrors "site-security-backend/internal/errors"
	"site-security-backend/internal/service"

	"github.com/stretchr/testify/assert"
)

func TestLDAPService_SearchUsersByCN_NotConfigured(t *testing.T) {
	svc := service.NewLDAPService(&config.Config{})
	_, err := svc.SearchUsersByCN("dana")
	assert.ErrorIs(t, err, apperrors.ErrDirectoryNotConfigured)
}
