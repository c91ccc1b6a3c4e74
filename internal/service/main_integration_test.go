//go:build integration

package service_test

import (
	"os"
	"testing"

	"site-security-backend/internal/testutils"
)

func TestMain(m *testing.M) {
	code := m.Run()
	testutils.CleanupSharedContainer()
	os.Exit(code)
}
