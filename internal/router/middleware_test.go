package router

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hotelier/internal/auth"
	"hotelier/internal/model"
)

func newRoleContext(role model.Role) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	claims := &auth.Claims{UserID: uuid.New(), Role: role}
	c.Set("user", jwt.NewWithClaims(jwt.SigningMethodHS256, claims))
	return c, rec
}

func okHandler(c echo.Context) error {
	return c.NoContent(http.StatusOK)
}

func TestRequireRoles(t *testing.T) {
	tests := []struct {
		name     string
		allowed  []model.Role
		role     model.Role
		wantCode int
	}{
		{"admin on admin route", []model.Role{model.RoleAdmin}, model.RoleAdmin, http.StatusOK},
		{"guest on admin route", []model.Role{model.RoleAdmin}, model.RoleGuest, http.StatusForbidden},
		{"manager on staff route", []model.Role{model.RoleAdmin, model.RoleManager}, model.RoleManager, http.StatusOK},
		{"housekeeping on status route", []model.Role{model.RoleAdmin, model.RoleManager, model.RoleHousekeeping}, model.RoleHousekeeping, http.StatusOK},
		{"housekeeping on full-update route", []model.Role{model.RoleAdmin, model.RoleManager}, model.RoleHousekeeping, http.StatusForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, rec := newRoleContext(tt.role)
			err := RequireRoles(tt.allowed...)(okHandler)(c)

			if tt.wantCode == http.StatusOK {
				require.NoError(t, err)
				assert.Equal(t, http.StatusOK, rec.Code)
				return
			}

			var httpErr *echo.HTTPError
			require.ErrorAs(t, err, &httpErr)
			assert.Equal(t, tt.wantCode, httpErr.Code)
		})
	}
}

func TestRequireRoles_MissingClaims(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	c := e.NewContext(req, httptest.NewRecorder())

	err := RequireRoles(model.RoleAdmin)(okHandler)(c)

	var httpErr *echo.HTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, http.StatusUnauthorized, httpErr.Code)
}
