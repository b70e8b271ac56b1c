package http

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"campusdesk/internal/infrastructure/auth"
	"campusdesk/internal/infrastructure/cache"
	"campusdesk/internal/infrastructure/config"
	"campusdesk/internal/infrastructure/migration"
	"campusdesk/internal/shared/authorization"
	sharedConfig "campusdesk/internal/shared/config"
	"campusdesk/internal/shared/logger"
)

func setupTestRouter(t *testing.T) (*Router, *auth.JWTService) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	database, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, database.AutoMigrate(migration.AutoMigrateModels()...))

	cfg := &config.Config{
		Server: sharedConfig.ServerConfig{Mode: "test"},
		Auth: sharedConfig.AuthConfig{
			Password: sharedConfig.PasswordConfig{BcryptCost: 4},
			JWT: sharedConfig.JWTConfig{
				Secret:           "router-test-secret",
				AccessExpMinutes: 15,
				RefreshExpDays:   30,
			},
		},
		RateLimit: sharedConfig.RateLimitConfig{PublicLimit: 100, PublicWindowSeconds: 60},
	}

	router := NewRouter(cfg, database, cache.NoopRateLimiter{}, logger.NewLogger())
	router.SetupRoutes()

	return router, auth.NewJWTService(&cfg.Auth.JWT)
}

func doAs(t *testing.T, router *Router, jwtService *auth.JWTService, role authorization.Role, method, path string) *httptest.ResponseRecorder {
	t.Helper()

	pair, err := jwtService.GenerateTokenPair(1, role.String())
	require.NoError(t, err)

	req := httptest.NewRequest(method, path, strings.NewReader("{}"))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+pair.AccessToken)

	rec := httptest.NewRecorder()
	router.Engine().ServeHTTP(rec, req)
	return rec
}

// Every row pins one rung of the role ladder for a route: the highest role
// that must be refused and the lowest that must pass the gate. Passing the
// gate means any status but 403; most rows then hit 404 on the empty
// database, which is fine, the gate is what is under test.
func TestRouter_RoleMatrix(t *testing.T) {
	router, jwtService := setupTestRouter(t)

	tests := []struct {
		name    string
		method  string
		path    string
		denied  authorization.Role
		allowed authorization.Role
	}{
		{
			name:    "asset delete is super admin only",
			method:  http.MethodDelete,
			path:    "/api/v1/assets/999",
			denied:  authorization.RoleAdmin,
			allowed: authorization.RoleSuperAdmin,
		},
		{
			name:    "asset update needs admin",
			method:  http.MethodPut,
			path:    "/api/v1/assets/999",
			denied:  authorization.RoleSchoolAdmin,
			allowed: authorization.RoleAdmin,
		},
		{
			name:    "asset assignment needs admin",
			method:  http.MethodPost,
			path:    "/api/v1/assets",
			denied:  authorization.RoleSchoolAdmin,
			allowed: authorization.RoleAdmin,
		},
		{
			name:    "asset deassign needs admin",
			method:  http.MethodPost,
			path:    "/api/v1/assets/999/deassign",
			denied:  authorization.RoleSchoolAdmin,
			allowed: authorization.RoleAdmin,
		},
		{
			name:    "asset listing starts at school admin",
			method:  http.MethodGet,
			path:    "/api/v1/assets",
			denied:  authorization.RoleTechnician,
			allowed: authorization.RoleSchoolAdmin,
		},
		{
			name:    "ticket listing starts at school admin",
			method:  http.MethodGet,
			path:    "/api/v1/tickets",
			denied:  authorization.RoleVendor,
			allowed: authorization.RoleSchoolAdmin,
		},
		{
			name:    "school listing starts at school admin",
			method:  http.MethodGet,
			path:    "/api/v1/schools",
			denied:  authorization.RoleTechnician,
			allowed: authorization.RoleSchoolAdmin,
		},
		{
			name:    "school delete is super admin only",
			method:  http.MethodDelete,
			path:    "/api/v1/schools/999",
			denied:  authorization.RoleAdmin,
			allowed: authorization.RoleSuperAdmin,
		},
		{
			name:    "ticket stats need admin",
			method:  http.MethodGet,
			path:    "/api/v1/tickets/stats",
			denied:  authorization.RoleSchoolAdmin,
			allowed: authorization.RoleAdmin,
		},
		{
			name:    "ticket status change starts at school admin",
			method:  http.MethodPatch,
			path:    "/api/v1/tickets/999/status",
			denied:  authorization.RoleTechnician,
			allowed: authorization.RoleSchoolAdmin,
		},
		{
			name:    "user management needs admin",
			method:  http.MethodGet,
			path:    "/api/v1/users",
			denied:  authorization.RoleSchoolAdmin,
			allowed: authorization.RoleAdmin,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := doAs(t, router, jwtService, tt.denied, tt.method, tt.path)
			assert.Equal(t, http.StatusForbidden, rec.Code,
				"%s should be refused %s %s", tt.denied, tt.method, tt.path)

			rec = doAs(t, router, jwtService, tt.allowed, tt.method, tt.path)
			assert.NotEqual(t, http.StatusForbidden, rec.Code,
				"%s should pass the gate on %s %s", tt.allowed, tt.method, tt.path)
		})
	}
}

func TestRouter_RejectsMissingToken(t *testing.T) {
	router, _ := setupTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/schools", nil)
	rec := httptest.NewRecorder()
	router.Engine().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
