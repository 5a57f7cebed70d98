package router

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"tierless/internal/auth"
	"tierless/internal/menu"
	"tierless/internal/page"

	"github.com/gin-gonic/gin"
)

func setupTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)

	authHandler := auth.NewHandler(auth.NewService(auth.NewInMemoryUserRepository()))

	pageRepo := page.NewInMemoryRepository()
	menuService := menu.NewService(menu.NewInMemoryRepository(), nil, pageRepo)
	menuHandler := menu.NewHandler(menuService)

	pageHandler := page.NewHandler(page.NewService(pageRepo, menuService))

	return NewRouter(authHandler, menuHandler, pageHandler)
}

func TestHealthCheck(t *testing.T) {
	r := setupTestRouter()

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	w := httptest.NewRecorder()

	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", w.Code)
	}
}

func TestProtectedRoutesRequireAuth(t *testing.T) {
	r := setupTestRouter()

	for _, path := range []string{"/menus/1/status", "/pages/me"} {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		w := httptest.NewRecorder()

		r.ServeHTTP(w, req)

		if w.Code != http.StatusUnauthorized {
			t.Errorf("%s: expected status 401, got %d", path, w.Code)
		}
	}
}

func TestPublicRenderUnknownSlug(t *testing.T) {
	r := setupTestRouter()

	req := httptest.NewRequest(http.MethodGet, "/p/no-such-page", nil)
	w := httptest.NewRecorder()

	r.ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Fatalf("expected status 404, got %d", w.Code)
	}
}
