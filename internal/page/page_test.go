package page

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"

	"tierless/internal/menu"

	"github.com/gin-gonic/gin"
)

// fakeItems serves canned menu items per page.
type fakeItems struct {
	items map[int][]menu.Item
}

func (f *fakeItems) ListItems(ctx context.Context, pageID int) ([]menu.Item, error) {
	return f.items[pageID], nil
}

func price(v float64) *float64 { return &v }

func setupPageTestRouter(repo Repository, items ItemSource) (*gin.Engine, *Service) {
	gin.SetMode(gin.TestMode)
	r := gin.New()

	service := NewService(repo, items)
	handler := NewHandler(service)

	authed := r.Group("/")
	authed.Use(func(c *gin.Context) {
		c.Set("userID", "owner-1")
		c.Next()
	})
	authed.POST("/pages", handler.Create)
	authed.GET("/pages/me", handler.ListMine)
	authed.POST("/pages/:id/publish", handler.Publish)
	authed.POST("/pages/:id/unpublish", handler.Unpublish)

	r.GET("/p/:slug", handler.PublicRender)

	return r, service
}

func TestCreatePageGeneratesSlug(t *testing.T) {
	repo := NewInMemoryRepository()
	service := NewService(repo, &fakeItems{})

	p, err := service.Create(context.Background(), "owner-1", "Café Dunav — Summer Menu", "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if p.Slug == "" {
		t.Fatal("expected a slug")
	}
	// slug prefix from the title, lowercased, punctuation folded to dashes
	prefix := "café-dunav-summer-menu-"
	if len(p.Slug) <= len(prefix) || p.Slug[:len(prefix)] != prefix {
		t.Fatalf("unexpected slug %q", p.Slug)
	}
	if p.Currency != "EUR" {
		t.Fatalf("expected default currency EUR, got %q", p.Currency)
	}
	if p.Published {
		t.Fatal("new pages must start unpublished")
	}
}

func TestPublicRenderRequiresPublished(t *testing.T) {
	repo := NewInMemoryRepository()
	items := &fakeItems{items: map[int][]menu.Item{}}
	router, service := setupPageTestRouter(repo, items)

	p, err := service.Create(context.Background(), "owner-1", "Menu", "RSD")
	if err != nil {
		t.Fatal(err)
	}

	req := httptest.NewRequest(http.MethodGet, "/p/"+p.Slug, nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Fatalf("unpublished page must render 404, got %d", w.Code)
	}
}

func TestPublicRenderGroupsSectionsInReadingOrder(t *testing.T) {
	repo := NewInMemoryRepository()
	items := &fakeItems{items: map[int][]menu.Item{}}
	router, service := setupPageTestRouter(repo, items)

	ctx := context.Background()
	p, err := service.Create(ctx, "owner-1", "Menu", "RSD")
	if err != nil {
		t.Fatal(err)
	}
	if err := service.SetPublished(ctx, p.ID, true); err != nil {
		t.Fatal(err)
	}

	items.items[p.ID] = []menu.Item{
		{Name: "Bruschetta", Price: price(650), Position: 0},
		{Name: "Riblji paprikaš", Price: price(1150), Section: "GLAVNA JELA", Position: 1},
		{Name: "Fileti morske ribe", Price: price(1550), Section: "GLAVNA JELA", Position: 2},
		{Name: "Baklava", Price: price(450), Section: "DESERTI", Position: 3},
	}

	req := httptest.NewRequest(http.MethodGet, "/p/"+p.Slug, nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	var rendered PublicPage
	if err := json.Unmarshal(w.Body.Bytes(), &rendered); err != nil {
		t.Fatal(err)
	}

	wantSections := []string{"", "GLAVNA JELA", "DESERTI"}
	if len(rendered.Sections) != len(wantSections) {
		t.Fatalf("expected %d sections, got %d", len(wantSections), len(rendered.Sections))
	}
	for i, name := range wantSections {
		if rendered.Sections[i].Name != name {
			t.Fatalf("section %d: expected %q, got %q", i, name, rendered.Sections[i].Name)
		}
	}
	if len(rendered.Sections[1].Items) != 2 {
		t.Fatalf("expected 2 items in GLAVNA JELA, got %d", len(rendered.Sections[1].Items))
	}
}

func TestPublishEndpointsRequireOwnership(t *testing.T) {
	repo := NewInMemoryRepository()
	router, service := setupPageTestRouter(repo, &fakeItems{})

	p, err := service.Create(context.Background(), "someone-else", "Menu", "")
	if err != nil {
		t.Fatal(err)
	}

	req := httptest.NewRequest(http.MethodPost, "/pages/"+strconv.Itoa(p.ID)+"/publish", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d", w.Code)
	}
}
