package store

import (
	"context"
	"errors"
	"testing"

	"github.com/oneclickfood/oneclick/internal/domain"
	"github.com/oneclickfood/oneclick/internal/logger"
)

func testLog() *logger.Logger {
	return logger.New(logger.LevelOff, nil)
}

type stubCategories struct {
	cats []domain.Category
	err  error
}

func (s stubCategories) Categories(context.Context) ([]domain.Category, error) {
	return s.cats, s.err
}

type stubRecipes struct {
	recipes []domain.Recipe
	err     error
}

func (s stubRecipes) Recipes(context.Context) ([]domain.Recipe, error) {
	return s.recipes, s.err
}

// ── UserStore ────────────────────────────────────────────────────

func TestUserStoreStartsAnonymous(t *testing.T) {
	s := NewUserStore(testLog())

	u, err := s.Read()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if u.Authenticated() {
		t.Fatalf("fresh store not anonymous: %+v", u)
	}
}

func TestUserStoreLastWriteWins(t *testing.T) {
	s := NewUserStore(testLog())

	if err := s.Write(domain.User{ID: 1, UserName: "first"}); err != nil {
		t.Fatalf("first write: %v", err)
	}
	if err := s.Write(domain.User{ID: 2, UserName: "second"}); err != nil {
		t.Fatalf("second write: %v", err)
	}

	u, _ := s.Read()
	if u.ID != 2 || u.UserName != "second" {
		t.Fatalf("expected second record, got %+v", u)
	}
}

func TestUserStoreReset(t *testing.T) {
	s := NewUserStore(testLog())
	s.Write(domain.User{ID: 5, UserName: "cookie"})

	if err := s.Reset(); err != nil {
		t.Fatalf("reset: %v", err)
	}
	u, _ := s.Read()
	if u.Authenticated() {
		t.Fatalf("expected anonymous after reset, got %+v", u)
	}
}

func TestZeroValueUserStoreReportsNotReady(t *testing.T) {
	var s UserStore

	if _, err := s.Read(); !errors.Is(err, domain.ErrStoreNotReady) {
		t.Fatalf("Read: expected ErrStoreNotReady, got %v", err)
	}
	if err := s.Write(domain.User{ID: 1}); !errors.Is(err, domain.ErrStoreNotReady) {
		t.Fatalf("Write: expected ErrStoreNotReady, got %v", err)
	}
}

// ── CategoryStore ────────────────────────────────────────────────

func TestCategoryStoreLifecycle(t *testing.T) {
	cats := []domain.Category{{ID: 1, Name: "Soups"}, {ID: 2, Name: "Mains"}}
	s := NewCategoryStore(stubCategories{cats: cats}, testLog())

	if _, state, err := s.Read(); state != CatalogLoading || err != nil {
		t.Fatalf("fresh store: state=%v err=%v", state, err)
	}

	if err := s.Load(context.Background()); err != nil {
		t.Fatalf("load: %v", err)
	}

	items, state, err := s.Read()
	if err != nil {
		t.Fatalf("read after load: %v", err)
	}
	if state != CatalogLoaded {
		t.Fatalf("state = %v, want loaded", state)
	}
	if len(items) != 2 {
		t.Fatalf("expected 2 categories, got %d", len(items))
	}
}

func TestCategoryStoreLoadFailure(t *testing.T) {
	fetchErr := errors.New("service unavailable")
	s := NewCategoryStore(stubCategories{err: fetchErr}, testLog())

	if err := s.Load(context.Background()); !errors.Is(err, fetchErr) {
		t.Fatalf("load: expected fetch error, got %v", err)
	}

	items, state, err := s.Read()
	if state != CatalogFailed {
		t.Fatalf("state = %v, want failed", state)
	}
	if !errors.Is(err, fetchErr) {
		t.Fatalf("read did not retain the fetch error: %v", err)
	}
	if len(items) != 0 {
		t.Fatalf("failed store holds items: %v", items)
	}
}

func TestCategoryStoreWriteOverride(t *testing.T) {
	s := NewCategoryStore(stubCategories{err: errors.New("down")}, testLog())
	s.Load(context.Background())

	if err := s.Write([]domain.Category{{ID: 9, Name: "Desserts"}}); err != nil {
		t.Fatalf("write: %v", err)
	}

	items, state, err := s.Read()
	if err != nil || state != CatalogLoaded {
		t.Fatalf("after override: state=%v err=%v", state, err)
	}
	if len(items) != 1 || items[0].ID != 9 {
		t.Fatalf("unexpected items: %v", items)
	}
}

func TestCategoryStoreReadReturnsCopy(t *testing.T) {
	s := NewCategoryStore(stubCategories{cats: []domain.Category{{ID: 1, Name: "Soups"}}}, testLog())
	s.Load(context.Background())

	items, _, _ := s.Read()
	items[0].Name = "mutated"

	again, _, _ := s.Read()
	if again[0].Name != "Soups" {
		t.Fatalf("caller mutation leaked into the store: %+v", again[0])
	}
}

func TestNilCategoryStoreReportsNotReady(t *testing.T) {
	var s *CategoryStore

	if _, _, err := s.Read(); !errors.Is(err, domain.ErrStoreNotReady) {
		t.Fatalf("Read: expected ErrStoreNotReady, got %v", err)
	}
	if err := s.Load(context.Background()); !errors.Is(err, domain.ErrStoreNotReady) {
		t.Fatalf("Load: expected ErrStoreNotReady, got %v", err)
	}
	if err := s.Write(nil); !errors.Is(err, domain.ErrStoreNotReady) {
		t.Fatalf("Write: expected ErrStoreNotReady, got %v", err)
	}
}

// ── RecipeStore ──────────────────────────────────────────────────

func TestRecipeStoreLifecycle(t *testing.T) {
	recipes := []domain.Recipe{{ID: 1, Name: "Minestrone"}}
	s := NewRecipeStore(stubRecipes{recipes: recipes}, testLog())

	if _, state, _ := s.Read(); state != CatalogLoading {
		t.Fatalf("fresh store state = %v, want loading", state)
	}

	if err := s.Load(context.Background()); err != nil {
		t.Fatalf("load: %v", err)
	}

	items, state, err := s.Read()
	if err != nil || state != CatalogLoaded {
		t.Fatalf("after load: state=%v err=%v", state, err)
	}
	if len(items) != 1 || items[0].Name != "Minestrone" {
		t.Fatalf("unexpected items: %v", items)
	}
}

func TestRecipeStoreLoadFailureRetainsError(t *testing.T) {
	fetchErr := errors.New("timeout")
	s := NewRecipeStore(stubRecipes{err: fetchErr}, testLog())

	s.Load(context.Background())

	_, state, err := s.Read()
	if state != CatalogFailed || !errors.Is(err, fetchErr) {
		t.Fatalf("after failed load: state=%v err=%v", state, err)
	}
}

func TestRecipeStoreReadReturnsCopy(t *testing.T) {
	s := NewRecipeStore(stubRecipes{recipes: []domain.Recipe{{ID: 1, Name: "Minestrone"}}}, testLog())
	s.Load(context.Background())

	items, _, _ := s.Read()
	items[0].Name = "mutated"

	again, _, _ := s.Read()
	if again[0].Name != "Minestrone" {
		t.Fatalf("caller mutation leaked into the store: %+v", again[0])
	}
}

func TestCatalogStateString(t *testing.T) {
	tests := []struct {
		state CatalogState
		want  string
	}{
		{CatalogLoading, "loading"},
		{CatalogLoaded, "loaded"},
		{CatalogFailed, "failed"},
		{CatalogState(42), "unknown"},
	}
	for _, tt := range tests {
		if got := tt.state.String(); got != tt.want {
			t.Fatalf("%d.String() = %q, want %q", tt.state, got, tt.want)
		}
	}
}
