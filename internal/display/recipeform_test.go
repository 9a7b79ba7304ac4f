package display

import (
	"context"
	"strings"
	"sync"
	"testing"

	"github.com/oneclickfood/oneclick/internal/api"
	"github.com/oneclickfood/oneclick/internal/domain"
	"github.com/oneclickfood/oneclick/internal/form"
	"github.com/oneclickfood/oneclick/internal/logger"
	"github.com/oneclickfood/oneclick/internal/store"
)

type recordingSender struct {
	mu      sync.Mutex
	creates []api.CreateRecipeRequest
	edits   []api.EditRecipeRequest
}

func (s *recordingSender) CreateRecipe(_ context.Context, req api.CreateRecipeRequest) (domain.Recipe, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.creates = append(s.creates, req)
	return domain.Recipe{ID: 99, Name: req.Name}, nil
}

func (s *recordingSender) EditRecipe(_ context.Context, req api.EditRecipeRequest) (domain.Recipe, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.edits = append(s.edits, req)
	return domain.Recipe{ID: req.ID}, nil
}

type stubNavigator struct{}

func (stubNavigator) NavigateToCatalog() {}

func setupDeps(t *testing.T, sender form.Sender, categories []domain.Category) *Deps {
	t.Helper()
	log := logger.New(logger.LevelOff, nil)

	users := store.NewUserStore(log)
	if err := users.Write(domain.User{ID: 7, UserName: "cookie"}); err != nil {
		t.Fatalf("seed user: %v", err)
	}

	catStore := store.NewCategoryStore(nil, log)
	if err := catStore.Write(categories); err != nil {
		t.Fatalf("seed categories: %v", err)
	}

	return &Deps{
		Users:      users,
		Categories: catStore,
		Recipes:    store.NewRecipeStore(nil, log),
		Submitter:  form.NewSubmitter(sender, users, catStore, stubNavigator{}, log),
		Log:        log,
	}
}

func filledForm() *form.Form {
	f := form.New()
	f.Name = "Shakshuka"
	f.Description = "Eggs poached in spiced tomato sauce"
	f.Duration = "30"
	f.Difficulty = string(domain.DifficultyEasy)
	f.Category = "2"
	f.Image = "https://example.com/shakshuka.jpg"
	f.Instructions = "Fry the onions\nCrack the eggs"
	f.Ingredients.SetField(0, form.RowName, "eggs")
	f.Ingredients.SetField(0, form.RowAmount, "4")
	f.Ingredients.SetField(0, form.RowUnit, "pcs")
	return f
}

func TestSubmitSendsSnapshotNotLiveForm(t *testing.T) {
	sender := &recordingSender{}
	deps := setupDeps(t, sender, []domain.Category{{ID: 2, Name: "Dinner"}})

	f := filledForm()
	m := newRecipeFormModel(context.Background(), deps, f, 0)

	_, cmd := m.startSubmit()
	if cmd == nil {
		t.Fatal("expected a submit command")
	}

	// Keystrokes keep landing on the live form while the command is
	// still pending; the transmission must not see them.
	f.Name = "Soup!"
	f.Ingredients.SetField(0, form.RowName, "onions")
	f.Ingredients.Append()

	raw := cmd()
	msg, ok := raw.(submitDoneMsg)
	if !ok {
		t.Fatalf("expected submitDoneMsg, got %T", raw)
	}
	if msg.err != nil {
		t.Fatalf("unexpected error: %v", msg.err)
	}
	if !msg.res.OK {
		t.Fatalf("expected OK, got %+v", msg.res)
	}

	req := sender.creates[0]
	if req.Name != "Shakshuka" {
		t.Fatalf("transmitted name = %q, want the pre-edit value", req.Name)
	}
	if len(req.Ingredients) != 1 || req.Ingredients[0].Name != "eggs" {
		t.Fatalf("transmitted ingredients = %+v, want the pre-edit row", req.Ingredients)
	}
}

func TestRecipeFormRendersEmptyCatalog(t *testing.T) {
	deps := setupDeps(t, &recordingSender{}, nil)

	m := newRecipeFormModel(context.Background(), deps, form.New(), 0)

	out := m.View()
	if !strings.Contains(out, "(no categories)") {
		t.Fatalf("empty catalog not rendered as such:\n%s", out)
	}
}

func TestEmptyCatalogSelectorDoesNotCycle(t *testing.T) {
	deps := setupDeps(t, &recordingSender{}, nil)

	m := newRecipeFormModel(context.Background(), deps, form.New(), 0)
	m.focus = focusCategory
	m.cycleSelector(true)

	if m.f.Category != "" {
		t.Fatalf("category picked from an empty catalog: %q", m.f.Category)
	}
}
