package form

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/oneclickfood/oneclick/internal/api"
	"github.com/oneclickfood/oneclick/internal/domain"
	"github.com/oneclickfood/oneclick/internal/logger"
	"github.com/oneclickfood/oneclick/internal/store"
)

// ErrSubmitInFlight is returned when a submit is attempted while a
// previous one is still awaiting its response. The second attempt is
// rejected, never raced.
var ErrSubmitInFlight = errors.New("a submission is already in progress")

// Sender transmits recipe payloads to the remote service. Implemented
// by the api client.
type Sender interface {
	CreateRecipe(ctx context.Context, req api.CreateRecipeRequest) (domain.Recipe, error)
	EditRecipe(ctx context.Context, req api.EditRecipeRequest) (domain.Recipe, error)
}

// Navigator is the external navigation collaborator notified after a
// successful submission.
type Navigator interface {
	NavigateToCatalog()
}

// Result is the outcome of one submit attempt.
//
//   - FieldErrors non-empty: validation blocked the attempt; nothing was
//     transmitted.
//   - Message non-empty: the transmission failed; the message is safe to
//     show the user.
//   - OK: the recipe was persisted and navigation was signalled.
type Result struct {
	OK          bool
	FieldErrors Errors
	Message     string
	Recipe      domain.Recipe
}

// Submitter orchestrates validate -> map -> transmit -> navigate for
// recipe create and edit. One attempt may be in flight at a time.
type Submitter struct {
	sender     Sender
	users      *store.UserStore
	categories *store.CategoryStore
	nav        Navigator
	log        *logger.Logger

	mu       sync.Mutex
	inFlight bool
}

// NewSubmitter wires a submit flow.
func NewSubmitter(sender Sender, users *store.UserStore, categories *store.CategoryStore, nav Navigator, log *logger.Logger) *Submitter {
	return &Submitter{
		sender:     sender,
		users:      users,
		categories: categories,
		nav:        nav,
		log:        log,
	}
}

// Create validates and submits a new recipe.
func (s *Submitter) Create(ctx context.Context, f *Form) (Result, error) {
	if !s.begin() {
		return Result{}, ErrSubmitInFlight
	}
	defer s.end()

	user, err := s.users.Read()
	if err != nil {
		return Result{}, err
	}

	if errs := s.validator().Validate(f); len(errs) > 0 {
		s.log.Debug("create blocked by validation: %d field error(s)", len(errs))
		return Result{FieldErrors: errs}, nil
	}

	req := ToCreatePayload(f, user.ID)
	rec, err := s.sender.CreateRecipe(ctx, req)
	if err != nil {
		s.log.Error("create recipe failed: %v", err)
		return Result{Message: failureMessage(err)}, nil
	}

	s.log.Info("recipe %q created (id=%d)", rec.Name, rec.ID)
	s.nav.NavigateToCatalog()
	return Result{OK: true, Recipe: rec}, nil
}

// Edit validates and submits changes to the recipe with the given id.
func (s *Submitter) Edit(ctx context.Context, f *Form, recipeID int) (Result, error) {
	if !s.begin() {
		return Result{}, ErrSubmitInFlight
	}
	defer s.end()

	user, err := s.users.Read()
	if err != nil {
		return Result{}, err
	}

	if errs := s.validator().Validate(f); len(errs) > 0 {
		s.log.Debug("edit blocked by validation: %d field error(s)", len(errs))
		return Result{FieldErrors: errs}, nil
	}

	req := ToEditPayload(f, recipeID, user.ID)
	rec, err := s.sender.EditRecipe(ctx, req)
	if err != nil {
		s.log.Error("edit recipe %d failed: %v", recipeID, err)
		return Result{Message: failureMessage(err)}, nil
	}

	s.log.Info("recipe %q updated (id=%d)", rec.Name, recipeID)
	s.nav.NavigateToCatalog()
	return Result{OK: true, Recipe: rec}, nil
}

// validator builds the rule evaluator with the category catalog when it
// has loaded; the reference check is skipped otherwise.
func (s *Submitter) validator() *Validator {
	if s.categories != nil {
		if cats, state, err := s.categories.Read(); err == nil && state == store.CatalogLoaded {
			return NewValidator(WithCatalog(cats))
		}
	}
	return NewValidator()
}

func (s *Submitter) begin() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.inFlight {
		return false
	}
	s.inFlight = true
	return true
}

func (s *Submitter) end() {
	s.mu.Lock()
	s.inFlight = false
	s.mu.Unlock()
}

// failureMessage turns a transport error into a line fit for the status
// bar, without leaking request internals.
func failureMessage(err error) string {
	var apiErr *api.Error
	if errors.As(err, &apiErr) {
		switch apiErr.Kind {
		case api.ErrKindServer:
			return fmt.Sprintf("the server rejected the recipe (status %d)", apiErr.Status)
		case api.ErrKindNetwork:
			return "could not reach the server; check your connection and try again"
		}
	}
	return "the recipe could not be sent; please try again"
}
