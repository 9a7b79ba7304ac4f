package form

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/oneclickfood/oneclick/internal/domain"
)

// Errors maps a field name to its human-readable message. Ingredient
// row fields are keyed "ingredients[i].name" and friends; the whole
// collection is keyed "ingredients".
type Errors map[string]string

// Field returns the message for a field, or "".
func (e Errors) Field(name string) string { return e[name] }

// rule is one entry of the declarative constraint table: a field name
// and a check returning a message, or "" when the field passes.
type rule struct {
	field string
	check func(v *Validator, f *Form) string
}

// recipeRules is the constraint table for the recipe form. Evaluated
// wholly on every submit attempt; one message per failing field.
var recipeRules = []rule{
	{"name", func(_ *Validator, f *Form) string {
		if strings.TrimSpace(f.Name) == "" {
			return "recipe name is required"
		}
		return ""
	}},
	{"description", func(_ *Validator, f *Form) string {
		if strings.TrimSpace(f.Description) == "" {
			return "description is required"
		}
		return ""
	}},
	{"instructions", func(_ *Validator, f *Form) string {
		if strings.TrimSpace(f.Instructions) == "" {
			return "preparation instructions are required"
		}
		return ""
	}},
	{"difficulty", func(_ *Validator, f *Form) string {
		if f.Difficulty == "" {
			return "difficulty level is required"
		}
		if !domain.Difficulty(f.Difficulty).Valid() {
			return "difficulty must be easy, medium or hard"
		}
		return ""
	}},
	{"duration", func(_ *Validator, f *Form) string {
		raw := strings.TrimSpace(f.Duration)
		if raw == "" {
			return "preparation time is required"
		}
		n, err := strconv.Atoi(raw)
		if err != nil {
			return "preparation time must be a number"
		}
		if n <= 0 {
			return "preparation time must be positive"
		}
		return ""
	}},
	{"category", func(v *Validator, f *Form) string {
		if f.Category == "" {
			return "category is required"
		}
		id, err := strconv.Atoi(f.Category)
		if err != nil {
			return "category is not valid"
		}
		// Membership is only checked against a loaded catalog; an
		// empty or unloaded catalog must not block the form.
		if len(v.catalog) > 0 && !v.knownCategory(id) {
			return "category does not exist"
		}
		return ""
	}},
	{"image", func(_ *Validator, f *Form) string {
		raw := strings.TrimSpace(f.Image)
		if raw == "" {
			return "image link is required"
		}
		if !validURL(raw) {
			return "image link is not a valid URL"
		}
		return ""
	}},
}

// Validator evaluates the rule table. It optionally carries the loaded
// category catalog so the category reference can be checked.
type Validator struct {
	catalog []domain.Category
}

// ValidatorOption configures a Validator.
type ValidatorOption func(*Validator)

// WithCatalog supplies the loaded category catalog for reference
// checks.
func WithCatalog(catalog []domain.Category) ValidatorOption {
	return func(v *Validator) { v.catalog = catalog }
}

// NewValidator creates a validator.
func NewValidator(opts ...ValidatorOption) *Validator {
	v := &Validator{}
	for _, o := range opts {
		o(v)
	}
	return v
}

// Validate runs every rule against the form and returns one message per
// failing field. An empty map means the form may be submitted.
func (v *Validator) Validate(f *Form) Errors {
	errs := Errors{}
	for _, r := range recipeRules {
		if msg := r.check(v, f); msg != "" {
			errs[r.field] = msg
		}
	}
	v.validateIngredients(f, errs)
	return errs
}

// validateIngredients enforces the collection invariant (at least one
// row) and the per-row field constraints.
func (v *Validator) validateIngredients(f *Form, errs Errors) {
	if f.Ingredients == nil || f.Ingredients.Len() == 0 {
		errs["ingredients"] = "at least one ingredient is required"
		return
	}
	for i, row := range f.Ingredients.Rows() {
		if strings.TrimSpace(row.Name) == "" {
			errs[fmt.Sprintf("ingredients[%d].name", i)] = "ingredient name is required"
		}
		if strings.TrimSpace(row.Amount) == "" {
			errs[fmt.Sprintf("ingredients[%d].amount", i)] = "amount is required"
		}
		if strings.TrimSpace(row.Unit) == "" {
			errs[fmt.Sprintf("ingredients[%d].unit", i)] = "unit is required"
		}
	}
}

func (v *Validator) knownCategory(id int) bool {
	for _, c := range v.catalog {
		if c.ID == id {
			return true
		}
	}
	return false
}

// validURL requires an absolute URL with a scheme and host, so bare
// words like "not-a-url" are rejected.
func validURL(raw string) bool {
	u, err := url.Parse(raw)
	return err == nil && u.Scheme != "" && u.Host != ""
}
