package form

import (
	"testing"

	"github.com/oneclickfood/oneclick/internal/domain"
)

func validForm(t *testing.T) *Form {
	t.Helper()
	f := New()
	f.Name = "Shakshuka"
	f.Description = "Eggs poached in spiced tomato sauce"
	f.Duration = "30"
	f.Difficulty = string(domain.DifficultyEasy)
	f.Category = "2"
	f.Image = "https://example.com/shakshuka.jpg"
	f.Instructions = "Fry the onions\nAdd tomatoes\nCrack the eggs"
	f.Ingredients.SetField(0, RowName, "eggs")
	f.Ingredients.SetField(0, RowAmount, "4")
	f.Ingredients.SetField(0, RowUnit, "pcs")
	return f
}

func testCatalog() []domain.Category {
	return []domain.Category{
		{ID: 1, Name: "Breakfast"},
		{ID: 2, Name: "Dinner"},
	}
}

func TestValidateAcceptsCompleteForm(t *testing.T) {
	f := validForm(t)
	errs := NewValidator(WithCatalog(testCatalog())).Validate(f)
	if len(errs) != 0 {
		t.Fatalf("expected no errors, got %v", errs)
	}
}

func TestValidateFieldRules(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(f *Form)
		wantKey string
	}{
		{"empty name", func(f *Form) { f.Name = "" }, "name"},
		{"whitespace name", func(f *Form) { f.Name = "   " }, "name"},
		{"empty description", func(f *Form) { f.Description = "" }, "description"},
		{"empty instructions", func(f *Form) { f.Instructions = "" }, "instructions"},
		{"empty difficulty", func(f *Form) { f.Difficulty = "" }, "difficulty"},
		{"unknown difficulty", func(f *Form) { f.Difficulty = "impossible" }, "difficulty"},
		{"empty duration", func(f *Form) { f.Duration = "" }, "duration"},
		{"non-numeric duration", func(f *Form) { f.Duration = "soon" }, "duration"},
		{"negative duration", func(f *Form) { f.Duration = "-5" }, "duration"},
		{"zero duration", func(f *Form) { f.Duration = "0" }, "duration"},
		{"empty category", func(f *Form) { f.Category = "" }, "category"},
		{"non-numeric category", func(f *Form) { f.Category = "dinner" }, "category"},
		{"unknown category", func(f *Form) { f.Category = "99" }, "category"},
		{"empty image", func(f *Form) { f.Image = "" }, "image"},
		{"bare word image", func(f *Form) { f.Image = "not-a-url" }, "image"},
		{"schemeless image", func(f *Form) { f.Image = "example.com/pic.jpg" }, "image"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := validForm(t)
			tt.mutate(f)

			errs := NewValidator(WithCatalog(testCatalog())).Validate(f)
			if errs.Field(tt.wantKey) == "" {
				t.Fatalf("expected error under %q, got %v", tt.wantKey, errs)
			}
			if len(errs) != 1 {
				t.Fatalf("expected exactly one error, got %v", errs)
			}
		})
	}
}

func TestValidateIngredientRows(t *testing.T) {
	t.Run("zero rows", func(t *testing.T) {
		f := validForm(t)
		f.Ingredients.Remove(0)

		errs := NewValidator(WithCatalog(testCatalog())).Validate(f)
		if errs.Field("ingredients") == "" {
			t.Fatalf("expected collection error, got %v", errs)
		}
	})

	t.Run("nil collection", func(t *testing.T) {
		f := validForm(t)
		f.Ingredients = nil

		errs := NewValidator(WithCatalog(testCatalog())).Validate(f)
		if errs.Field("ingredients") == "" {
			t.Fatalf("expected collection error, got %v", errs)
		}
	})

	t.Run("blank fields on second row", func(t *testing.T) {
		f := validForm(t)
		f.Ingredients.Append()

		errs := NewValidator(WithCatalog(testCatalog())).Validate(f)
		for _, key := range []string{
			"ingredients[1].name",
			"ingredients[1].amount",
			"ingredients[1].unit",
		} {
			if errs.Field(key) == "" {
				t.Fatalf("expected error under %q, got %v", key, errs)
			}
		}
		if errs.Field("ingredients[0].name") != "" {
			t.Fatalf("filled row flagged: %v", errs)
		}
	})
}

func TestValidateWithoutCatalogSkipsMembership(t *testing.T) {
	f := validForm(t)
	f.Category = "99"

	// No catalog loaded: any numeric category id passes.
	errs := NewValidator().Validate(f)
	if len(errs) != 0 {
		t.Fatalf("expected no errors without a catalog, got %v", errs)
	}

	// Explicitly empty catalog behaves the same, not as "nothing is valid".
	errs = NewValidator(WithCatalog(nil)).Validate(f)
	if len(errs) != 0 {
		t.Fatalf("expected no errors with empty catalog, got %v", errs)
	}
}

func TestValidateReportsAllFailuresAtOnce(t *testing.T) {
	f := New()

	errs := NewValidator(WithCatalog(testCatalog())).Validate(f)

	for _, key := range []string{"name", "description", "instructions", "difficulty", "duration", "category", "image"} {
		if errs.Field(key) == "" {
			t.Fatalf("expected error under %q, got %v", key, errs)
		}
	}
}
