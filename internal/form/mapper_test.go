package form

import (
	"reflect"
	"testing"

	"github.com/oneclickfood/oneclick/internal/api"
	"github.com/oneclickfood/oneclick/internal/domain"
)

func TestToCreatePayloadKeepsInstructionsVerbatim(t *testing.T) {
	f := validForm(t)
	f.Instructions = "Chop the onions\n\nBoil the pasta\n"

	req := ToCreatePayload(f, 7)

	// Create sends the whole block as a single step record, untouched.
	if len(req.Instructions) != 1 {
		t.Fatalf("expected 1 instruction record, got %d", len(req.Instructions))
	}
	if req.Instructions[0].Name != f.Instructions {
		t.Fatalf("instruction text altered: %q", req.Instructions[0].Name)
	}
	if req.UserID != 7 {
		t.Fatalf("UserID = %d, want 7", req.UserID)
	}
	if req.Duration != 30 {
		t.Fatalf("Duration = %d, want 30", req.Duration)
	}
	if req.CategoryID != 2 {
		t.Fatalf("CategoryID = %d, want 2", req.CategoryID)
	}
}

func TestToCreatePayloadMapsRowsInOrder(t *testing.T) {
	f := validForm(t)
	f.Ingredients.Append()
	f.Ingredients.SetField(1, RowName, "tomatoes")
	f.Ingredients.SetField(1, RowAmount, "500")
	f.Ingredients.SetField(1, RowUnit, "g")

	req := ToCreatePayload(f, 1)

	want := []api.IngredientPayload{
		{Name: "eggs", Count: "4", Type: "pcs"},
		{Name: "tomatoes", Count: "500", Type: "g"},
	}
	if !reflect.DeepEqual(req.Ingredients, want) {
		t.Fatalf("ingredients = %+v, want %+v", req.Ingredients, want)
	}
}

func TestToEditPayloadSplitsInstructionLines(t *testing.T) {
	f := validForm(t)
	f.Instructions = "Chop\n\nBoil"

	req := ToEditPayload(f, 42, 7)

	// Edit splits on line breaks, trims each line, and drops empties.
	want := []api.InstructionPayload{{Name: "Chop"}, {Name: "Boil"}}
	if !reflect.DeepEqual(req.Instructions, want) {
		t.Fatalf("instructions = %+v, want %+v", req.Instructions, want)
	}
	if req.ID != 42 {
		t.Fatalf("ID = %d, want 42", req.ID)
	}
	if req.UserID != 7 {
		t.Fatalf("UserID = %d, want 7", req.UserID)
	}
	if req.CategoryID != 2 {
		t.Fatalf("CategoryID = %d, want 2", req.CategoryID)
	}
}

func TestToEditPayloadTrimsLines(t *testing.T) {
	f := validForm(t)
	f.Instructions = "  Chop the onions  \n\t\nBoil the pasta\n   "

	req := ToEditPayload(f, 1, 1)

	want := []api.InstructionPayload{
		{Name: "Chop the onions"},
		{Name: "Boil the pasta"},
	}
	if !reflect.DeepEqual(req.Instructions, want) {
		t.Fatalf("instructions = %+v, want %+v", req.Instructions, want)
	}
}

func sampleRecipe() domain.Recipe {
	return domain.Recipe{
		ID:          42,
		Name:        "Minestrone",
		Description: "Hearty vegetable soup",
		Duration:    45,
		Difficulty:  domain.DifficultyMedium,
		CategoryID:  3,
		ImageURL:    "https://example.com/minestrone.jpg",
		Instructions: []domain.Instruction{
			{Text: "Dice the vegetables"},
			{Text: "Simmer for 40 minutes"},
			{Text: "Season and serve"},
		},
		Ingredients: []domain.Ingredient{
			{Name: "carrots", Amount: "3", Unit: "pcs"},
			{Name: "stock", Amount: "1", Unit: "l"},
		},
	}
}

func TestFromRecipeJoinsAllInstructionSteps(t *testing.T) {
	f := FromRecipe(sampleRecipe())

	want := "Dice the vegetables\nSimmer for 40 minutes\nSeason and serve"
	if f.Instructions != want {
		t.Fatalf("instructions = %q, want %q", f.Instructions, want)
	}
	if f.Duration != "45" {
		t.Fatalf("duration = %q, want \"45\"", f.Duration)
	}
	if f.Category != "3" {
		t.Fatalf("category = %q, want \"3\"", f.Category)
	}
	if f.Difficulty != string(domain.DifficultyMedium) {
		t.Fatalf("difficulty = %q", f.Difficulty)
	}
}

func TestFromRecipeSeedsRowsWithFreshTokens(t *testing.T) {
	r := sampleRecipe()
	f := FromRecipe(r)

	if f.Ingredients.Len() != 2 {
		t.Fatalf("expected 2 rows, got %d", f.Ingredients.Len())
	}
	seen := map[string]bool{}
	for i, row := range f.Ingredients.Rows() {
		if row.Token == "" {
			t.Fatalf("row %d has no token", i)
		}
		if seen[row.Token] {
			t.Fatalf("duplicate token %q", row.Token)
		}
		seen[row.Token] = true
		if row.Name != r.Ingredients[i].Name {
			t.Fatalf("row %d name = %q, want %q", i, row.Name, r.Ingredients[i].Name)
		}
	}
}

func TestFromRecipeWithoutIngredientsGetsBlankRow(t *testing.T) {
	r := sampleRecipe()
	r.Ingredients = nil

	f := FromRecipe(r)

	if f.Ingredients.Len() != 1 {
		t.Fatalf("expected 1 blank row, got %d", f.Ingredients.Len())
	}
}

func TestEditRoundTripPreservesSteps(t *testing.T) {
	f := FromRecipe(sampleRecipe())

	req := ToEditPayload(f, 42, 7)

	want := []api.InstructionPayload{
		{Name: "Dice the vegetables"},
		{Name: "Simmer for 40 minutes"},
		{Name: "Season and serve"},
	}
	if !reflect.DeepEqual(req.Instructions, want) {
		t.Fatalf("round trip lost steps: %+v", req.Instructions)
	}
}
