package form

import (
	"strconv"
	"strings"

	"github.com/oneclickfood/oneclick/internal/api"
	"github.com/oneclickfood/oneclick/internal/domain"
)

// The mappers below are the single place that reconciles the form's
// "one text block" of instructions with the server's ordered list of
// step records. They are pure: validation has already run, so parse
// failures simply map to zero values.

// ToCreatePayload shapes a validated form into the create request.
// The whole instructions block becomes exactly one step record, kept
// verbatim; the server owns id assignment.
func ToCreatePayload(f *Form, userID int) api.CreateRecipeRequest {
	return api.CreateRecipeRequest{
		Name:         f.Name,
		UserID:       userID,
		Instructions: []api.InstructionPayload{{Name: f.Instructions}},
		Difficulty:   f.Difficulty,
		Duration:     atoi(f.Duration),
		Description:  f.Description,
		CategoryID:   atoi(f.Category),
		Img:          f.Image,
		Ingredients:  mapRows(f.Ingredients),
	}
}

// ToEditPayload shapes a validated form into the edit request. The
// instructions block is split on line breaks; every non-empty trimmed
// line becomes one step record, in order.
func ToEditPayload(f *Form, id, userID int) api.EditRecipeRequest {
	var steps []api.InstructionPayload
	for _, line := range strings.Split(f.Instructions, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		steps = append(steps, api.InstructionPayload{Name: line})
	}

	return api.EditRecipeRequest{
		ID:           id,
		UserID:       userID,
		Name:         f.Name,
		Instructions: steps,
		Duration:     atoi(f.Duration),
		Description:  f.Description,
		Difficulty:   f.Difficulty,
		CategoryID:   atoi(f.Category),
		Ingredients:  mapRows(f.Ingredients),
		Img:          f.Image,
	}
}

// FromRecipe seeds an edit form from a persisted recipe. All step texts
// are joined into the text block, one per line, so re-editing a
// multi-step recipe preserves every step; ingredient rows get fresh
// identity tokens.
func FromRecipe(r domain.Recipe) *Form {
	texts := make([]string, len(r.Instructions))
	for i, ins := range r.Instructions {
		texts[i] = ins.Text
	}

	rows := &RowList{}
	for _, ing := range r.Ingredients {
		rows.Append()
		i := rows.Len() - 1
		rows.SetField(i, RowName, ing.Name)
		rows.SetField(i, RowAmount, ing.Amount)
		rows.SetField(i, RowUnit, ing.Unit)
	}
	if rows.Len() == 0 {
		rows.Append()
	}

	return &Form{
		Name:         r.Name,
		Description:  r.Description,
		Duration:     strconv.Itoa(r.Duration),
		Difficulty:   string(r.Difficulty),
		Category:     strconv.Itoa(r.CategoryID),
		Image:        r.ImageURL,
		Instructions: strings.Join(texts, "\n"),
		Ingredients:  rows,
	}
}

func mapRows(l *RowList) []api.IngredientPayload {
	if l == nil {
		return nil
	}
	out := make([]api.IngredientPayload, l.Len())
	for i, row := range l.Rows() {
		out[i] = api.IngredientPayload{
			Name:  row.Name,
			Count: row.Amount,
			Type:  row.Unit,
		}
	}
	return out
}

func atoi(s string) int {
	n, _ := strconv.Atoi(strings.TrimSpace(s))
	return n
}
