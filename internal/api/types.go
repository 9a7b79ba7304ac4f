package api

import "github.com/oneclickfood/oneclick/internal/domain"

// ── Wire types ───────────────────────────────────────────────────

// InstructionPayload is one preparation step on the wire. The server
// keeps the step text under "Name".
type InstructionPayload struct {
	Name string `json:"Name"`
}

// IngredientPayload is one ingredient row on the wire: Count is the
// amount and Type the unit, matching the server's vocabulary.
type IngredientPayload struct {
	Name  string `json:"Name"`
	Count string `json:"Count"`
	Type  string `json:"Type"`
}

// CreateRecipeRequest is the body of POST /recipe. The ingredient field
// is spelled "Ingridents" on this endpoint; the server expects the typo
// and it must be preserved.
type CreateRecipeRequest struct {
	Name         string               `json:"Name"`
	UserID       int                  `json:"UserId"`
	Instructions []InstructionPayload `json:"Instructions"`
	Difficulty   string               `json:"Difficulty"`
	Duration     int                  `json:"Duration"`
	Description  string               `json:"Description"`
	CategoryID   int                  `json:"CategoryId"`
	Img          string               `json:"Img"`
	Ingredients  []IngredientPayload  `json:"Ingridents"`
}

// EditRecipeRequest is the body of POST /recipe/edit. Unlike create it
// carries the recipe id, and the ingredient field uses the regular
// spelling.
type EditRecipeRequest struct {
	ID           int                  `json:"Id"`
	UserID       int                  `json:"UserId"`
	Name         string               `json:"Name"`
	Instructions []InstructionPayload `json:"Instructions"`
	Duration     int                  `json:"Duration"`
	Description  string               `json:"Description"`
	Difficulty   string               `json:"Difficulty"`
	CategoryID   int                  `json:"CategoryId"`
	Ingredients  []IngredientPayload  `json:"Ingredients"`
	Img          string               `json:"Img"`
}

// loginRequest is the body of POST /user/login.
type loginRequest struct {
	UserName string `json:"UserName"`
	Password string `json:"Password"`
}

// signUpRequest is the body of POST /user/signin.
type signUpRequest struct {
	UserName string `json:"UserName"`
	Password string `json:"Password"`
	Name     string `json:"Name"`
	Phone    string `json:"Phone"`
	Email    string `json:"Email"`
	Tz       string `json:"Tz"`
}

// userResponse is the identity record the server returns from login and
// signup.
type userResponse struct {
	ID       int    `json:"Id"`
	Name     string `json:"Name"`
	UserName string `json:"UserName"`
	Phone    string `json:"Phone"`
	Email    string `json:"Email"`
	Tz       string `json:"Tz"`
	Password string `json:"Password"`
}

func (u userResponse) toDomain() domain.User {
	return domain.User{
		ID:       u.ID,
		Name:     u.Name,
		UserName: u.UserName,
		Phone:    u.Phone,
		Email:    u.Email,
		TaxID:    u.Tz,
		Password: u.Password,
	}
}

// categoryResponse is one entry of GET /category.
type categoryResponse struct {
	ID   int    `json:"Id"`
	Name string `json:"Name"`
}

// recipeResponse is a persisted recipe as the server sends it: category
// as a bare number under "Category" and ingredients under "Ingridents".
type recipeResponse struct {
	ID           int                  `json:"Id"`
	Name         string               `json:"Name"`
	Img          string               `json:"Img"`
	Duration     int                  `json:"Duration"`
	Difficulty   string               `json:"Difficulty"`
	Description  string               `json:"Description"`
	Category     int                  `json:"Category"`
	Instructions []InstructionPayload `json:"Instructions"`
	Ingredients  []IngredientPayload  `json:"Ingridents"`
	UserID       int                  `json:"UserId"`
}

func (r recipeResponse) toDomain() domain.Recipe {
	rec := domain.Recipe{
		ID:          r.ID,
		Name:        r.Name,
		Description: r.Description,
		Duration:    r.Duration,
		Difficulty:  domain.Difficulty(r.Difficulty),
		CategoryID:  r.Category,
		ImageURL:    r.Img,
		OwnerID:     r.UserID,
	}
	for _, ins := range r.Instructions {
		rec.Instructions = append(rec.Instructions, domain.Instruction{Text: ins.Name})
	}
	for _, ing := range r.Ingredients {
		rec.Ingredients = append(rec.Ingredients, domain.Ingredient{
			Name:   ing.Name,
			Amount: ing.Count,
			Unit:   ing.Type,
		})
	}
	return rec
}
