// Package domain defines the core types shared by the One Click client.
// All other packages depend on domain; domain depends on nothing.
package domain

// Recipe is the canonical in-memory representation of a catalog recipe.
// The editable form shape and the wire shape both derive from it: the
// category is always a numeric id here, and instructions are always an
// ordered sequence of single steps.
type Recipe struct {
	ID           int // 0 until the server has persisted the recipe
	Name         string
	Description  string
	Duration     int // preparation time in minutes
	Difficulty   Difficulty
	CategoryID   int
	ImageURL     string
	Instructions []Instruction
	Ingredients  []Ingredient
	OwnerID      int
}

// Ingredient is one line item of a recipe's ingredient list.
// Amount and Unit are free text ("2", "cups"), matching the catalog.
type Ingredient struct {
	Name   string
	Amount string
	Unit   string
}

// Instruction is a single preparation step. The server stores each step
// as an individual record.
type Instruction struct {
	Text string
}

// Category is a classification label from the reference catalog.
// Immutable once loaded.
type Category struct {
	ID   int
	Name string
}

// Difficulty is the preparation difficulty level.
type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

// Valid reports whether d is one of the three known levels.
func (d Difficulty) Valid() bool {
	switch d {
	case DifficultyEasy, DifficultyMedium, DifficultyHard:
		return true
	}
	return false
}

// Difficulties lists the levels in menu order.
func Difficulties() []Difficulty {
	return []Difficulty{DifficultyEasy, DifficultyMedium, DifficultyHard}
}
