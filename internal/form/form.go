package form

// Form is the edit-friendly representation of a recipe in progress.
// Instructions are a single multi-line text block and the category is
// the string form of its id -- both are converted to the wire shape by
// the payload mappers, never stored this way outside the form.
type Form struct {
	Name         string
	Description  string
	Duration     string // minutes, as typed
	Difficulty   string
	Category     string // category id as a string; "" until picked
	Image        string
	Instructions string // one preparation-step per line
	Ingredients  *RowList
}

// New creates a blank form with a single empty ingredient row.
func New() *Form {
	return &Form{Ingredients: NewRowList()}
}

// Clone returns an independent deep copy. The submit flow runs off the
// UI goroutine while the user may keep typing, so it must read a
// snapshot rather than the live form.
func (f *Form) Clone() *Form {
	c := *f
	if f.Ingredients != nil {
		c.Ingredients = f.Ingredients.Clone()
	}
	return &c
}
