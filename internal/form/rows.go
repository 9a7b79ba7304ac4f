// Package form implements the recipe authoring form: the editable form
// state, the dynamic ingredient row collection, the validation rule
// set, the form/payload mappers, and the submit flow.
package form

import "github.com/google/uuid"

// RowField names one scalar field of an ingredient row.
type RowField string

const (
	RowName   RowField = "name"
	RowAmount RowField = "amount"
	RowUnit   RowField = "unit"
)

// Row is one ingredient line of the form. Token identifies the row for
// the rendering layer and survives insertion and removal of other rows;
// positional indexes are only meaningful for a single render pass.
type Row struct {
	Token  string
	Name   string
	Amount string
	Unit   string
}

// RowList is the ordered, mutable collection of ingredient rows.
// Not safe for concurrent use; the form is owned by the UI event loop.
type RowList struct {
	rows []Row
}

// NewRowList creates a list with a single blank row, matching the
// form's initial state.
func NewRowList() *RowList {
	l := &RowList{}
	l.Append()
	return l
}

func newRow() Row {
	return Row{Token: uuid.NewString()}
}

// Append adds a blank row with a fresh token at the end.
func (l *RowList) Append() {
	l.rows = append(l.rows, newRow())
}

// InsertAfter adds a blank row immediately after the row with the given
// token. An unknown token appends at the end.
func (l *RowList) InsertAfter(token string) {
	i := l.IndexOf(token)
	if i < 0 || i == len(l.rows)-1 {
		l.Append()
		return
	}
	l.rows = append(l.rows[:i+1], append([]Row{newRow()}, l.rows[i+1:]...)...)
}

// Remove deletes the row at position i. Out-of-bounds indexes leave the
// list unchanged. Removing the last remaining row is allowed here; the
// "at least one ingredient" invariant belongs to validation.
func (l *RowList) Remove(i int) {
	if i < 0 || i >= len(l.rows) {
		return
	}
	l.rows = append(l.rows[:i], l.rows[i+1:]...)
}

// RemoveByToken deletes the row carrying the given token, if any.
func (l *RowList) RemoveByToken(token string) {
	l.Remove(l.IndexOf(token))
}

// SetField updates one scalar field of the row at position i.
// Out-of-bounds indexes are ignored.
func (l *RowList) SetField(i int, field RowField, value string) {
	if i < 0 || i >= len(l.rows) {
		return
	}
	switch field {
	case RowName:
		l.rows[i].Name = value
	case RowAmount:
		l.rows[i].Amount = value
	case RowUnit:
		l.rows[i].Unit = value
	}
}

// IndexOf returns the position of the row with the given token, or -1.
func (l *RowList) IndexOf(token string) int {
	for i, r := range l.rows {
		if r.Token == token {
			return i
		}
	}
	return -1
}

// Len returns the number of rows.
func (l *RowList) Len() int { return len(l.rows) }

// At returns the row at position i.
func (l *RowList) At(i int) Row { return l.rows[i] }

// Clone returns an independent copy of the list. Tokens are preserved.
func (l *RowList) Clone() *RowList {
	c := &RowList{rows: make([]Row, len(l.rows))}
	copy(c.rows, l.rows)
	return c
}

// Rows returns a copy of the rows in order.
func (l *RowList) Rows() []Row {
	out := make([]Row, len(l.rows))
	copy(out, l.rows)
	return out
}
