package display

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/oneclickfood/oneclick/internal/domain"
	"github.com/oneclickfood/oneclick/internal/form"
	"github.com/oneclickfood/oneclick/internal/store"
)

// Scalar field focus positions. Ingredient row fields follow, three per
// row, and the submit button sits last.
const (
	focusName = iota
	focusDescription
	focusDuration
	focusDifficulty
	focusCategory
	focusImage
	focusInstructions
	focusFirstRow
)

// rowInputs carries the three text inputs of one ingredient row, keyed
// by the row's identity token so inputs survive insertion and removal
// of neighbours.
type rowInputs struct {
	token  string
	name   textinput.Model
	amount textinput.Model
	unit   textinput.Model
}

// recipeFormModel is the authoring form for both create and edit.
type recipeFormModel struct {
	ctx  context.Context
	deps *Deps

	f        *form.Form
	recipeID int // 0 on create
	editing  bool

	name         textinput.Model
	description  textinput.Model
	duration     textinput.Model
	image        textinput.Model
	instructions textarea.Model
	rows         []rowInputs

	categories    []domain.Category
	difficultyIdx int // index into domain.Difficulties(), -1 = unset
	categoryIdx   int // index into categories, -1 = unset

	focus      int
	errs       form.Errors
	status     string
	submitting bool
}

func newRecipeFormModel(ctx context.Context, deps *Deps, f *form.Form, recipeID int) recipeFormModel {
	if f == nil {
		f = form.New()
	}

	m := recipeFormModel{
		ctx:           ctx,
		deps:          deps,
		f:             f,
		recipeID:      recipeID,
		editing:       recipeID != 0,
		difficultyIdx: -1,
		categoryIdx:   -1,
	}

	m.name = newInput("recipe name", f.Name)
	m.description = newInput("short description", f.Description)
	m.duration = newInput("minutes", f.Duration)
	m.image = newInput("https://...", f.Image)

	m.instructions = textarea.New()
	m.instructions.Placeholder = "one step per line"
	m.instructions.SetValue(f.Instructions)
	m.instructions.SetHeight(4)

	m.refreshCategories()
	m.seedSelectors()
	m.syncRows()
	m.applyFocus()
	return m
}

func newInput(placeholder, value string) textinput.Model {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.SetValue(value)
	ti.CharLimit = 200
	ti.Width = 48
	return ti
}

// refreshCategories snapshots the category catalog. An empty or
// still-loading catalog simply yields no options.
func (m *recipeFormModel) refreshCategories() {
	if cats, state, err := m.deps.Categories.Read(); err == nil && state == store.CatalogLoaded {
		m.categories = cats
	}
}

// seedSelectors positions the difficulty and category selectors from
// the form's current string values (set when editing).
func (m *recipeFormModel) seedSelectors() {
	for i, d := range domain.Difficulties() {
		if string(d) == m.f.Difficulty {
			m.difficultyIdx = i
		}
	}
	if id, err := strconv.Atoi(m.f.Category); err == nil {
		for i, c := range m.categories {
			if c.ID == id {
				m.categoryIdx = i
			}
		}
	}
}

// syncRows reconciles the input widgets with the form's row collection
// by identity token: surviving rows keep their inputs (and their
// editing state), new tokens get fresh blank inputs, removed tokens
// drop out.
func (m *recipeFormModel) syncRows() {
	existing := make(map[string]rowInputs, len(m.rows))
	for _, ri := range m.rows {
		existing[ri.token] = ri
	}

	rows := m.f.Ingredients.Rows()
	next := make([]rowInputs, 0, len(rows))
	for _, row := range rows {
		if ri, ok := existing[row.Token]; ok {
			next = append(next, ri)
			continue
		}
		ri := rowInputs{
			token:  row.Token,
			name:   newInput("ingredient", row.Name),
			amount: newInput("amount", row.Amount),
			unit:   newInput("unit", row.Unit),
		}
		ri.name.Width = 20
		ri.amount.Width = 10
		ri.unit.Width = 12
		next = append(next, ri)
	}
	m.rows = next
}

func (m *recipeFormModel) submitIndex() int { return focusFirstRow + 3*len(m.rows) }
func (m *recipeFormModel) focusMax() int    { return m.submitIndex() }

// rowAt maps a focus position to (row, column), or (-1, -1) for scalar
// fields and the submit button.
func (m *recipeFormModel) rowAt(focus int) (int, int) {
	if focus < focusFirstRow || focus >= m.submitIndex() {
		return -1, -1
	}
	off := focus - focusFirstRow
	return off / 3, off % 3
}

// applyFocus focuses exactly the widget under the cursor.
func (m *recipeFormModel) applyFocus() {
	m.name.Blur()
	m.description.Blur()
	m.duration.Blur()
	m.image.Blur()
	m.instructions.Blur()
	for i := range m.rows {
		m.rows[i].name.Blur()
		m.rows[i].amount.Blur()
		m.rows[i].unit.Blur()
	}

	switch m.focus {
	case focusName:
		m.name.Focus()
	case focusDescription:
		m.description.Focus()
	case focusDuration:
		m.duration.Focus()
	case focusImage:
		m.image.Focus()
	case focusInstructions:
		m.instructions.Focus()
	default:
		if row, col := m.rowAt(m.focus); row >= 0 {
			switch col {
			case 0:
				m.rows[row].name.Focus()
			case 1:
				m.rows[row].amount.Focus()
			case 2:
				m.rows[row].unit.Focus()
			}
		}
	}
}

func (m recipeFormModel) Update(msg tea.Msg) (recipeFormModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tickMsg:
		// The catalog may finish loading while the form is open.
		if len(m.categories) == 0 {
			m.refreshCategories()
			m.seedSelectors()
		}
		return m, nil

	case submitDoneMsg:
		m.submitting = false
		switch {
		case msg.err != nil:
			m.status = msg.err.Error()
		case len(msg.res.FieldErrors) > 0:
			m.errs = msg.res.FieldErrors
			m.status = "please fix the highlighted fields"
		case msg.res.Message != "":
			m.status = msg.res.Message
		default:
			// Success; the submitter has already signalled navigation.
			return m, m.reloadRecipesCmd()
		}
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m.updateFocused(msg)
}

func (m recipeFormModel) handleKey(msg tea.KeyMsg) (recipeFormModel, tea.Cmd) {
	switch msg.String() {
	case "esc":
		return m, navigateCmd(screenCatalog, nil, 0)

	case "tab", "shift+tab":
		delta := 1
		if msg.String() == "shift+tab" {
			delta = -1
		}
		m.focus = (m.focus + delta + m.focusMax() + 1) % (m.focusMax() + 1)
		m.applyFocus()
		return m, nil

	case "left", "right":
		if m.focus == focusDifficulty || m.focus == focusCategory {
			m.cycleSelector(msg.String() == "right")
			return m, nil
		}

	case "ctrl+a":
		m.f.Ingredients.Append()
		m.syncRows()
		return m, nil

	case "ctrl+d":
		if row, _ := m.rowAt(m.focus); row >= 0 {
			token := m.rows[row].token
			m.f.Ingredients.RemoveByToken(token)
			m.syncRows()
			if m.focus >= m.submitIndex() {
				m.focus = m.focusMax()
			}
			m.applyFocus()
		}
		return m, nil

	case "ctrl+s":
		return m.startSubmit()

	case "enter":
		if m.focus == m.submitIndex() {
			return m.startSubmit()
		}
	}

	return m.updateFocused(msg)
}

// cycleSelector moves the focused selector. With no loaded categories
// the category selector has nothing to cycle and stays unset.
func (m *recipeFormModel) cycleSelector(forward bool) {
	step := 1
	if !forward {
		step = -1
	}
	if m.focus == focusDifficulty {
		n := len(domain.Difficulties())
		m.difficultyIdx = (m.difficultyIdx + step + n) % n
		m.f.Difficulty = string(domain.Difficulties()[m.difficultyIdx])
		return
	}
	n := len(m.categories)
	if n == 0 {
		return
	}
	m.categoryIdx = (m.categoryIdx + step + n) % n
	m.f.Category = strconv.Itoa(m.categories[m.categoryIdx].ID)
}

// updateFocused delegates a message to the focused widget and copies
// its value back into the form state.
func (m recipeFormModel) updateFocused(msg tea.Msg) (recipeFormModel, tea.Cmd) {
	var cmd tea.Cmd
	switch m.focus {
	case focusName:
		m.name, cmd = m.name.Update(msg)
		m.f.Name = m.name.Value()
	case focusDescription:
		m.description, cmd = m.description.Update(msg)
		m.f.Description = m.description.Value()
	case focusDuration:
		m.duration, cmd = m.duration.Update(msg)
		m.f.Duration = m.duration.Value()
	case focusImage:
		m.image, cmd = m.image.Update(msg)
		m.f.Image = m.image.Value()
	case focusInstructions:
		m.instructions, cmd = m.instructions.Update(msg)
		m.f.Instructions = m.instructions.Value()
	default:
		row, col := m.rowAt(m.focus)
		if row < 0 {
			return m, nil
		}
		idx := m.f.Ingredients.IndexOf(m.rows[row].token)
		switch col {
		case 0:
			m.rows[row].name, cmd = m.rows[row].name.Update(msg)
			m.f.Ingredients.SetField(idx, form.RowName, m.rows[row].name.Value())
		case 1:
			m.rows[row].amount, cmd = m.rows[row].amount.Update(msg)
			m.f.Ingredients.SetField(idx, form.RowAmount, m.rows[row].amount.Value())
		case 2:
			m.rows[row].unit, cmd = m.rows[row].unit.Update(msg)
			m.f.Ingredients.SetField(idx, form.RowUnit, m.rows[row].unit.Value())
		}
	}
	return m, cmd
}

func (m recipeFormModel) startSubmit() (recipeFormModel, tea.Cmd) {
	if m.submitting {
		return m, nil
	}
	m.submitting = true
	m.status = ""
	m.errs = nil

	// The command runs on its own goroutine while the event loop keeps
	// delivering keystrokes, so it gets a snapshot, never the live form.
	deps, ctx, f := m.deps, m.ctx, m.f.Clone()
	recipeID, editing := m.recipeID, m.editing
	return m, func() tea.Msg {
		var res form.Result
		var err error
		if editing {
			res, err = deps.Submitter.Edit(ctx, f, recipeID)
		} else {
			res, err = deps.Submitter.Create(ctx, f)
		}
		return submitDoneMsg{res: res, err: err}
	}
}

// reloadRecipesCmd refreshes the catalog after a successful submit so
// the new or updated recipe shows up on the home view.
func (m recipeFormModel) reloadRecipesCmd() tea.Cmd {
	deps, ctx := m.deps, m.ctx
	return func() tea.Msg {
		_ = deps.Recipes.Load(ctx)
		return storesReloadedMsg{}
	}
}

// ── View ─────────────────────────────────────────────────────────

func (m recipeFormModel) View() string {
	var b strings.Builder

	if m.editing {
		b.WriteString(titleStyle.Render(fmt.Sprintf("Edit recipe #%d", m.recipeID)))
	} else {
		b.WriteString(titleStyle.Render("Add a recipe"))
	}
	b.WriteString("\n\n")

	m.writeField(&b, "Name", m.name.View(), "name", focusName)
	m.writeField(&b, "Description", m.description.View(), "description", focusDescription)
	m.writeField(&b, "Time (min)", m.duration.View(), "duration", focusDuration)
	m.writeField(&b, "Difficulty", m.difficultyView(), "difficulty", focusDifficulty)
	m.writeField(&b, "Category", m.categoryView(), "category", focusCategory)
	m.writeField(&b, "Image link", m.image.View(), "image", focusImage)
	m.writeField(&b, "Instructions", "\n"+m.instructions.View(), "instructions", focusInstructions)

	b.WriteString(m.label("Ingredients", m.focus >= focusFirstRow && m.focus < m.submitIndex()))
	b.WriteString("\n")
	if msg := m.errs.Field("ingredients"); msg != "" {
		b.WriteString(errorStyle.Render("  " + msg))
		b.WriteString("\n")
	}
	for i, ri := range m.rows {
		b.WriteString("  " + ri.name.View() + " " + ri.amount.View() + " " + ri.unit.View())
		b.WriteString("\n")
		for _, part := range []string{"name", "amount", "unit"} {
			if msg := m.errs.Field(fmt.Sprintf("ingredients[%d].%s", i, part)); msg != "" {
				b.WriteString(errorStyle.Render("  " + msg))
				b.WriteString("\n")
			}
		}
	}
	b.WriteString("\n")

	submit := "[ save recipe ]"
	if m.submitting {
		submit = "[ sending... ]"
	}
	if m.focus == m.submitIndex() {
		b.WriteString(focusedLabelStyle.Render(submit))
	} else {
		b.WriteString(labelStyle.Render(submit))
	}
	b.WriteString("\n")

	if m.status != "" {
		b.WriteString(statusStyle.Render(m.status))
		b.WriteString("\n")
	}
	b.WriteString(hintStyle.Render("tab next field · ←/→ pick option · ctrl+a add ingredient · ctrl+d remove · ctrl+s save · esc back"))
	b.WriteString("\n")
	return b.String()
}

func (m recipeFormModel) writeField(b *strings.Builder, label, widget, errKey string, pos int) {
	b.WriteString(m.label(label, m.focus == pos))
	b.WriteString(" ")
	b.WriteString(widget)
	b.WriteString("\n")
	if msg := m.errs.Field(errKey); msg != "" {
		b.WriteString(errorStyle.Render("  " + msg))
		b.WriteString("\n")
	}
}

func (m recipeFormModel) label(text string, focused bool) string {
	padded := fmt.Sprintf("%-12s", text)
	if focused {
		return focusedLabelStyle.Render(padded)
	}
	return labelStyle.Render(padded)
}

func (m recipeFormModel) difficultyView() string {
	if m.difficultyIdx < 0 {
		return hintStyle.Render("< pick a level >")
	}
	return selectorStyle.Render("< " + string(domain.Difficulties()[m.difficultyIdx]) + " >")
}

func (m recipeFormModel) categoryView() string {
	if len(m.categories) == 0 {
		return hintStyle.Render("(no categories)")
	}
	if m.categoryIdx < 0 {
		return hintStyle.Render("< pick a category >")
	}
	return selectorStyle.Render("< " + m.categories[m.categoryIdx].Name + " >")
}
