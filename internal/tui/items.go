package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/spec-kit/helpdesk/internal/domain"
	"github.com/spec-kit/helpdesk/internal/service"
	"github.com/spec-kit/helpdesk/internal/store"
	apperrors "github.com/spec-kit/helpdesk/pkg/util"
)

type itemMode int

const (
	itemModeList itemMode = iota
	itemModeDetail
	itemModeReassign
	itemModeNote
	itemModeCreate
)

type formField struct {
	label string
	input textinput.Model
}

func newFormField(label, placeholder string) formField {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.CharLimit = 120
	return formField{label: label, input: ti}
}

// itemTab drives the list/detail/claim/reassign flows for one work-item
// family. Tickets and tasks share the logic and differ only in the form
// and row rendering hooks.
type itemTab[T domain.WorkItem] struct {
	kind      domain.ItemKind
	items     *store.Store[T]
	claims    *service.ClaimService[T]
	lifecycle *service.LifecycleService[T]
	registry  *store.Registry
	articles  *service.ArticleService

	keys   KeyMap
	styles Styles

	mode       itemMode
	cursor     int
	mineOnly   bool
	detailID   int
	noteInput  textinput.Model
	candidates []*domain.User
	candCursor int
	form       []formField
	formIndex  int

	newForm   func() []formField
	buildItem func(values []string) T
	header    string
	renderRow func(item T, assignedTo string) string
}

func (t *itemTab[T]) visible(current *domain.User) []T {
	active := t.items.ListActive()
	if !t.mineOnly || current == nil {
		return active
	}
	mine := make([]T, 0, len(active))
	for _, item := range active {
		if holder := item.AssigneeID(); holder != nil && *holder == current.ID {
			mine = append(mine, item)
		}
	}
	return mine
}

func (t *itemTab[T]) selected(current *domain.User) (T, bool) {
	var zero T
	rows := t.visible(current)
	if len(rows) == 0 {
		return zero, false
	}
	if t.cursor >= len(rows) {
		t.cursor = len(rows) - 1
	}
	return rows[t.cursor], true
}

// update handles one key press. The returned string is a transient status
// line message; isErr selects its styling.
func (t *itemTab[T]) update(msg tea.KeyMsg, current *domain.User) (status string, isErr bool) {
	switch t.mode {
	case itemModeList:
		return t.updateList(msg, current)
	case itemModeDetail:
		return t.updateDetail(msg, current)
	case itemModeReassign:
		return t.updateReassign(msg, current)
	case itemModeNote:
		return t.updateNote(msg, current)
	case itemModeCreate:
		return t.updateCreate(msg, current)
	}
	return "", false
}

func (t *itemTab[T]) updateList(msg tea.KeyMsg, current *domain.User) (string, bool) {
	ctx := context.Background()
	switch {
	case key.Matches(msg, t.keys.Up):
		if t.cursor > 0 {
			t.cursor--
		}
	case key.Matches(msg, t.keys.Down):
		if t.cursor < len(t.visible(current))-1 {
			t.cursor++
		}
	case key.Matches(msg, t.keys.Mine):
		t.mineOnly = !t.mineOnly
		t.cursor = 0
	case key.Matches(msg, t.keys.Select):
		if item, ok := t.selected(current); ok {
			t.detailID = item.ItemID()
			t.mode = itemModeDetail
		}
	case key.Matches(msg, t.keys.Claim):
		item, ok := t.selected(current)
		if !ok {
			return "nothing to claim", true
		}
		if _, err := t.claims.Claim(ctx, item.ItemID(), current); err != nil {
			return errMessage(err), true
		}
		return fmt.Sprintf("%s %d claimed by %s", t.kindLabel(), item.ItemID(), current.Name), false
	case key.Matches(msg, t.keys.Unclaim):
		item, ok := t.selected(current)
		if !ok {
			return "nothing to unclaim", true
		}
		if err := t.claims.Unclaim(ctx, item.ItemID(), current); err != nil {
			return errMessage(err), true
		}
		return fmt.Sprintf("%s %d unclaimed", t.kindLabel(), item.ItemID()), false
	case key.Matches(msg, t.keys.Reassign):
		item, ok := t.selected(current)
		if !ok {
			return "nothing to reassign", true
		}
		t.candidates = t.claims.Candidates(current)
		if len(t.candidates) == 0 {
			return "no assignable users", true
		}
		t.detailID = item.ItemID()
		t.candCursor = 0
		t.mode = itemModeReassign
	case key.Matches(msg, t.keys.Resolve):
		item, ok := t.selected(current)
		if !ok {
			return "nothing to resolve", true
		}
		if _, err := t.lifecycle.SetStatus(ctx, item.ItemID(), domain.ItemStatusResolved, current); err != nil {
			return errMessage(err), true
		}
		return fmt.Sprintf("%s %d resolved", t.kindLabel(), item.ItemID()), false
	case key.Matches(msg, t.keys.Reopen):
		item, ok := t.selected(current)
		if !ok {
			return "", false
		}
		if _, err := t.lifecycle.SetStatus(ctx, item.ItemID(), domain.ItemStatusOpen, current); err != nil {
			return errMessage(err), true
		}
		return fmt.Sprintf("%s %d marked open", t.kindLabel(), item.ItemID()), false
	case key.Matches(msg, t.keys.Delete):
		item, ok := t.selected(current)
		if !ok {
			return "nothing to delete", true
		}
		if err := t.lifecycle.Delete(ctx, item.ItemID(), current); err != nil {
			return errMessage(err), true
		}
		return fmt.Sprintf("%s %d deleted", t.kindLabel(), item.ItemID()), false
	case key.Matches(msg, t.keys.New):
		t.form = t.newForm()
		t.formIndex = 0
		t.form[0].input.Focus()
		t.mode = itemModeCreate
	}
	return "", false
}

func (t *itemTab[T]) updateDetail(msg tea.KeyMsg, current *domain.User) (string, bool) {
	ctx := context.Background()
	switch {
	case key.Matches(msg, t.keys.Back):
		t.mode = itemModeList
	case key.Matches(msg, t.keys.Note):
		t.noteInput = textinput.New()
		t.noteInput.Placeholder = "internal note"
		t.noteInput.CharLimit = 240
		t.noteInput.Focus()
		t.mode = itemModeNote
	case key.Matches(msg, t.keys.Convert):
		if t.articles == nil {
			return "", false
		}
		article, err := t.articles.ConvertTicket(ctx, t.detailID, current)
		if err != nil {
			return errMessage(err), true
		}
		return fmt.Sprintf("article %d created from ticket %d", article.ID, t.detailID), false
	}
	return "", false
}

func (t *itemTab[T]) updateReassign(msg tea.KeyMsg, current *domain.User) (string, bool) {
	switch {
	case key.Matches(msg, t.keys.Back):
		t.mode = itemModeList
	case key.Matches(msg, t.keys.Up):
		if t.candCursor > 0 {
			t.candCursor--
		}
	case key.Matches(msg, t.keys.Down):
		if t.candCursor < len(t.candidates)-1 {
			t.candCursor++
		}
	case key.Matches(msg, t.keys.Select):
		target := t.candidates[t.candCursor]
		t.mode = itemModeList
		if _, err := t.claims.Reassign(context.Background(), t.detailID, target, current); err != nil {
			return errMessage(err), true
		}
		return fmt.Sprintf("%s %d reassigned to %s", t.kindLabel(), t.detailID, target.Name), false
	}
	return "", false
}

func (t *itemTab[T]) updateNote(msg tea.KeyMsg, current *domain.User) (string, bool) {
	switch {
	case key.Matches(msg, t.keys.Back):
		t.mode = itemModeDetail
	case msg.Type == tea.KeyEnter:
		text := t.noteInput.Value()
		t.mode = itemModeDetail
		if _, err := t.lifecycle.AddNote(context.Background(), t.detailID, current, text); err != nil {
			return errMessage(err), true
		}
		return "note added", false
	default:
		t.noteInput, _ = t.noteInput.Update(msg)
	}
	return "", false
}

func (t *itemTab[T]) updateCreate(msg tea.KeyMsg, current *domain.User) (string, bool) {
	switch {
	case key.Matches(msg, t.keys.Back):
		t.mode = itemModeList
	case msg.Type == tea.KeyEnter:
		t.form[t.formIndex].input.Blur()
		if t.formIndex < len(t.form)-1 {
			t.formIndex++
			t.form[t.formIndex].input.Focus()
			return "", false
		}
		values := make([]string, len(t.form))
		for i, field := range t.form {
			values[i] = strings.TrimSpace(field.input.Value())
		}
		t.mode = itemModeList
		item := t.buildItem(values)
		created, err := t.lifecycle.Create(context.Background(), item, current)
		if err != nil {
			return errMessage(err), true
		}
		return fmt.Sprintf("%s %d created", t.kindLabel(), created.ItemID()), false
	default:
		t.form[t.formIndex].input, _ = t.form[t.formIndex].input.Update(msg)
	}
	return "", false
}

func (t *itemTab[T]) view(current *domain.User) string {
	switch t.mode {
	case itemModeDetail:
		return t.viewDetail()
	case itemModeReassign:
		return t.viewReassign()
	case itemModeNote:
		return t.viewNote()
	case itemModeCreate:
		return t.viewCreate()
	default:
		return t.viewList(current)
	}
}

func (t *itemTab[T]) viewList(current *domain.User) string {
	var b strings.Builder
	rows := t.visible(current)
	scope := "all"
	if t.mineOnly {
		scope = "mine"
	}
	b.WriteString(t.styles.ColHeader.Render(t.header))
	b.WriteString("\n")
	if len(rows) == 0 {
		b.WriteString(t.styles.Muted.Render(fmt.Sprintf("(no %ss)", t.kindLabel())))
		b.WriteString("\n")
	}
	for i, item := range rows {
		line := t.renderRow(item, t.assignedName(item))
		if i == t.cursor {
			b.WriteString(t.styles.RowCursor.Render("> " + line))
		} else {
			b.WriteString(t.styles.Row.Render("  " + line))
		}
		b.WriteString("\n")
	}
	help := fmt.Sprintf("[%s] c claim · u unclaim · r reassign · s resolve · enter detail · n new · x delete · m mine", scope)
	b.WriteString(t.styles.Muted.Render(help))
	return b.String()
}

func (t *itemTab[T]) viewDetail() string {
	item, ok := t.items.Get(t.detailID)
	if !ok {
		return t.styles.Muted.Render(fmt.Sprintf("%s %d is gone", t.kindLabel(), t.detailID))
	}
	var b strings.Builder
	fmt.Fprintf(&b, "%s #%d — %s\n", t.kindLabel(), item.ItemID(), item.Label())
	fmt.Fprintf(&b, "status: %s", item.ItemStatus())
	if name := t.assignedName(item); name != "" {
		fmt.Fprintf(&b, " · assigned to %s", name)
	} else if last := item.LastAssigneeID(); last != nil {
		fmt.Fprintf(&b, " · last held by %s", t.registry.NameOf(last))
	}
	b.WriteString("\n\nnotes:\n")
	if len(item.Notes()) == 0 {
		b.WriteString(t.styles.Muted.Render("(none)"))
		b.WriteString("\n")
	}
	for _, note := range item.Notes() {
		fmt.Fprintf(&b, "  [%s] %s\n", note.Author, note.Text)
	}
	help := "a add note · esc back"
	if t.articles != nil {
		help = "a add note · v convert to article · esc back"
	}
	b.WriteString(t.styles.Muted.Render(help))
	return b.String()
}

func (t *itemTab[T]) viewReassign() string {
	var b strings.Builder
	fmt.Fprintf(&b, "reassign %s %d to:\n", t.kindLabel(), t.detailID)
	for i, candidate := range t.candidates {
		line := fmt.Sprintf("%s (%s, %s)", candidate.Name, candidate.Role, candidate.Status)
		if i == t.candCursor {
			b.WriteString(t.styles.RowCursor.Render("> " + line))
		} else {
			b.WriteString("  " + line)
		}
		b.WriteString("\n")
	}
	b.WriteString(t.styles.Muted.Render("enter confirm · esc cancel"))
	return b.String()
}

func (t *itemTab[T]) viewNote() string {
	var b strings.Builder
	fmt.Fprintf(&b, "add note to %s %d:\n", t.kindLabel(), t.detailID)
	b.WriteString(t.noteInput.View())
	b.WriteString("\n")
	b.WriteString(t.styles.Muted.Render("enter save · esc cancel"))
	return b.String()
}

func (t *itemTab[T]) viewCreate() string {
	var b strings.Builder
	fmt.Fprintf(&b, "new %s:\n", t.kindLabel())
	for i, field := range t.form {
		marker := "  "
		if i == t.formIndex {
			marker = t.styles.Prompt.Render("> ")
		}
		fmt.Fprintf(&b, "%s%s: %s\n", marker, field.label, field.input.View())
	}
	b.WriteString(t.styles.Muted.Render("enter next/save · esc cancel"))
	return b.String()
}

func (t *itemTab[T]) assignedName(item T) string {
	return t.registry.NameOf(item.AssigneeID())
}

func (t *itemTab[T]) kindLabel() string {
	return strings.ToLower(string(t.kind))
}

func errMessage(err error) string {
	return apperrors.ToDomainError(err).Message
}
