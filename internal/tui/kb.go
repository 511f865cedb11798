package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/spec-kit/helpdesk/internal/domain"
	"github.com/spec-kit/helpdesk/internal/service"
)

type kbMode int

const (
	kbModeList kbMode = iota
	kbModeDetail
	kbModeCreate
)

// kbTab is the knowledge-base screen: plain article CRUD, no cross-entity
// invariants.
type kbTab struct {
	articles *service.ArticleService
	keys     KeyMap
	styles   Styles

	mode      kbMode
	cursor    int
	detailID  int
	form      []formField
	formIndex int
}

func newKBTab(articles *service.ArticleService, keys KeyMap, styles Styles) *kbTab {
	return &kbTab{articles: articles, keys: keys, styles: styles}
}

func (t *kbTab) textEntry() bool {
	return t.mode == kbModeCreate
}

func (t *kbTab) update(msg tea.KeyMsg, current *domain.User) (string, bool) {
	switch t.mode {
	case kbModeList:
		articles := t.articles.List()
		switch {
		case key.Matches(msg, t.keys.Up):
			if t.cursor > 0 {
				t.cursor--
			}
		case key.Matches(msg, t.keys.Down):
			if t.cursor < len(articles)-1 {
				t.cursor++
			}
		case key.Matches(msg, t.keys.Select):
			if len(articles) > 0 {
				if t.cursor >= len(articles) {
					t.cursor = len(articles) - 1
				}
				t.detailID = articles[t.cursor].ID
				t.mode = kbModeDetail
			}
		case key.Matches(msg, t.keys.New):
			t.form = []formField{
				newFormField("title", "article title"),
				newFormField("body", "article body"),
			}
			t.formIndex = 0
			t.form[0].input.Focus()
			t.mode = kbModeCreate
		}
	case kbModeDetail:
		if key.Matches(msg, t.keys.Back) {
			t.mode = kbModeList
		}
	case kbModeCreate:
		switch {
		case key.Matches(msg, t.keys.Back):
			t.mode = kbModeList
		case msg.Type == tea.KeyEnter:
			t.form[t.formIndex].input.Blur()
			if t.formIndex < len(t.form)-1 {
				t.formIndex++
				t.form[t.formIndex].input.Focus()
				return "", false
			}
			t.mode = kbModeList
			article, err := t.articles.Create(context.Background(),
				t.form[0].input.Value(), t.form[1].input.Value(), current)
			if err != nil {
				return errMessage(err), true
			}
			return fmt.Sprintf("article %d created", article.ID), false
		default:
			t.form[t.formIndex].input, _ = t.form[t.formIndex].input.Update(msg)
		}
	}
	return "", false
}

func (t *kbTab) view() string {
	var b strings.Builder
	switch t.mode {
	case kbModeDetail:
		article, err := t.articles.Get(t.detailID)
		if err != nil {
			return t.styles.Muted.Render("article is gone")
		}
		fmt.Fprintf(&b, "#%d %s\n", article.ID, article.Title)
		fmt.Fprintf(&b, "by %s", article.Author)
		if article.SourceTicketID != nil {
			fmt.Fprintf(&b, " · from ticket %d", *article.SourceTicketID)
		}
		b.WriteString("\n\n")
		b.WriteString(article.Body)
		b.WriteString("\n")
		b.WriteString(t.styles.Muted.Render("esc back"))
	case kbModeCreate:
		b.WriteString("new article:\n")
		for i, field := range t.form {
			marker := "  "
			if i == t.formIndex {
				marker = t.styles.Prompt.Render("> ")
			}
			fmt.Fprintf(&b, "%s%s: %s\n", marker, field.label, field.input.View())
		}
		b.WriteString(t.styles.Muted.Render("enter next/save · esc cancel"))
	default:
		articles := t.articles.List()
		b.WriteString(t.styles.ColHeader.Render(fmt.Sprintf("%-4s %-40s %s", "ID", "Title", "Author")))
		b.WriteString("\n")
		if len(articles) == 0 {
			b.WriteString(t.styles.Muted.Render("(no articles)"))
			b.WriteString("\n")
		}
		for i, article := range articles {
			line := fmt.Sprintf("%-4d %-40s %s", article.ID, clip(article.Title, 38), article.Author)
			if i == t.cursor {
				b.WriteString(t.styles.RowCursor.Render("> " + line))
			} else {
				b.WriteString("  " + line)
			}
			b.WriteString("\n")
		}
		b.WriteString(t.styles.Muted.Render("enter read · n new"))
	}
	return b.String()
}
