package tui

import (
	"fmt"
	"strconv"

	"github.com/spec-kit/helpdesk/internal/domain"
)

func newTaskTab(deps Deps, keys KeyMap, styles Styles) *itemTab[*domain.Task] {
	return &itemTab[*domain.Task]{
		kind:      domain.KindTask,
		items:     deps.Tasks,
		claims:    deps.TaskClaims,
		lifecycle: deps.TaskLifecycle,
		registry:  deps.Registry,
		keys:      keys,
		styles:    styles,
		header:    fmt.Sprintf("%-4s %-34s %-14s %-10s %-8s %s", "ID", "Title", "Department", "Status", "Ticket", "Assigned To"),
		renderRow: renderTaskRow,
		newForm:   newTaskForm,
		buildItem: buildTask,
	}
}

func renderTaskRow(task *domain.Task, assignedTo string) string {
	if assignedTo == "" {
		assignedTo = "Unassigned"
	}
	linked := "-"
	if task.LinkedTicketID != nil {
		linked = strconv.Itoa(*task.LinkedTicketID)
	}
	return fmt.Sprintf("%-4d %-34s %-14s %-10s %-8s %s",
		task.ItemID(), clip(task.Title, 32), clip(task.Department, 14),
		task.ItemStatus(), linked, assignedTo)
}

func newTaskForm() []formField {
	return []formField{
		newFormField("title", "what needs doing"),
		newFormField("department", "IT Ops, Facilities, ..."),
		newFormField("linked ticket id", "optional numeric id"),
		newFormField("description", "details"),
	}
}

func buildTask(values []string) *domain.Task {
	task := &domain.Task{
		Title:       values[0],
		Department:  values[1],
		Description: values[3],
	}
	if id, err := strconv.Atoi(values[2]); err == nil && id > 0 {
		task.LinkedTicketID = &id
	}
	return task
}
