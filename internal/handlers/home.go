package handlers

import (
	"net/http"

	"getthingsdone/internal/models"
	"getthingsdone/internal/todo"
)

// Heading is the page title.
const Heading = "Get Things Done!"

// FilterButton describes one filter control.
type FilterButton struct {
	Mode   models.FilterMode
	Label  string
	Active bool
}

// PageData holds data for the page and list templates.
type PageData struct {
	Title     string
	Tasks     []models.Task
	SortLabel string
	Direction models.SortDirection
	Filter    models.FilterMode
	Filters   []FilterButton
}

func newPageData(snap todo.Snapshot) PageData {
	filters := make([]FilterButton, 0, len(models.FilterModes))
	for _, mode := range models.FilterModes {
		filters = append(filters, FilterButton{
			Mode:   mode,
			Label:  mode.Label(),
			Active: mode == snap.Filter,
		})
	}

	return PageData{
		Title:     Heading,
		Tasks:     snap.Visible,
		SortLabel: snap.Direction.Label(),
		Direction: snap.Direction,
		Filter:    snap.Filter,
		Filters:   filters,
	}
}

// Home renders the full page.
func (h *Handlers) Home(w http.ResponseWriter, r *http.Request) {
	h.renderTemplate(w, "index.html", newPageData(h.list.Snapshot()))
}

// renderList renders the controls and rows after a change.
func (h *Handlers) renderList(w http.ResponseWriter) {
	h.renderPartial(w, "todo_list.html", newPageData(h.list.Snapshot()))
}
