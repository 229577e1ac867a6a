package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"getthingsdone/internal/models"
)

// TodosResponse is the JSON view of the visible list.
type TodosResponse struct {
	Todos     []models.Task        `json:"todos"`
	Filter    models.FilterMode    `json:"filter"`
	Direction models.SortDirection `json:"direction"`
}

// ListTodos returns the visible tasks as JSON.
func (h *Handlers) ListTodos(w http.ResponseWriter, r *http.Request) {
	snap := h.list.Snapshot()
	h.respondJSON(w, TodosResponse{
		Todos:     snap.Visible,
		Filter:    snap.Filter,
		Direction: snap.Direction,
	})
}

// AddTodo appends a task from the entry form.
func (h *Handlers) AddTodo(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		respondError(w, http.StatusBadRequest, "invalid form data")
		return
	}

	text := r.FormValue("task")
	if err := models.ValidateText(text); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	if _, err := h.list.Add(r.Context(), text); err != nil {
		h.respondServerError(w, err)
		return
	}

	h.renderList(w)
}

// DeleteTodo removes a task.
func (h *Handlers) DeleteTodo(w http.ResponseWriter, r *http.Request) {
	if err := h.list.Remove(r.Context(), chi.URLParam(r, "id")); err != nil {
		h.respondServerError(w, err)
		return
	}

	h.renderList(w)
}

// ToggleTodo toggles the completion status of a task.
func (h *Handlers) ToggleTodo(w http.ResponseWriter, r *http.Request) {
	if err := h.list.ToggleComplete(r.Context(), chi.URLParam(r, "id")); err != nil {
		h.respondServerError(w, err)
		return
	}

	h.renderList(w)
}

// EditTodo switches a row between read and edit mode.
func (h *Handlers) EditTodo(w http.ResponseWriter, r *http.Request) {
	h.list.EnterEditMode(chi.URLParam(r, "id"))
	h.renderList(w)
}

// CommitEdit replaces the text of a task from the edit form.
func (h *Handlers) CommitEdit(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		respondError(w, http.StatusBadRequest, "invalid form data")
		return
	}

	text := r.FormValue("task")
	if err := models.ValidateText(text); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	if err := h.list.CommitEdit(r.Context(), chi.URLParam(r, "id"), text); err != nil {
		h.respondServerError(w, err)
		return
	}

	h.renderList(w)
}

// Sort toggles the sort direction and reorders the list.
func (h *Handlers) Sort(w http.ResponseWriter, r *http.Request) {
	if err := h.list.Sort(r.Context()); err != nil {
		h.respondServerError(w, err)
		return
	}

	h.renderList(w)
}

// Filter changes which tasks are shown.
func (h *Handlers) Filter(w http.ResponseWriter, r *http.Request) {
	mode, err := models.ParseFilter(chi.URLParam(r, "mode"))
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	h.list.SetFilter(mode)
	h.renderList(w)
}
