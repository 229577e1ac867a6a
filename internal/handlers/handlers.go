package handlers

import (
	"encoding/json"
	"html/template"
	"net/http"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"

	"getthingsdone/internal/todo"
)

// Handlers holds the HTTP handlers and their dependencies.
type Handlers struct {
	list      *todo.List
	templates *template.Template
	logger    *log.Logger
}

// New creates a new Handlers instance.
func New(list *todo.List, tmpl *template.Template, logger *log.Logger) *Handlers {
	if logger == nil {
		logger = log.Default()
	}
	return &Handlers{
		list:      list,
		templates: tmpl,
		logger:    logger,
	}
}

// Routes registers the page and API routes on r.
func (h *Handlers) Routes(r chi.Router) {
	r.Get("/", h.Home)

	r.Route("/api", func(r chi.Router) {
		r.Get("/todos", h.ListTodos)
		r.Post("/todos", h.AddTodo)
		r.Put("/todos/{id}", h.CommitEdit)
		r.Delete("/todos/{id}", h.DeleteTodo)
		r.Post("/todos/{id}/toggle", h.ToggleTodo)
		r.Post("/todos/{id}/edit", h.EditTodo)
		r.Post("/sort", h.Sort)
		r.Post("/filter/{mode}", h.Filter)
	})
}

// respondError sends an error response.
func respondError(w http.ResponseWriter, code int, message string) {
	w.WriteHeader(code)
	w.Write([]byte(message))
}

func (h *Handlers) respondServerError(w http.ResponseWriter, err error) {
	h.logger.Error("internal server error", "err", err)
	respondError(w, http.StatusInternalServerError, "internal server error")
}

func (h *Handlers) respondJSON(w http.ResponseWriter, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(data); err != nil {
		h.logger.Error("failed to encode response", "err", err)
	}
}

func (h *Handlers) render(w http.ResponseWriter, name string, data interface{}) {
	if h.templates == nil {
		// For testing without templates
		w.WriteHeader(http.StatusOK)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := h.templates.ExecuteTemplate(w, name, data); err != nil {
		h.respondServerError(w, err)
	}
}

// renderTemplate renders a full page.
func (h *Handlers) renderTemplate(w http.ResponseWriter, name string, data interface{}) {
	h.render(w, name, data)
}

// renderPartial renders a partial template (for htmx responses).
func (h *Handlers) renderPartial(w http.ResponseWriter, name string, data interface{}) {
	h.render(w, name, data)
}
