package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/MKhiriev/go-task-keeper/internal/app"
	"github.com/MKhiriev/go-task-keeper/internal/utils"
)

// taskPrefixes are the mount points of the task API. /api/tasks is an alias
// of /api/todos.
var taskPrefixes = []string{"/api/todos", "/api/tasks"}

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(h.withTraceID, h.withLogging, middleware.Recoverer, h.withCORS)
	if h.cfg.RequestTimeout > 0 {
		router.Use(middleware.Timeout(h.cfg.RequestTimeout))
	}

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Get("/api/health", h.health)
		r.Get("/api/version", h.getServerVersion)
		r.Post("/api/register", h.register)
		r.Post("/api/login", h.login)
	})

	// routes with authorization
	router.Group(func(r chi.Router) {
		r.Use(h.auth)

		for _, prefix := range taskPrefixes {
			r.Get(prefix, h.listTasks)
			r.Post(prefix, h.createTask)
			r.Get(prefix+"/{id}", h.getTask)
			r.Put(prefix+"/{id}", h.updateTask)
			r.Delete(prefix+"/{id}", h.deleteTask)
			r.Patch(prefix+"/{id}/toggle", h.toggleTask)
		}
	})

	router.NotFound(notFound)
	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}

func notFound(w http.ResponseWriter, r *http.Request) {
	utils.WriteMessage(w, app.MsgNotFound, http.StatusNotFound)
}
