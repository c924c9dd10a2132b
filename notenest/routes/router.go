package routes

import (
	"net/http"
	"time"

	"notenest/notenest/controllers"
	"notenest/notenest/middlewares"
	"notenest/notenest/sources/psql"
	"notenest/notenest/sources/psql/dao"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// NewRouter builds the full dispatch table once. db is shared by every
// handler and must outlive the router.
func NewRouter(db *psql.Database, requestTimeout time.Duration) http.Handler {
	notesCtrl := controllers.NewNotesController(dao.NewNoteDAO(db.DB))
	itemsCtrl := controllers.NewChecklistController(dao.NewChecklistItemDAO(db.DB))
	healthCtrl := controllers.NewHealthController(db)

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middlewares.RequestLogger)
	r.Use(middleware.Recoverer)
	if requestTimeout > 0 {
		r.Use(middleware.Timeout(requestTimeout))
	}

	r.Get("/ping", healthCtrl.Ping)
	r.Mount("/health", HealthRoutes(healthCtrl))
	r.Mount("/notes", NotesRoutes(notesCtrl, itemsCtrl))
	return r
}
