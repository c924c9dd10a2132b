// notenest/routes/notes.go
package routes

import (
	"encoding/json"
	"io"
	"net/http"

	"notenest/notenest/controllers"
	"notenest/notenest/utils/errs"
	"notenest/notenest/utils/logging"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const maxBodyBytes = 1 << 20

// handleJSON is the only place errors become HTTP statuses. Store failures are
// logged with their cause and answered with a generic message.
func handleJSON(name string, handler func(r *http.Request) (any, error)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logging.AppLogger.With(
			zap.String("handler", name),
			zap.String("request_id", middleware.GetReqID(r.Context())),
		)
		log.Debug("handler invoked", zap.String("method", r.Method), zap.String("path", r.URL.Path))

		res, err := handler(r)
		if err != nil {
			status := http.StatusInternalServerError
			switch errs.KindOf(err) {
			case errs.KindValidation:
				status = http.StatusBadRequest
				log.Info("rejected request", zap.String("reason", errs.Message(err)))
			case errs.KindNotFound:
				status = http.StatusNotFound
				log.Warn("not found", zap.String("reason", errs.Message(err)))
			default:
				log.Error("store failure", zap.Error(err))
				logging.ErrorLogger.Error("store failure", zap.String("handler", name), zap.Error(err))
			}
			writeJSON(w, status, map[string]string{"error": errs.Message(err)})
			return
		}
		writeJSON(w, http.StatusOK, res)
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logging.ErrorLogger.Error("encode response", zap.Error(err))
	}
}

func decodeBody(r *http.Request, dst any) error {
	if err := json.NewDecoder(io.LimitReader(r.Body, maxBodyBytes)).Decode(dst); err != nil {
		return errs.Validation("Invalid request body")
	}
	return nil
}

func parseID(r *http.Request, param, msg string) (uuid.UUID, error) {
	id, err := uuid.Parse(chi.URLParam(r, param))
	if err != nil {
		return uuid.Nil, errs.Validation(msg)
	}
	return id, nil
}

func noteID(r *http.Request) (uuid.UUID, error) {
	return parseID(r, "id", "Invalid note id")
}

type noteRequest struct {
	Title string `json:"title"`
}

// NotesRoutes serves /notes and nests the checklist routes under
// /notes/{id}/items.
func NotesRoutes(ctrl *controllers.NotesController, items *controllers.ChecklistController) chi.Router {
	r := chi.NewRouter()

	// List notes
	r.Get("/", handleJSON("get_notes", func(r *http.Request) (any, error) {
		return ctrl.GetAllNotes(r.Context())
	}))

	// Create note
	r.Post("/", handleJSON("create_note", func(r *http.Request) (any, error) {
		var req noteRequest
		if err := decodeBody(r, &req); err != nil {
			return nil, err
		}
		return ctrl.CreateNote(r.Context(), req.Title)
	}))

	r.Route("/{id}", func(r chi.Router) {
		// Get single note
		r.Get("/", handleJSON("get_note", func(r *http.Request) (any, error) {
			id, err := noteID(r)
			if err != nil {
				return nil, err
			}
			return ctrl.GetNoteByID(r.Context(), id)
		}))

		// Update note title
		r.Put("/", handleJSON("update_note", func(r *http.Request) (any, error) {
			id, err := noteID(r)
			if err != nil {
				return nil, err
			}
			var req noteRequest
			if err := decodeBody(r, &req); err != nil {
				return nil, err
			}
			return ctrl.UpdateNote(r.Context(), id, req.Title)
		}))

		// Delete note and, through the store, its items
		r.Delete("/", handleJSON("delete_note", func(r *http.Request) (any, error) {
			id, err := noteID(r)
			if err != nil {
				return nil, err
			}
			return ctrl.DeleteNote(r.Context(), id)
		}))

		r.Mount("/items", ItemsRoutes(items))
	})

	return r
}
