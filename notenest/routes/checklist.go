// notenest/routes/checklist.go
package routes

import (
	"net/http"

	"notenest/notenest/controllers"
	"notenest/notenest/sources/psql/dao"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

type createItemRequest struct {
	Content string `json:"content"`
}

type updateItemRequest struct {
	Content *string `json:"content"`
	Checked *bool   `json:"checked"`
}

func itemIDs(r *http.Request) (uuid.UUID, uuid.UUID, error) {
	nid, err := noteID(r)
	if err != nil {
		return uuid.Nil, uuid.Nil, err
	}
	iid, err := parseID(r, "item_id", "Invalid item id")
	if err != nil {
		return uuid.Nil, uuid.Nil, err
	}
	return nid, iid, nil
}

// ItemsRoutes is mounted under /notes/{id}/items and reads the note id from
// the parent route.
func ItemsRoutes(ctrl *controllers.ChecklistController) chi.Router {
	r := chi.NewRouter()

	r.Get("/", handleJSON("get_items", func(r *http.Request) (any, error) {
		id, err := noteID(r)
		if err != nil {
			return nil, err
		}
		return ctrl.GetItems(r.Context(), id)
	}))

	r.Post("/", handleJSON("create_item", func(r *http.Request) (any, error) {
		id, err := noteID(r)
		if err != nil {
			return nil, err
		}
		var req createItemRequest
		if err := decodeBody(r, &req); err != nil {
			return nil, err
		}
		return ctrl.CreateItem(r.Context(), id, req.Content)
	}))

	r.Put("/{item_id}", handleJSON("update_item", func(r *http.Request) (any, error) {
		nid, iid, err := itemIDs(r)
		if err != nil {
			return nil, err
		}
		var req updateItemRequest
		if err := decodeBody(r, &req); err != nil {
			return nil, err
		}
		return ctrl.UpdateItem(r.Context(), nid, iid, dao.ItemUpdate{
			Content: req.Content,
			Checked: req.Checked,
		})
	}))

	r.Delete("/{item_id}", handleJSON("delete_item", func(r *http.Request) (any, error) {
		nid, iid, err := itemIDs(r)
		if err != nil {
			return nil, err
		}
		return ctrl.DeleteItem(r.Context(), nid, iid)
	}))

	return r
}
