package routes

import (
	"net/http"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type itemBody struct {
	ID      string `json:"id"`
	NoteID  string `json:"note_id"`
	Content string `json:"content"`
	Checked bool   `json:"checked"`
}

func (e *testEnv) createNote(t *testing.T, title string) noteBody {
	t.Helper()
	rr := e.do(t, http.MethodPost, "/notes", map[string]string{"title": title})
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())
	return decode[noteBody](t, rr)
}

func TestChecklistItemsScenario(t *testing.T) {
	env := setupTestEnv(t)
	note := env.createNote(t, "Packing")
	base := "/notes/" + note.ID + "/items"

	rr := env.do(t, http.MethodGet, base, nil)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `[]`, rr.Body.String())

	rr = env.do(t, http.MethodPost, base, map[string]string{"content": "Passport"})
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())
	item := decode[itemBody](t, rr)
	assert.Equal(t, note.ID, item.NoteID)
	assert.Equal(t, "Passport", item.Content)
	assert.False(t, item.Checked)

	rr = env.do(t, http.MethodPut, base+"/"+item.ID, map[string]bool{"checked": true})
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())
	updated := decode[itemBody](t, rr)
	assert.True(t, updated.Checked)
	assert.Equal(t, "Passport", updated.Content)

	rr = env.do(t, http.MethodPut, base+"/"+item.ID, map[string]any{"content": "Passport and visa", "checked": false})
	require.Equal(t, http.StatusOK, rr.Code)
	updated = decode[itemBody](t, rr)
	assert.False(t, updated.Checked)
	assert.Equal(t, "Passport and visa", updated.Content)

	items := decode[[]itemBody](t, env.do(t, http.MethodGet, base, nil))
	require.Len(t, items, 1)
	assert.Equal(t, item.ID, items[0].ID)

	rr = env.do(t, http.MethodDelete, base+"/"+item.ID, nil)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"message":"Checklist item deleted"}`, rr.Body.String())

	rr = env.do(t, http.MethodDelete, base+"/"+item.ID, nil)
	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.JSONEq(t, `{"error":"Checklist item not found"}`, rr.Body.String())
}

func TestChecklistItemValidation(t *testing.T) {
	env := setupTestEnv(t)
	note := env.createNote(t, "Chores")
	base := "/notes/" + note.ID + "/items"

	rr := env.do(t, http.MethodPost, base, map[string]string{"content": strings.Repeat("c", 257)})
	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.JSONEq(t, `{"error":"Content must not exceed 256 characters"}`, rr.Body.String())

	rr = env.do(t, http.MethodPost, base, map[string]string{})
	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.JSONEq(t, `{"error":"Content is required"}`, rr.Body.String())

	item := decode[itemBody](t, env.do(t, http.MethodPost, base, map[string]string{"content": "Dishes"}))

	rr = env.do(t, http.MethodPut, base+"/"+item.ID, map[string]string{})
	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.JSONEq(t, `{"error":"No fields to update"}`, rr.Body.String())

	rr = env.do(t, http.MethodPut, base+"/"+item.ID, map[string]string{"checked": "yes"})
	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.JSONEq(t, `{"error":"Invalid request body"}`, rr.Body.String())

	rr = env.do(t, http.MethodPut, base+"/not-a-uuid", map[string]bool{"checked": true})
	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.JSONEq(t, `{"error":"Invalid item id"}`, rr.Body.String())

	rr = env.do(t, http.MethodGet, "/notes/nope/items", nil)
	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.JSONEq(t, `{"error":"Invalid note id"}`, rr.Body.String())

	items := decode[[]itemBody](t, env.do(t, http.MethodGet, base, nil))
	require.Len(t, items, 1)
	assert.Equal(t, "Dishes", items[0].Content)
	assert.False(t, items[0].Checked)
}

func TestUpdateItemNotFound(t *testing.T) {
	env := setupTestEnv(t)
	note := env.createNote(t, "Errands")
	other := env.createNote(t, "Other")

	item := decode[itemBody](t, env.do(t, http.MethodPost, "/notes/"+note.ID+"/items", map[string]string{"content": "Bank"}))

	rr := env.do(t, http.MethodPut, "/notes/"+note.ID+"/items/"+uuid.NewString(), map[string]bool{"checked": true})
	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.JSONEq(t, `{"error":"Checklist item not found"}`, rr.Body.String())

	rr = env.do(t, http.MethodPut, "/notes/"+other.ID+"/items/"+item.ID, map[string]bool{"checked": true})
	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestCreateItemForMissingNote(t *testing.T) {
	env := setupTestEnv(t)
	missing := uuid.NewString()

	rr := env.do(t, http.MethodPost, "/notes/"+missing+"/items", map[string]string{"content": "Orphan"})
	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.JSONEq(t, `{"error":"Note not found"}`, rr.Body.String())

	rr = env.do(t, http.MethodGet, "/notes/"+missing+"/items", nil)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `[]`, rr.Body.String())
}

func TestDeleteNoteCascadesItems(t *testing.T) {
	env := setupTestEnv(t)
	note := env.createNote(t, "Weekend")
	base := "/notes/" + note.ID + "/items"

	for _, c := range []string{"Laundry", "Groceries", "Call mum"} {
		rr := env.do(t, http.MethodPost, base, map[string]string{"content": c})
		require.Equal(t, http.StatusOK, rr.Code)
	}
	require.Len(t, decode[[]itemBody](t, env.do(t, http.MethodGet, base, nil)), 3)

	rr := env.do(t, http.MethodDelete, "/notes/"+note.ID, nil)
	require.Equal(t, http.StatusOK, rr.Code)

	rr = env.do(t, http.MethodGet, base, nil)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `[]`, rr.Body.String())

	var remaining int64
	require.NoError(t, env.db.Table("checklist_items").Count(&remaining).Error)
	assert.Zero(t, remaining)
}

func TestCreateItemMatchesStoredItem(t *testing.T) {
	env := setupTestEnv(t)
	note := env.createNote(t, "Hardware store")
	base := "/notes/" + note.ID + "/items"

	rr := env.do(t, http.MethodPost, base, map[string]string{"content": "Screws"})
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())
	created := rr.Body.String()

	rr = env.do(t, http.MethodGet, base, nil)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, "["+created+"]", rr.Body.String())
}

func TestItemContentRejectsNUL(t *testing.T) {
	env := setupTestEnv(t)
	note := env.createNote(t, "Binary")
	base := "/notes/" + note.ID + "/items"

	rr := env.do(t, http.MethodPost, base, map[string]string{"content": "a\x00b"})
	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.JSONEq(t, `{"error":"Content must not contain NUL characters"}`, rr.Body.String())

	assert.JSONEq(t, `[]`, env.do(t, http.MethodGet, base, nil).Body.String())
}
