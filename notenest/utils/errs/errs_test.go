package errs

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKindOf(t *testing.T) {
	cause := errors.New("connection refused")

	assert.Equal(t, KindValidation, KindOf(Validation("Title is required")))
	assert.Equal(t, KindNotFound, KindOf(NotFound("Note not found")))
	assert.Equal(t, KindStore, KindOf(Store("NoteDAO.CreateNote", cause)))
	assert.Equal(t, KindStore, KindOf(cause))
	assert.Equal(t, KindNotFound, KindOf(fmt.Errorf("wrapped: %w", NotFound("Note not found"))))
}

func TestStoreHidesCause(t *testing.T) {
	cause := errors.New(`pq: relation "notes" does not exist`)
	err := Store("NoteDAO.GetAllNotes", cause)

	assert.ErrorIs(t, err, cause)
	assert.Equal(t, "Internal server error", Message(err))
	assert.Contains(t, err.Error(), "NoteDAO.GetAllNotes")
	assert.Nil(t, Store("noop", nil))
}

func TestMessage(t *testing.T) {
	assert.Equal(t, "Title is required", Message(Validation("Title is required")))
	assert.Equal(t, "Internal server error", Message(errors.New("boom")))
}
