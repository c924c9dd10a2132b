// notenest/controllers/notes.go
package controllers

import (
	"context"
	"strings"
	"unicode/utf8"

	"notenest/notenest/sources/psql/dao"
	"notenest/notenest/sources/psql/models"
	"notenest/notenest/utils/errs"

	"github.com/google/uuid"
)

// MaxTextLength bounds note titles and item contents, counted in characters.
const MaxTextLength = 256

const (
	msgNoteNotFound = "Note not found"
	msgNoteDeleted  = "Note deleted"
)

type NotesController struct {
	dao *dao.NoteDAO
}

func NewNotesController(dao *dao.NoteDAO) *NotesController {
	return &NotesController{dao: dao}
}

func validateTitle(title string) error {
	if strings.TrimSpace(title) == "" {
		return errs.Validation("Title is required")
	}
	if strings.ContainsRune(title, 0) {
		return errs.Validation("Title must not contain NUL characters")
	}
	if utf8.RuneCountInString(title) > MaxTextLength {
		return errs.Validation("Title must not exceed 256 characters")
	}
	return nil
}

func (c *NotesController) CreateNote(ctx context.Context, title string) (*models.Note, error) {
	if err := validateTitle(title); err != nil {
		return nil, err
	}
	note, err := c.dao.CreateNote(ctx, title)
	if err != nil {
		return nil, err
	}
	return &note, nil
}

func (c *NotesController) GetAllNotes(ctx context.Context) ([]models.Note, error) {
	return c.dao.GetAllNotes(ctx)
}

func (c *NotesController) GetNoteByID(ctx context.Context, id uuid.UUID) (*models.Note, error) {
	note, found, err := c.dao.GetNoteByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, errs.NotFound(msgNoteNotFound)
	}
	return &note, nil
}

func (c *NotesController) UpdateNote(ctx context.Context, id uuid.UUID, title string) (*models.Note, error) {
	if err := validateTitle(title); err != nil {
		return nil, err
	}
	note, found, err := c.dao.UpdateNote(ctx, id, title)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, errs.NotFound(msgNoteNotFound)
	}
	return &note, nil
}

func (c *NotesController) DeleteNote(ctx context.Context, id uuid.UUID) (map[string]string, error) {
	deleted, err := c.dao.DeleteNote(ctx, id)
	if err != nil {
		return nil, err
	}
	if !deleted {
		return nil, errs.NotFound(msgNoteNotFound)
	}
	return map[string]string{"message": msgNoteDeleted}, nil
}
