// notenest/controllers/checklist.go
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

const (
	msgItemNotFound = "Checklist item not found"
	msgItemDeleted  = "Checklist item deleted"
)

type ChecklistController struct {
	dao *dao.ChecklistItemDAO
}

func NewChecklistController(dao *dao.ChecklistItemDAO) *ChecklistController {
	return &ChecklistController{dao: dao}
}

func validateContent(content string) error {
	if strings.TrimSpace(content) == "" {
		return errs.Validation("Content is required")
	}
	if strings.ContainsRune(content, 0) {
		return errs.Validation("Content must not contain NUL characters")
	}
	if utf8.RuneCountInString(content) > MaxTextLength {
		return errs.Validation("Content must not exceed 256 characters")
	}
	return nil
}

func (c *ChecklistController) GetItems(ctx context.Context, noteID uuid.UUID) ([]models.ChecklistItem, error) {
	return c.dao.GetItems(ctx, noteID)
}

// CreateItem does not look the note up first; the store's foreign key rejects
// items for missing notes in the same statement as the insert.
func (c *ChecklistController) CreateItem(ctx context.Context, noteID uuid.UUID, content string) (*models.ChecklistItem, error) {
	if err := validateContent(content); err != nil {
		return nil, err
	}
	item, found, err := c.dao.CreateItem(ctx, noteID, content)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, errs.NotFound(msgNoteNotFound)
	}
	return &item, nil
}

func (c *ChecklistController) UpdateItem(ctx context.Context, noteID, itemID uuid.UUID, update dao.ItemUpdate) (*models.ChecklistItem, error) {
	if update.Content == nil && update.Checked == nil {
		return nil, errs.Validation("No fields to update")
	}
	if update.Content != nil {
		if err := validateContent(*update.Content); err != nil {
			return nil, err
		}
	}
	item, found, err := c.dao.UpdateItem(ctx, noteID, itemID, update)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, errs.NotFound(msgItemNotFound)
	}
	return &item, nil
}

func (c *ChecklistController) DeleteItem(ctx context.Context, noteID, itemID uuid.UUID) (map[string]string, error) {
	deleted, err := c.dao.DeleteItem(ctx, noteID, itemID)
	if err != nil {
		return nil, err
	}
	if !deleted {
		return nil, errs.NotFound(msgItemNotFound)
	}
	return map[string]string{"message": msgItemDeleted}, nil
}
