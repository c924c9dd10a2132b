// notenest/sources/psql/dao/dao.checklist_item.go
package dao

import (
	"context"
	"errors"

	"notenest/notenest/sources/psql/models"
	"notenest/notenest/utils/errs"
	"notenest/notenest/utils/logging"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ChecklistItemDAO struct {
	DB *gorm.DB
}

func NewChecklistItemDAO(db *gorm.DB) *ChecklistItemDAO {
	return &ChecklistItemDAO{DB: db}
}

// ItemUpdate holds the optional fields of an item update. Nil fields are left
// as stored.
type ItemUpdate struct {
	Content *string
	Checked *bool
}

func (u ItemUpdate) columns() map[string]interface{} {
	updates := map[string]interface{}{}
	if u.Content != nil {
		updates["content"] = *u.Content
	}
	if u.Checked != nil {
		updates["is_checked"] = *u.Checked
	}
	return updates
}

func (dao *ChecklistItemDAO) GetItems(ctx context.Context, noteID uuid.UUID) ([]models.ChecklistItem, error) {
	defer logging.LogDuration(ctx, "ChecklistItemDAO.GetItems")()

	items := []models.ChecklistItem{}
	err := dao.DB.WithContext(ctx).
		Where("note_id = ?", noteID).
		Order("created_at asc").
		Order("id asc").
		Find(&items).Error
	if err != nil {
		return nil, errs.Store("ChecklistItemDAO.GetItems", err)
	}
	return items, nil
}

// CreateItem inserts an item under noteID and re-reads the stored row. The
// foreign key decides whether the note exists: a violation comes back as
// found == false, not as an error.
func (dao *ChecklistItemDAO) CreateItem(ctx context.Context, noteID uuid.UUID, content string) (models.ChecklistItem, bool, error) {
	defer logging.LogDuration(ctx, "ChecklistItemDAO.CreateItem")()

	var item models.ChecklistItem
	err := dao.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		draft := models.ChecklistItem{NoteID: noteID, Content: content}
		if err := tx.Omit("Note").Create(&draft).Error; err != nil {
			return err
		}
		return tx.First(&item, "id = ?", draft.ID).Error
	})
	if errors.Is(err, gorm.ErrForeignKeyViolated) {
		return models.ChecklistItem{}, false, nil
	}
	if err != nil {
		return models.ChecklistItem{}, false, errs.Store("ChecklistItemDAO.CreateItem", err)
	}
	return item, true, nil
}

func (dao *ChecklistItemDAO) UpdateItem(ctx context.Context, noteID, itemID uuid.UUID, update ItemUpdate) (models.ChecklistItem, bool, error) {
	defer logging.LogDuration(ctx, "ChecklistItemDAO.UpdateItem")()

	var item models.ChecklistItem
	found := false
	err := dao.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&models.ChecklistItem{}).
			Where("id = ? AND note_id = ?", itemID, noteID).
			Updates(update.columns())
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return nil
		}
		found = true
		return tx.First(&item, "id = ? AND note_id = ?", itemID, noteID).Error
	})
	if err != nil {
		return models.ChecklistItem{}, false, errs.Store("ChecklistItemDAO.UpdateItem", err)
	}
	return item, found, nil
}

func (dao *ChecklistItemDAO) DeleteItem(ctx context.Context, noteID, itemID uuid.UUID) (bool, error) {
	defer logging.LogDuration(ctx, "ChecklistItemDAO.DeleteItem")()

	res := dao.DB.WithContext(ctx).
		Where("id = ? AND note_id = ?", itemID, noteID).
		Delete(&models.ChecklistItem{})
	if res.Error != nil {
		return false, errs.Store("ChecklistItemDAO.DeleteItem", res.Error)
	}
	return res.RowsAffected == 1, nil
}
