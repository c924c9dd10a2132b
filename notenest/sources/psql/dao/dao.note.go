// notenest/sources/psql/dao/dao.note.go
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

type NoteDAO struct {
	DB *gorm.DB
}

func NewNoteDAO(db *gorm.DB) *NoteDAO {
	return &NoteDAO{DB: db}
}

// CreateNote inserts a note and returns the row as the store holds it.
func (dao *NoteDAO) CreateNote(ctx context.Context, title string) (models.Note, error) {
	defer logging.LogDuration(ctx, "NoteDAO.CreateNote")()

	var note models.Note
	err := dao.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		draft := models.Note{Title: title}
		if err := tx.Create(&draft).Error; err != nil {
			return err
		}
		return tx.First(&note, "id = ?", draft.ID).Error
	})
	if err != nil {
		return models.Note{}, errs.Store("NoteDAO.CreateNote", err)
	}
	return note, nil
}

// GetAllNotes lists every note, oldest first.
func (dao *NoteDAO) GetAllNotes(ctx context.Context) ([]models.Note, error) {
	defer logging.LogDuration(ctx, "NoteDAO.GetAllNotes")()

	notes := []models.Note{}
	err := dao.DB.WithContext(ctx).Order("created_at asc").Order("id asc").Find(&notes).Error
	if err != nil {
		return nil, errs.Store("NoteDAO.GetAllNotes", err)
	}
	return notes, nil
}

func (dao *NoteDAO) GetNoteByID(ctx context.Context, id uuid.UUID) (models.Note, bool, error) {
	defer logging.LogDuration(ctx, "NoteDAO.GetNoteByID")()

	var note models.Note
	err := dao.DB.WithContext(ctx).First(&note, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.Note{}, false, nil
	}
	if err != nil {
		return models.Note{}, false, errs.Store("NoteDAO.GetNoteByID", err)
	}
	return note, true, nil
}

// UpdateNote sets the title and re-stamps updated_at. The write and the
// re-read share one transaction so the returned row is the one written.
func (dao *NoteDAO) UpdateNote(ctx context.Context, id uuid.UUID, title string) (models.Note, bool, error) {
	defer logging.LogDuration(ctx, "NoteDAO.UpdateNote")()

	var note models.Note
	found := false
	err := dao.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&models.Note{}).Where("id = ?", id).Update("title", title)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return nil
		}
		found = true
		return tx.First(&note, "id = ?", id).Error
	})
	if err != nil {
		return models.Note{}, false, errs.Store("NoteDAO.UpdateNote", err)
	}
	return note, found, nil
}

// DeleteNote reports whether a row was removed. Items go with it through the
// ON DELETE CASCADE foreign key.
func (dao *NoteDAO) DeleteNote(ctx context.Context, id uuid.UUID) (bool, error) {
	defer logging.LogDuration(ctx, "NoteDAO.DeleteNote")()

	res := dao.DB.WithContext(ctx).Where("id = ?", id).Delete(&models.Note{})
	if res.Error != nil {
		return false, errs.Store("NoteDAO.DeleteNote", res.Error)
	}
	return res.RowsAffected == 1, nil
}
