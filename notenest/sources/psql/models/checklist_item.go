// notenest/sources/psql/models/checklist_item.go
package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ChecklistItem struct {
	ID        uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	NoteID    uuid.UUID `json:"note_id" gorm:"type:uuid;not null;index"`
	Note      Note      `json:"-" gorm:"foreignKey:NoteID;references:ID;constraint:OnDelete:CASCADE"`
	Content   string    `json:"content" gorm:"type:text;not null"`
	Checked   bool      `json:"checked" gorm:"column:is_checked;not null;default:false"`
	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime;not null"`
}

func (ChecklistItem) TableName() string {
	return "checklist_items"
}

func (c *ChecklistItem) BeforeCreate(tx *gorm.DB) (err error) {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}
