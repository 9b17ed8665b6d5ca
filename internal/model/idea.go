package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Idea struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Title     string    `gorm:"size:255;uniqueIndex;not null" json:"title"`
	Body      string    `gorm:"column:idea;type:text" json:"idea"`
	Visible   bool      `gorm:"default:false" json:"visible"`
	AuthorID  uuid.UUID `gorm:"type:uuid;not null" json:"author_id"`
	Author    Author    `json:"author"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (i *Idea) BeforeCreate(tx *gorm.DB) (err error) {
	if i.ID == uuid.Nil {
		i.ID, err = uuid.NewV7()
	}
	return
}
