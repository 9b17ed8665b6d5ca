package model

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Author struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Username  string    `gorm:"size:50;uniqueIndex;not null" json:"username"`
	Fullname  string    `gorm:"size:100" json:"fullname"`
	Email     string    `gorm:"size:100" json:"email"`
	Active    bool      `gorm:"default:false" json:"active"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (a *Author) BeforeCreate(tx *gorm.DB) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	return nil
}

// DisplayName is the byline rendered next to an idea,
// e.g. "mike cullerton, January 02, 2006".
func (a *Author) DisplayName() string {
	return fmt.Sprintf("%s, %s", a.Fullname, a.CreatedAt.Format("January 02, 2006"))
}
