package domain

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Note lives in the tenant's schema; the table name is unqualified and the
// session search path decides which schema a query hits.
type Note struct {
	ID        string    `gorm:"primaryKey;type:uuid" json:"id"`
	Content   string    `gorm:"type:text;not null" json:"content"`
	CreatedAt time.Time `gorm:"type:timestamp with time zone;default:CURRENT_TIMESTAMP" json:"created_at"`
}

func (Note) TableName() string {
	return "notes"
}

func (n *Note) BeforeCreate(_ *gorm.DB) error {
	if n.ID == "" {
		n.ID = uuid.NewString()
	}
	return nil
}
