package entities

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Note is owned by the username set at creation. Ownership is a plain
// string match against the acting identity, not a foreign key.
type Note struct {
	ID        string `gorm:"type:text;primaryKey" json:"id"`
	Username  string `gorm:"index;not null" json:"username"`
	Title     string `json:"title"`
	Content   string `gorm:"type:text;not null" json:"content"`
	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
}

func (n *Note) BeforeCreate(tx *gorm.DB) (err error) {
	if n.ID == "" {
		n.ID = uuid.New().String()
	}
	n.CreatedAt = time.Now().Format(time.RFC3339)
	n.UpdatedAt = n.CreatedAt
	return
}
