package repositories

import (
	"notes-lab/db"
	"notes-lab/entities"
	"strings"
	"time"
)

type noteGormRepository struct {
	db db.Database
}

func NewNoteGormRepository(database db.Database) NoteRepository {
	return &noteGormRepository{db: database}
}

func (r *noteGormRepository) Create(note *entities.Note) error {
	return r.db.GetDB().Create(note).Error
}

func (r *noteGormRepository) GetByID(id string) (*entities.Note, error) {
	var note entities.Note
	err := r.db.GetDB().Where("id = ?", id).First(&note).Error
	if err != nil {
		return nil, err
	}
	return &note, nil
}

func (r *noteGormRepository) GetByUsername(username string) ([]entities.Note, error) {
	var notes []entities.Note
	err := r.db.GetDB().Where("username = ?", username).Order("created_at DESC").Find(&notes).Error
	return notes, err
}

// SearchByTitle matches the title column only, case-insensitively.
// LOWER + LIKE behaves the same on SQLite and Postgres.
func (r *noteGormRepository) SearchByTitle(username, query string) ([]entities.Note, error) {
	var notes []entities.Note
	pattern := "%" + strings.ToLower(query) + "%"
	err := r.db.GetDB().
		Where("username = ? AND LOWER(title) LIKE ?", username, pattern).
		Order("created_at DESC").
		Find(&notes).Error
	return notes, err
}

func (r *noteGormRepository) Update(note *entities.Note) error {
	note.UpdatedAt = time.Now().Format(time.RFC3339)
	return r.db.GetDB().Save(note).Error
}

func (r *noteGormRepository) Delete(id string) error {
	return r.db.GetDB().Where("id = ?", id).Delete(&entities.Note{}).Error
}
