package usecases

import (
	"errors"
	"fmt"
	"notes-lab/db"
	"notes-lab/entities"
	"strings"

	"gorm.io/gorm"
)

// InsecureUseCase is the deliberately vulnerable baseline the lab's
// end-to-end tests probe. It talks to gorm directly, stores plaintext
// passwords, builds predicates by string interpolation, and enforces no
// ownership. None of this is to be hardened; the secure variant exists
// for that.
type InsecureUseCase struct {
	db db.Database
}

func NewInsecureUseCase(database db.Database) *InsecureUseCase {
	return &InsecureUseCase{db: database}
}

// Authenticate compares the plaintext password inside an interpolated
// SQL string. This is the classic injectable login.
func (uc *InsecureUseCase) Authenticate(username, password string) (*entities.User, error) {
	var users []entities.User
	query := fmt.Sprintf("SELECT * FROM users WHERE username = '%s' AND password = '%s'", username, password)
	if err := uc.db.GetDB().Raw(query).Scan(&users).Error; err != nil {
		return nil, err
	}
	if len(users) == 0 {
		return nil, ErrInvalidCredentials
	}
	return &users[0], nil
}

// Register stores the password as-is in the plaintext column.
func (uc *InsecureUseCase) Register(username, password string) (*entities.User, error) {
	var existing entities.User
	err := uc.db.GetDB().Where("username = ?", username).First(&existing).Error
	if err == nil {
		return nil, ErrUsernameTaken
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	user := &entities.User{Username: username, Password: password}
	if err := uc.db.GetDB().Create(user).Error; err != nil {
		return nil, err
	}
	return user, nil
}

// ListNotes trusts whatever username the caller put in the URL.
func (uc *InsecureUseCase) ListNotes(username string) ([]entities.Note, error) {
	var notes []entities.Note
	err := uc.db.GetDB().Where("username = ?", username).Find(&notes).Error
	return notes, err
}

// AddNote takes the owner from a form field, not from any session.
func (uc *InsecureUseCase) AddNote(username, title, content string) (*entities.Note, error) {
	note := &entities.Note{Username: username, Title: title, Content: content}
	if err := uc.db.GetDB().Create(note).Error; err != nil {
		return nil, err
	}
	return note, nil
}

// GetNote loads any note by id. No ownership check.
func (uc *InsecureUseCase) GetNote(id string) (*entities.Note, error) {
	var note entities.Note
	err := uc.db.GetDB().Where("id = ?", id).First(&note).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &note, nil
}

// UpdateNote rewrites any note by id alone.
func (uc *InsecureUseCase) UpdateNote(id, title, content string) error {
	note, err := uc.GetNote(id)
	if err != nil {
		return err
	}
	note.Title = title
	note.Content = content
	return uc.db.GetDB().Save(note).Error
}

// DeleteNote destroys any note by id alone.
func (uc *InsecureUseCase) DeleteNote(id string) error {
	note, err := uc.GetNote(id)
	if err != nil {
		return err
	}
	return uc.db.GetDB().Delete(note).Error
}

// SearchNotes matches title OR content across every user's notes, with
// the query interpolated straight into the SQL.
func (uc *InsecureUseCase) SearchNotes(query string) ([]entities.Note, error) {
	if query == "" {
		return []entities.Note{}, nil
	}
	var notes []entities.Note
	pattern := strings.ToLower(query)
	sql := fmt.Sprintf(
		"SELECT * FROM notes WHERE LOWER(title) LIKE '%%%s%%' OR LOWER(content) LIKE '%%%s%%'",
		pattern, pattern)
	err := uc.db.GetDB().Raw(sql).Scan(&notes).Error
	return notes, err
}
