package usecases

import (
	"errors"
	"notes-lab/entities"
	"notes-lab/repositories"

	"gorm.io/gorm"
)

type NoteUseCase struct {
	NoteRepo repositories.NoteRepository
}

func NewNoteUseCase(noteRepo repositories.NoteRepository) *NoteUseCase {
	return &NoteUseCase{NoteRepo: noteRepo}
}

// CreateNote attaches the acting username as owner. Title may be empty,
// content may not.
func (uc *NoteUseCase) CreateNote(username, title, content string) (*entities.Note, error) {
	if content == "" {
		return nil, ErrContentRequired
	}
	note := &entities.Note{Username: username, Title: title, Content: content}
	if err := uc.NoteRepo.Create(note); err != nil {
		return nil, err
	}
	return note, nil
}

// ListNotes returns all notes owned by username.
func (uc *NoteUseCase) ListNotes(username string) ([]entities.Note, error) {
	return uc.NoteRepo.GetByUsername(username)
}

// GetOwnedNote loads a note by id and enforces the ownership predicate.
// A missing note and a note owned by someone else both come back as
// ErrNotFound.
func (uc *NoteUseCase) GetOwnedNote(username, id string) (*entities.Note, error) {
	note, err := uc.NoteRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if note.Username != username {
		return nil, ErrNotFound
	}
	return note, nil
}

// UpdateNote rewrites title and content of a note the user owns.
func (uc *NoteUseCase) UpdateNote(username, id, title, content string) error {
	note, err := uc.GetOwnedNote(username, id)
	if err != nil {
		return err
	}
	if content == "" {
		return ErrContentRequired
	}
	note.Title = title
	note.Content = content
	return uc.NoteRepo.Update(note)
}

// DeleteNote destroys a note the user owns.
func (uc *NoteUseCase) DeleteNote(username, id string) error {
	note, err := uc.GetOwnedNote(username, id)
	if err != nil {
		return err
	}
	return uc.NoteRepo.Delete(note.ID)
}

// SearchNotes matches the user's own notes by title substring,
// case-insensitively. Content is deliberately not searched.
func (uc *NoteUseCase) SearchNotes(username, query string) ([]entities.Note, error) {
	return uc.NoteRepo.SearchByTitle(username, query)
}
