package repositories

import "notes-lab/entities"

type UserRepository interface {
	Create(user *entities.User) error
	GetByUsername(username string) (*entities.User, error)
	UpdatePassword(username, passwordHash string) error
}

type NoteRepository interface {
	Create(note *entities.Note) error
	GetByID(id string) (*entities.Note, error)
	GetByUsername(username string) ([]entities.Note, error)
	SearchByTitle(username, query string) ([]entities.Note, error)
	Update(note *entities.Note) error
	Delete(id string) error
}
