package repositories

import (
	"notes-lab/db"
	"notes-lab/entities"
	"time"
)

type userGormRepository struct {
	db db.Database
}

func NewUserGormRepository(database db.Database) UserRepository {
	return &userGormRepository{db: database}
}

func (r *userGormRepository) Create(user *entities.User) error {
	return r.db.GetDB().Create(user).Error
}

func (r *userGormRepository) GetByUsername(username string) (*entities.User, error) {
	var user entities.User
	err := r.db.GetDB().Where("username = ?", username).First(&user).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userGormRepository) UpdatePassword(username, passwordHash string) error {
	return r.db.GetDB().Model(&entities.User{}).
		Where("username = ?", username).
		Updates(map[string]interface{}{
			"password_hash": passwordHash,
			"updated_at":    time.Now().Format(time.RFC3339),
		}).Error
}
