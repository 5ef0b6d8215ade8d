package usecases

import (
	"testing"

	"notes-lab/db"
	"notes-lab/entities"
	"notes-lab/repositories"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func setupTestDB(t *testing.T) db.Database {
	t.Helper()

	gdb, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err, "failed to open test database")
	require.NoError(t, db.Migrate(gdb), "failed to migrate test database")

	return &db.GormDatabase{DB: gdb}
}

func newUserUseCase(t *testing.T) (*UserUseCase, db.Database) {
	t.Helper()
	database := setupTestDB(t)
	return NewUserUseCase(repositories.NewUserGormRepository(database)), database
}

func TestRegisterHashesPassword(t *testing.T) {
	uc, database := newUserUseCase(t)

	user, err := uc.Register("alice", "pw1")
	require.NoError(t, err)
	assert.NotEmpty(t, user.ID)

	var stored entities.User
	require.NoError(t, database.GetDB().Where("username = ?", "alice").First(&stored).Error)
	assert.NotEmpty(t, stored.PasswordHash)
	assert.NotEqual(t, "pw1", stored.PasswordHash)
	assert.Empty(t, stored.Password, "secure registration must never write the plaintext column")
}

func TestRegisterRejectsTakenUsername(t *testing.T) {
	uc, _ := newUserUseCase(t)

	_, err := uc.Register("alice", "pw1")
	require.NoError(t, err)

	_, err = uc.Register("alice", "different")
	assert.ErrorIs(t, err, ErrUsernameTaken)
}

func TestAuthenticateSucceedsOnlyWithRegisteredPassword(t *testing.T) {
	uc, _ := newUserUseCase(t)

	_, err := uc.Register("alice", "pw1")
	require.NoError(t, err)

	user, err := uc.Authenticate("alice", "pw1")
	require.NoError(t, err)
	assert.Equal(t, "alice", user.Username)

	_, err = uc.Authenticate("alice", "pw2")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestAuthenticateFailureDoesNotLeakCause(t *testing.T) {
	uc, _ := newUserUseCase(t)

	_, err := uc.Register("alice", "pw1")
	require.NoError(t, err)

	_, wrongPassword := uc.Authenticate("alice", "nope")
	_, unknownUser := uc.Authenticate("nobody", "nope")

	// Unknown user and wrong password must be the same error to the caller.
	assert.ErrorIs(t, wrongPassword, ErrInvalidCredentials)
	assert.ErrorIs(t, unknownUser, ErrInvalidCredentials)
	assert.Equal(t, wrongPassword.Error(), unknownUser.Error())
}
