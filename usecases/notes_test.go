package usecases

import (
	"testing"

	"notes-lab/repositories"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newNoteUseCase(t *testing.T) *NoteUseCase {
	t.Helper()
	return NewNoteUseCase(repositories.NewNoteGormRepository(setupTestDB(t)))
}

func TestCreateNoteRequiresContent(t *testing.T) {
	uc := newNoteUseCase(t)

	_, err := uc.CreateNote("alice", "title only", "")
	assert.ErrorIs(t, err, ErrContentRequired)

	note, err := uc.CreateNote("alice", "", "content without title")
	require.NoError(t, err)
	assert.Equal(t, "alice", note.Username)
	assert.NotEmpty(t, note.ID)
}

func TestListNotesIsScopedToOwner(t *testing.T) {
	uc := newNoteUseCase(t)

	_, err := uc.CreateNote("alice", "a1", "alice note")
	require.NoError(t, err)
	_, err = uc.CreateNote("bob", "b1", "bob note")
	require.NoError(t, err)

	aliceNotes, err := uc.ListNotes("alice")
	require.NoError(t, err)
	require.Len(t, aliceNotes, 1)
	assert.Equal(t, "a1", aliceNotes[0].Title)

	bobNotes, err := uc.ListNotes("bob")
	require.NoError(t, err)
	require.Len(t, bobNotes, 1)
	assert.Equal(t, "b1", bobNotes[0].Title)
}

func TestCrossUserAccessReportsNotFound(t *testing.T) {
	uc := newNoteUseCase(t)

	note, err := uc.CreateNote("alice", "secret", "alice only")
	require.NoError(t, err)

	// A foreign owner and a missing id must be indistinguishable.
	_, errForeign := uc.GetOwnedNote("bob", note.ID)
	_, errMissing := uc.GetOwnedNote("bob", "no-such-id")
	assert.ErrorIs(t, errForeign, ErrNotFound)
	assert.ErrorIs(t, errMissing, ErrNotFound)
	assert.Equal(t, errForeign.Error(), errMissing.Error())

	assert.ErrorIs(t, uc.UpdateNote("bob", note.ID, "x", "y"), ErrNotFound)
	assert.ErrorIs(t, uc.DeleteNote("bob", note.ID), ErrNotFound)

	// The note is untouched.
	got, err := uc.GetOwnedNote("alice", note.ID)
	require.NoError(t, err)
	assert.Equal(t, "alice only", got.Content)
}

func TestUpdateAndDeleteByOwner(t *testing.T) {
	uc := newNoteUseCase(t)

	note, err := uc.CreateNote("alice", "draft", "v1")
	require.NoError(t, err)

	require.NoError(t, uc.UpdateNote("alice", note.ID, "final", "v2"))
	got, err := uc.GetOwnedNote("alice", note.ID)
	require.NoError(t, err)
	assert.Equal(t, "final", got.Title)
	assert.Equal(t, "v2", got.Content)

	require.NoError(t, uc.DeleteNote("alice", note.ID))
	_, err = uc.GetOwnedNote("alice", note.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestSearchMatchesTitleOnlyCaseInsensitively(t *testing.T) {
	uc := newNoteUseCase(t)

	_, err := uc.CreateNote("alice", "Grocery List", "buy eggs")
	require.NoError(t, err)
	_, err = uc.CreateNote("alice", "Work", "grocery reminders live here")
	require.NoError(t, err)
	_, err = uc.CreateNote("bob", "Grocery run", "bob's list")
	require.NoError(t, err)

	// Title substring, any case.
	results, err := uc.SearchNotes("alice", "grocery")
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "Grocery List", results[0].Title)

	// Content is never searched.
	results, err = uc.SearchNotes("alice", "eggs")
	require.NoError(t, err)
	assert.Empty(t, results)

	// Other users' notes never appear.
	results, err = uc.SearchNotes("bob", "grocery")
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "bob", results[0].Username)
}
