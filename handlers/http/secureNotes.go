package httpHandler

import (
	"errors"
	"net/http"
	"notes-lab/auth"
	"notes-lab/usecases"

	"github.com/gin-gonic/gin"
)

type SecureNoteHandler struct {
	notes  *usecases.NoteUseCase
	tokens auth.TokenStore
}

func NewSecureNoteHandler(notes *usecases.NoteUseCase, tokens auth.TokenStore) *SecureNoteHandler {
	return &SecureNoteHandler{notes: notes, tokens: tokens}
}

// NotesPage handles GET /secure/notes.
func (h *SecureNoteHandler) NotesPage(c *gin.Context) {
	h.renderNotes(c, "")
}

// CreateNote handles POST /secure/notes. The owner is always the
// session user, never a form field.
func (h *SecureNoteHandler) CreateNote(c *gin.Context) {
	if !consumeCSRF(c, h.tokens) {
		return
	}

	username := auth.CurrentUser(c)
	title := c.PostForm("title")
	content := c.PostForm("content")

	if _, err := h.notes.CreateNote(username, title, content); err != nil {
		if errors.Is(err, usecases.ErrContentRequired) {
			h.renderNotes(c, "Content is required.")
			return
		}
		c.String(http.StatusInternalServerError, "failed to create note")
		return
	}
	c.Redirect(http.StatusFound, "/secure/notes")
}

// EditNotePage handles GET /secure/notes/:id/edit.
func (h *SecureNoteHandler) EditNotePage(c *gin.Context) {
	note, err := h.notes.GetOwnedNote(auth.CurrentUser(c), c.Param("id"))
	if err != nil {
		c.String(http.StatusNotFound, "Note not found or unauthorized")
		return
	}
	token, ok := mintToken(c, h.tokens)
	if !ok {
		return
	}
	c.HTML(http.StatusOK, "secure_edit_note.html", gin.H{
		"note":       note,
		"csrf_token": token,
	})
}

// EditNote handles POST /secure/notes/:id/edit.
func (h *SecureNoteHandler) EditNote(c *gin.Context) {
	if !consumeCSRF(c, h.tokens) {
		return
	}

	err := h.notes.UpdateNote(auth.CurrentUser(c), c.Param("id"), c.PostForm("title"), c.PostForm("content"))
	if err != nil {
		if errors.Is(err, usecases.ErrContentRequired) {
			c.String(http.StatusBadRequest, "Content is required.")
			return
		}
		c.String(http.StatusNotFound, "Note not found or unauthorized")
		return
	}
	c.Redirect(http.StatusFound, "/secure/notes")
}

// DeleteNotePage handles GET /secure/notes/:id/delete, the confirm page.
func (h *SecureNoteHandler) DeleteNotePage(c *gin.Context) {
	note, err := h.notes.GetOwnedNote(auth.CurrentUser(c), c.Param("id"))
	if err != nil {
		c.String(http.StatusNotFound, "Note not found or unauthorized")
		return
	}
	token, ok := mintToken(c, h.tokens)
	if !ok {
		return
	}
	c.HTML(http.StatusOK, "secure_delete_note.html", gin.H{
		"note":       note,
		"csrf_token": token,
	})
}

// DeleteNote handles POST /secure/notes/:id/delete.
func (h *SecureNoteHandler) DeleteNote(c *gin.Context) {
	if !consumeCSRF(c, h.tokens) {
		return
	}

	if err := h.notes.DeleteNote(auth.CurrentUser(c), c.Param("id")); err != nil {
		c.String(http.StatusNotFound, "Note not found or unauthorized")
		return
	}
	c.Redirect(http.StatusFound, "/secure/notes")
}

// Search handles GET /secure/search?q=. An empty query bounces back to
// the list; matching is on the caller's own note titles only.
func (h *SecureNoteHandler) Search(c *gin.Context) {
	query := c.Query("q")
	if query == "" {
		c.Redirect(http.StatusFound, "/secure/notes")
		return
	}

	username := auth.CurrentUser(c)
	notes, err := h.notes.SearchNotes(username, query)
	if err != nil {
		c.String(http.StatusInternalServerError, "search failed")
		return
	}
	token, ok := mintToken(c, h.tokens)
	if !ok {
		return
	}
	c.HTML(http.StatusOK, "secure_search.html", gin.H{
		"username":   username,
		"notes":      notes,
		"query":      query,
		"csrf_token": token,
	})
}

func (h *SecureNoteHandler) renderNotes(c *gin.Context, errMsg string) {
	username := auth.CurrentUser(c)
	notes, err := h.notes.ListNotes(username)
	if err != nil {
		c.String(http.StatusInternalServerError, "failed to load notes")
		return
	}
	token, ok := mintToken(c, h.tokens)
	if !ok {
		return
	}
	data := gin.H{
		"username":   username,
		"notes":      notes,
		"csrf_token": token,
	}
	if errMsg != "" {
		data["error"] = errMsg
	}
	c.HTML(http.StatusOK, "secure_notes.html", data)
}
