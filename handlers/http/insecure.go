package httpHandler

import (
	"errors"
	"html/template"
	"net/http"
	"net/url"
	"notes-lab/entities"
	"notes-lab/usecases"

	"github.com/gin-gonic/gin"
)

// InsecureHandler serves the vulnerable baseline. Identity travels as a
// plain ?username= query parameter, forms carry no CSRF tokens, and
// note content is rendered without escaping so stored XSS fires.
type InsecureHandler struct {
	uc *usecases.InsecureUseCase
}

func NewInsecureHandler(uc *usecases.InsecureUseCase) *InsecureHandler {
	return &InsecureHandler{uc: uc}
}

// rawNote is a Note whose content is marked safe for the template
// engine. Marking user input as template.HTML is exactly the stored-XSS
// mistake this variant demonstrates.
type rawNote struct {
	ID       string
	Username string
	Title    string
	Content  template.HTML
}

func rawNotes(notes []entities.Note) []rawNote {
	out := make([]rawNote, 0, len(notes))
	for _, n := range notes {
		out = append(out, rawNote{
			ID:       n.ID,
			Username: n.Username,
			Title:    n.Title,
			Content:  template.HTML(n.Content),
		})
	}
	return out
}

func notesURL(username string) string {
	return "/insecure/notes?username=" + url.QueryEscape(username)
}

// LoginPage handles GET /insecure/.
func (h *InsecureHandler) LoginPage(c *gin.Context) {
	c.HTML(http.StatusOK, "insecure_login.html", gin.H{})
}

// Login handles POST /insecure/login. On success the username is put in
// the redirect URL; there is no session.
func (h *InsecureHandler) Login(c *gin.Context) {
	user, err := h.uc.Authenticate(c.PostForm("username"), c.PostForm("password"))
	if err != nil {
		c.HTML(http.StatusOK, "insecure_login.html", gin.H{"error": "Invalid credentials"})
		return
	}
	c.Redirect(http.StatusFound, notesURL(user.Username))
}

// RegisterPage handles GET /insecure/register.
func (h *InsecureHandler) RegisterPage(c *gin.Context) {
	c.HTML(http.StatusOK, "insecure_register.html", gin.H{})
}

// Register handles POST /insecure/register.
func (h *InsecureHandler) Register(c *gin.Context) {
	_, err := h.uc.Register(c.PostForm("username"), c.PostForm("password"))
	if err != nil {
		if errors.Is(err, usecases.ErrUsernameTaken) {
			c.HTML(http.StatusOK, "insecure_register.html", gin.H{"error": "Username already taken."})
			return
		}
		c.String(http.StatusInternalServerError, "registration failed")
		return
	}
	c.Redirect(http.StatusFound, "/insecure/")
}

// NotesPage handles GET /insecure/notes?username=. Whatever username is
// in the URL is trusted.
func (h *InsecureHandler) NotesPage(c *gin.Context) {
	username := c.Query("username")
	notes, err := h.uc.ListNotes(username)
	if err != nil {
		c.String(http.StatusInternalServerError, "failed to load notes")
		return
	}
	c.HTML(http.StatusOK, "insecure_notes.html", gin.H{
		"username": username,
		"notes":    rawNotes(notes),
	})
}

// AddNote handles POST /insecure/notes. The owner comes from a form field.
func (h *InsecureHandler) AddNote(c *gin.Context) {
	username := c.PostForm("username")
	if _, err := h.uc.AddNote(username, c.PostForm("title"), c.PostForm("content")); err != nil {
		c.String(http.StatusInternalServerError, "failed to create note")
		return
	}
	c.Redirect(http.StatusFound, notesURL(username))
}

// EditNotePage handles GET /insecure/notes/:id/edit. Any note id works;
// ownership is never checked.
func (h *InsecureHandler) EditNotePage(c *gin.Context) {
	note, err := h.uc.GetNote(c.Param("id"))
	if err != nil {
		c.String(http.StatusNotFound, "Note not found")
		return
	}
	c.HTML(http.StatusOK, "insecure_edit_note.html", gin.H{
		"note":     note,
		"username": c.Query("username"),
	})
}

// EditNote handles POST /insecure/notes/:id/edit.
func (h *InsecureHandler) EditNote(c *gin.Context) {
	if err := h.uc.UpdateNote(c.Param("id"), c.PostForm("title"), c.PostForm("content")); err != nil {
		c.String(http.StatusNotFound, "Note not found")
		return
	}
	c.Redirect(http.StatusFound, notesURL(c.PostForm("username")))
}

// DeleteNotePage handles GET /insecure/notes/:id/delete.
func (h *InsecureHandler) DeleteNotePage(c *gin.Context) {
	note, err := h.uc.GetNote(c.Param("id"))
	if err != nil {
		c.String(http.StatusNotFound, "Note not found")
		return
	}
	c.HTML(http.StatusOK, "insecure_delete_note.html", gin.H{
		"note":     note,
		"username": c.Query("username"),
	})
}

// DeleteNote handles POST /insecure/notes/:id/delete.
func (h *InsecureHandler) DeleteNote(c *gin.Context) {
	if err := h.uc.DeleteNote(c.Param("id")); err != nil {
		c.String(http.StatusNotFound, "Note not found")
		return
	}
	c.Redirect(http.StatusFound, notesURL(c.PostForm("username")))
}

// Search handles GET /insecure/search?q=. Matches every user's notes on
// title or content.
func (h *InsecureHandler) Search(c *gin.Context) {
	query := c.Query("q")
	results, err := h.uc.SearchNotes(query)
	if err != nil {
		c.String(http.StatusInternalServerError, "search failed")
		return
	}
	c.HTML(http.StatusOK, "insecure_search.html", gin.H{
		"results": rawNotes(results),
		"query":   query,
	})
}
