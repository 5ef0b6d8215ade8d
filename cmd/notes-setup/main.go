package main

import (
	"fmt"
	"os"
	"strings"

	"notes-lab/auth"
	"notes-lab/db"
	"notes-lab/entities"
	"notes-lab/repositories"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Styles
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("205")).
			MarginBottom(1)

	selectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("170")).
			Bold(true).
			PaddingLeft(2)

	normalStyle = lipgloss.NewStyle().
			PaddingLeft(4)

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")).
			Bold(true)

	successStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("42")).
			Bold(true)

	inputStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("86"))

	promptStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("205")).
			Bold(true)
)

type step int

const (
	stepSelectingAction step = iota
	stepEnteringUsername
	stepEnteringPassword
	stepWorking
	stepComplete
)

type action int

const (
	actionCreateUser action = iota
	actionResetPassword
	actionInitDB
)

var actionLabels = []string{
	"Create a user (secure variant, bcrypt hash)",
	"Reset a user's password",
	"Wipe and re-migrate the database",
}

type model struct {
	step         step
	action       action
	cursor       int
	username     string
	currentInput string
	message      string
	quitting     bool
	database     db.Database
}

type doneMsg struct{ summary string }
type errMsg struct{ err error }

func (e errMsg) Error() string { return e.err.Error() }

func initialModel(database db.Database) model {
	return model{
		step:     stepSelectingAction,
		database: database,
	}
}

func (m model) Init() tea.Cmd {
	return nil
}

func createUser(database db.Database, username, password string) tea.Cmd {
	return func() tea.Msg {
		hash, err := auth.HashPassword(password)
		if err != nil {
			return errMsg{fmt.Errorf("failed to hash password: %w", err)}
		}

		users := repositories.NewUserGormRepository(database)
		if _, err := users.GetByUsername(username); err == nil {
			return errMsg{fmt.Errorf("user %q already exists", username)}
		}

		user := &entities.User{Username: username, PasswordHash: hash}
		if err := users.Create(user); err != nil {
			return errMsg{fmt.Errorf("failed to create user: %w", err)}
		}
		return doneMsg{summary: "Created user " + username}
	}
}

func resetPassword(database db.Database, username, password string) tea.Cmd {
	return func() tea.Msg {
		users := repositories.NewUserGormRepository(database)
		if _, err := users.GetByUsername(username); err != nil {
			return errMsg{fmt.Errorf("user %q not found", username)}
		}

		hash, err := auth.HashPassword(password)
		if err != nil {
			return errMsg{fmt.Errorf("failed to hash password: %w", err)}
		}
		if err := users.UpdatePassword(username, hash); err != nil {
			return errMsg{fmt.Errorf("failed to update password: %w", err)}
		}
		return doneMsg{summary: "Password updated for " + username}
	}
}

func initDB(database db.Database) tea.Cmd {
	return func() tea.Msg {
		gdb := database.GetDB()
		if err := gdb.Migrator().DropTable(&entities.Note{}, &entities.User{}); err != nil {
			return errMsg{fmt.Errorf("failed to drop tables: %w", err)}
		}
		if err := db.Migrate(gdb); err != nil {
			return errMsg{fmt.Errorf("failed to migrate: %w", err)}
		}
		return doneMsg{summary: "Database wiped and re-migrated"}
	}
}

func (m model) startAction() (tea.Model, tea.Cmd) {
	m.step = stepWorking
	m.message = "Working..."
	switch m.action {
	case actionCreateUser:
		return m, createUser(m.database, m.username, m.currentInput)
	case actionResetPassword:
		return m, resetPassword(m.database, m.username, m.currentInput)
	default:
		return m, initDB(m.database)
	}
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			m.quitting = true
			return m, tea.Quit

		case "q":
			if m.step == stepSelectingAction || m.step == stepComplete {
				m.quitting = true
				return m, tea.Quit
			}
			m.currentInput += "q"

		case "up", "k":
			if m.step == stepSelectingAction && m.cursor > 0 {
				m.cursor--
			}

		case "down", "j":
			if m.step == stepSelectingAction && m.cursor < len(actionLabels)-1 {
				m.cursor++
			}

		case "backspace":
			if len(m.currentInput) > 0 {
				m.currentInput = m.currentInput[:len(m.currentInput)-1]
			}

		default:
			if m.step == stepEnteringUsername || m.step == stepEnteringPassword {
				m.currentInput += msg.String()
			}

		case "enter":
			switch m.step {
			case stepSelectingAction:
				m.action = action(m.cursor)
				if m.action == actionInitDB {
					return m.startAction()
				}
				m.step = stepEnteringUsername

			case stepEnteringUsername:
				if m.currentInput != "" {
					m.username = m.currentInput
					m.currentInput = ""
					m.step = stepEnteringPassword
				}

			case stepEnteringPassword:
				if m.currentInput != "" {
					return m.startAction()
				}

			case stepComplete:
				m.quitting = true
				return m, tea.Quit
			}
		}

	case doneMsg:
		m.step = stepComplete
		m.currentInput = ""
		m.message = successStyle.Render("✓ " + msg.summary)

	case errMsg:
		m.step = stepSelectingAction
		m.currentInput = ""
		m.cursor = 0
		m.message = errorStyle.Render("✗ " + msg.err.Error())
	}

	return m, nil
}

func (m model) View() string {
	if m.quitting {
		return ""
	}

	var s strings.Builder

	s.WriteString(titleStyle.Render("📝 Notes Lab Setup Tool\n\n"))

	switch m.step {
	case stepSelectingAction:
		if m.message != "" {
			s.WriteString(m.message + "\n\n")
		}
		s.WriteString(promptStyle.Render("Select an action:\n\n"))
		for i, label := range actionLabels {
			cursor := " "
			style := normalStyle
			if m.cursor == i {
				cursor = ">"
				style = selectedStyle
			}
			s.WriteString(fmt.Sprintf("%s %s\n", cursor, style.Render(label)))
		}
		s.WriteString("\nUse ↑/↓, Enter to select, q to quit\n")

	case stepEnteringUsername:
		s.WriteString(promptStyle.Render("Enter username:\n"))
		s.WriteString(inputStyle.Render("> " + m.currentInput))
		s.WriteString("\n\nPress Enter\n")

	case stepEnteringPassword:
		s.WriteString(promptStyle.Render("Enter password:\n"))
		s.WriteString(inputStyle.Render("> " + strings.Repeat("•", len(m.currentInput))))
		s.WriteString("\n\nPress Enter\n")

	case stepWorking:
		s.WriteString(m.message + "\n")

	case stepComplete:
		s.WriteString(m.message + "\n")
		s.WriteString("\nPress Enter to exit\n")
	}

	return s.String()
}

func main() {
	database, err := db.Connect()
	if err != nil {
		fmt.Println("Failed to connect to DB:", err)
		os.Exit(1)
	}

	p := tea.NewProgram(initialModel(database))
	if _, err := p.Run(); err != nil {
		fmt.Println("Error:", err)
		os.Exit(1)
	}
}
