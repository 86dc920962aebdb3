package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/wcfjeffrey/jeffreywoo-study-ai-model/internal/kitgen"
	"github.com/wcfjeffrey/jeffreywoo-study-ai-model/internal/study"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.viewport.Width = msg.Width - 4
		m.viewport.Height = msg.Height - 8
		return m, nil

	case kitReadyMsg:
		m.generating = false
		m.errText = ""
		sess := msg.session
		m.session = &sess
		m.deck = study.NewDeck(sess.Flashcards)
		m.quiz = study.NewQuiz(sess.Quiz)
		m.history = []kitgen.TutorTurn{{Role: "model", Text: tutorGreeting}}
		m.nav.SessionReady()
		m.log.Info("session ready", "title", sess.Title,
			"flashcards", len(sess.Flashcards), "quiz", len(sess.Quiz))
		return m, nil

	case kitFailedMsg:
		m.generating = false
		m.errText = msg.err.Error()
		return m, nil

	case tutorAnswerMsg:
		m.tutorBusy = false
		m.history = append(m.history, kitgen.TutorTurn{Role: "model", Text: msg.answer})
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	var cmd tea.Cmd
	m.spinner, cmd = m.spinner.Update(msg)
	return m, cmd
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.Type == tea.KeyCtrlC {
		return m, tea.Quit
	}

	switch m.nav.View() {
	case study.ViewUpload:
		return m.updateUpload(msg)
	case study.ViewDashboard:
		return m.updateDashboard(msg)
	case study.ViewFlashcards:
		return m.updateFlashcards(msg)
	case study.ViewQuiz:
		return m.updateQuiz(msg)
	case study.ViewTutor:
		return m.updateTutor(msg)
	default:
		// notes and mindmap are read-only screens
		if msg.Type == tea.KeyEsc {
			m.nav.Go(study.ViewDashboard)
			return m, nil
		}
		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(msg)
		return m, cmd
	}
}

func (m Model) updateUpload(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.Type == tea.KeyEnter && !m.generating {
		path := strings.TrimSpace(m.input.Value())
		if path == "" {
			return m, nil
		}
		m.generating = true
		m.errText = ""
		return m, tea.Batch(m.spinner.Tick, m.generateCmd(path))
	}
	if msg.Type == tea.KeyEsc && m.nav.HasSession() {
		m.nav.Go(study.ViewDashboard)
		return m, nil
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) updateDashboard(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "f":
		m.nav.Go(study.ViewFlashcards)
	case "n":
		m.nav.Go(study.ViewNotes)
		m.viewport.SetContent(m.renderNotes())
		m.viewport.GotoTop()
	case "m":
		m.nav.Go(study.ViewMindmap)
		m.viewport.SetContent(m.renderMindmap())
		m.viewport.GotoTop()
	case "q":
		m.nav.Go(study.ViewQuiz)
	case "t":
		m.nav.Go(study.ViewTutor)
		m.input = textinput.New()
		m.input.Placeholder = "ask about the material"
		m.input.Focus()
	case "u":
		m.nav.Go(study.ViewUpload)
		m.input = textinput.New()
		m.input.Placeholder = "path to .txt, .md, .pdf or image"
		m.input.Focus()
	case "ctrl+q", "esc":
		return m, tea.Quit
	}
	return m, nil
}

func (m Model) updateFlashcards(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.nav.Go(study.ViewDashboard)
	case "right", "l", "n":
		m.deck.Next()
	case "left", "h", "p":
		m.deck.Prev()
	case " ", "enter":
		m.deck.Flip()
	}
	return m, nil
}

func (m Model) updateQuiz(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "esc" {
		m.nav.Go(study.ViewDashboard)
		return m, nil
	}
	if m.quiz.Finished() {
		if msg.String() == "r" {
			m.quiz.Restart()
		}
		return m, nil
	}
	switch msg.String() {
	case "1", "2", "3", "4":
		idx := int(msg.String()[0] - '1')
		opts := m.quiz.Current().Options
		if idx < len(opts) {
			m.quiz.Select(opts[idx])
		}
	case "enter":
		m.quiz.Advance()
	}
	return m, nil
}

func (m Model) updateTutor(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		m.nav.Go(study.ViewDashboard)
		return m, nil
	case tea.KeyEnter:
		// one request in flight at a time, the history is shared state
		if m.tutorBusy {
			return m, nil
		}
		question := strings.TrimSpace(m.input.Value())
		if question == "" {
			return m, nil
		}
		prior := append([]kitgen.TutorTurn(nil), m.history...)
		m.history = append(m.history, kitgen.TutorTurn{Role: "user", Text: question})
		m.input.SetValue("")
		m.tutorBusy = true
		return m, tea.Batch(m.spinner.Tick, m.askTutorCmd(question, prior))
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}
