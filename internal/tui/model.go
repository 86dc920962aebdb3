// Package tui is the interactive terminal front end: upload material,
// browse the generated kit, drill flashcards, take the quiz, chat with
// the tutor. All study logic lives in internal/study and internal/kitgen;
// this package only renders and routes key events.
package tui

import (
	"context"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"

	"github.com/wcfjeffrey/jeffreywoo-study-ai-model/internal/config"
	"github.com/wcfjeffrey/jeffreywoo-study-ai-model/internal/extract"
	"github.com/wcfjeffrey/jeffreywoo-study-ai-model/internal/kit"
	"github.com/wcfjeffrey/jeffreywoo-study-ai-model/internal/kitgen"
	"github.com/wcfjeffrey/jeffreywoo-study-ai-model/internal/logging"
	"github.com/wcfjeffrey/jeffreywoo-study-ai-model/internal/providers"
	"github.com/wcfjeffrey/jeffreywoo-study-ai-model/internal/study"
)

const tutorGreeting = "Hi! I'm your 24/7 AI Tutor. I've analyzed your materials. What concept should we break down first?"

type kitReadyMsg struct {
	session kit.StudySession
}

type kitFailedMsg struct {
	err error
}

type tutorAnswerMsg struct {
	answer string
}

type Model struct {
	cfg       config.Config
	log       *logging.Logger
	generator *kitgen.Generator
	tutor     *kitgen.Tutor

	nav     *study.Navigator
	session *kit.StudySession
	deck    *study.Deck
	quiz    *study.Quiz

	input    textinput.Model
	spinner  spinner.Model
	viewport viewport.Model
	renderer *glamour.TermRenderer
	styles   styles

	history    []kitgen.TutorTurn
	generating bool
	tutorBusy  bool
	errText    string
	width      int
	height     int
}

func NewModel(cfg config.Config, log *logging.Logger, provider providers.LLMProvider) Model {
	if log == nil {
		log = logging.Nop()
	}
	ti := textinput.New()
	ti.Placeholder = "path to .txt, .md, .pdf or image"
	ti.Focus()

	sp := spinner.New()
	sp.Spinner = spinner.Dot

	renderer, _ := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(76),
	)

	return Model{
		cfg:       cfg,
		log:       log,
		generator: kitgen.NewGenerator(provider, log, cfg.TutorBudget),
		tutor:     kitgen.NewTutor(provider, log, cfg.TutorBudget),
		nav:       study.NewNavigator(),
		input:     ti,
		spinner:   sp,
		viewport:  viewport.New(80, 20),
		renderer:  renderer,
		styles:    newStyles(),
	}
}

func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

func (m Model) generateCmd(path string) tea.Cmd {
	return func() tea.Msg {
		res, err := extract.FromFile(path, m.cfg.ContentBudget)
		if err != nil {
			return kitFailedMsg{err: err}
		}
		sess, err := m.generator.GenerateStudyKit(context.Background(), kitgen.GenerateInput{
			Content:        res.Text,
			Image:          res.Image,
			Language:       m.cfg.Language,
			FlashcardCount: m.cfg.FlashcardCount,
			QuizCount:      m.cfg.QuizCount,
		})
		if err != nil {
			return kitFailedMsg{err: err}
		}
		sess.OriginalText = res.Text
		return kitReadyMsg{session: sess}
	}
}

func (m Model) askTutorCmd(question string, history []kitgen.TutorTurn) tea.Cmd {
	contextText := ""
	if m.session != nil {
		contextText = m.session.OriginalText
	}
	return func() tea.Msg {
		return tutorAnswerMsg{answer: m.tutor.Ask(context.Background(), question, contextText, history)}
	}
}
