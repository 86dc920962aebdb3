package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/wcfjeffrey/jeffreywoo-study-ai-model/internal/kit"
	"github.com/wcfjeffrey/jeffreywoo-study-ai-model/internal/mindmap"
	"github.com/wcfjeffrey/jeffreywoo-study-ai-model/internal/study"
)

func (m Model) View() string {
	switch m.nav.View() {
	case study.ViewUpload:
		return m.viewUpload()
	case study.ViewDashboard:
		return m.viewDashboard()
	case study.ViewFlashcards:
		return m.viewFlashcards()
	case study.ViewQuiz:
		return m.viewQuiz()
	case study.ViewTutor:
		return m.viewTutor()
	default:
		title := "Notes"
		if m.nav.View() == study.ViewMindmap {
			title = "Mindmap"
		}
		return m.styles.Title.Render(title) + "\n\n" + m.viewport.View() +
			m.styles.Help.Render("\n↑/↓ scroll · esc back")
	}
}

func (m Model) viewUpload() string {
	var b strings.Builder
	b.WriteString(m.styles.Title.Render("Study Kit"))
	b.WriteString("\n\n")
	b.WriteString("Upload study material to generate flashcards, notes, a quiz and a mindmap.\n\n")
	b.WriteString(m.input.View())
	b.WriteString("\n")
	if m.generating {
		b.WriteString("\n" + m.spinner.View() + " analyzing material, this can take a minute...\n")
	}
	if m.errText != "" {
		b.WriteString("\n" + m.styles.Error.Render(m.errText) + "\n")
	}
	b.WriteString(m.styles.Help.Render("enter generate · ctrl+c quit"))
	return b.String()
}

func (m Model) viewDashboard() string {
	if m.session == nil {
		return ""
	}
	var b strings.Builder
	b.WriteString(m.styles.Title.Render(m.session.Title))
	b.WriteString("\n")
	b.WriteString(m.styles.Subtle.Render(fmt.Sprintf("%d flashcards · %d quiz questions · %s",
		len(m.session.Flashcards), len(m.session.Quiz), m.session.Language)))
	b.WriteString("\n\n")
	for _, c := range m.session.Concepts {
		b.WriteString(lipgloss.NewStyle().Bold(true).Render(c.Term))
		b.WriteString(": " + c.Definition + "\n")
	}
	b.WriteString(m.styles.Help.Render("f flashcards · n notes · m mindmap · q quiz · t tutor · u new upload · esc quit"))
	return b.String()
}

func (m Model) viewFlashcards() string {
	if m.deck.Len() == 0 {
		return m.styles.Subtle.Render("No flashcards available.") +
			m.styles.Help.Render("\nesc back")
	}
	card := m.deck.Current()
	var face string
	var box lipgloss.Style
	if m.deck.Flipped() {
		answer := card.Back
		if card.Type == kit.CardCloze {
			answer = study.ClozeAnswer(card)
		}
		face = answer
		box = m.styles.CardBack
	} else {
		face = m.deck.FrontText()
		if card.Type == kit.CardMCQ {
			for i, opt := range card.Options {
				face += fmt.Sprintf("\n  %c) %s", 'A'+i, opt)
			}
		}
		box = m.styles.Card
	}

	var b strings.Builder
	b.WriteString(m.styles.Title.Render("Flashcards"))
	b.WriteString(m.styles.Subtle.Render(fmt.Sprintf("  %d/%d · %s", m.deck.Index()+1, m.deck.Len(), card.Type)))
	b.WriteString("\n\n")
	b.WriteString(box.Render(face))
	b.WriteString(m.styles.Help.Render("\nspace flip · ←/→ navigate · esc back"))
	return b.String()
}

func (m Model) viewQuiz() string {
	var b strings.Builder
	b.WriteString(m.styles.Title.Render("Quiz"))
	b.WriteString("\n\n")

	if m.quiz.Finished() {
		b.WriteString(fmt.Sprintf("You scored %d out of %d (%d%%)\n", m.quiz.Score(), m.quiz.Len(), m.quiz.Accuracy()))
		b.WriteString(m.styles.Help.Render("r restart · esc back"))
		return b.String()
	}

	q := m.quiz.Current()
	b.WriteString(m.styles.Subtle.Render(fmt.Sprintf("Question %d of %d · score %d", m.quiz.Index()+1, m.quiz.Len(), m.quiz.Score())))
	b.WriteString("\n\n" + q.Question + "\n\n")
	for i, opt := range q.Options {
		line := fmt.Sprintf("%d) %s", i+1, opt)
		style := m.styles.Option
		if m.quiz.Answered() {
			switch {
			case opt == q.Answer:
				style = m.styles.Correct
			case opt == m.quiz.Selected():
				style = m.styles.Wrong
			}
		}
		b.WriteString(style.Render(line) + "\n")
	}
	if m.quiz.Answered() && q.Explanation != "" {
		b.WriteString("\n" + m.styles.Subtle.Render(q.Explanation) + "\n")
	}
	help := "1-4 answer · esc back"
	if m.quiz.Answered() {
		help = "enter continue · esc back"
	}
	b.WriteString(m.styles.Help.Render(help))
	return b.String()
}

func (m Model) viewTutor() string {
	var b strings.Builder
	b.WriteString(m.styles.Title.Render("AI Tutor"))
	b.WriteString("\n\n")
	for _, turn := range m.history {
		if turn.Role == "user" {
			b.WriteString(m.styles.TutorYou.Render("you  ") + turn.Text + "\n\n")
		} else {
			b.WriteString(m.styles.TutorBot.Render("tutor  "+turn.Text) + "\n\n")
		}
	}
	if m.tutorBusy {
		b.WriteString(m.spinner.View() + " thinking...\n\n")
	}
	b.WriteString(m.input.View())
	b.WriteString(m.styles.Help.Render("\nenter send · esc back"))
	return b.String()
}

func (m Model) renderNotes() string {
	if m.session == nil {
		return ""
	}
	var b strings.Builder
	if m.session.Cornell != nil {
		c := m.session.Cornell
		b.WriteString("# Cornell Notes\n\n## Cues\n\n")
		for _, cue := range c.Cues {
			b.WriteString("- " + cue + "\n")
		}
		b.WriteString("\n## Notes\n\n")
		for _, note := range c.Notes {
			b.WriteString("- " + note + "\n")
		}
		b.WriteString("\n## Summary\n\n" + c.Summary + "\n\n")
	}
	b.WriteString(m.session.Notes)

	if m.renderer != nil {
		if out, err := m.renderer.Render(b.String()); err == nil {
			return out
		}
	}
	return b.String()
}

func (m Model) renderMindmap() string {
	if m.session == nil {
		return ""
	}
	var b strings.Builder
	m.renderBranch(&b, m.session.Mindmap, "", true, 0)
	return b.String()
}

func (m *Model) renderBranch(b *strings.Builder, node kit.MindmapNode, prefix string, last bool, depth int) {
	var style lipgloss.Style
	switch mindmap.Tier(depth) {
	case "root":
		style = m.styles.MapRoot
	case "branch":
		style = m.styles.MapBranch
	case "sub-branch":
		style = m.styles.MapSub
	default:
		style = m.styles.MapDetail
	}

	if depth == 0 {
		b.WriteString(style.Render(node.Label) + "\n")
	} else {
		connector := "├─ "
		if last {
			connector = "└─ "
		}
		b.WriteString(prefix + connector + style.Render(node.Label) + "\n")
	}

	childPrefix := prefix
	if depth > 0 {
		if last {
			childPrefix += "   "
		} else {
			childPrefix += "│  "
		}
	}
	for i, child := range node.Children {
		m.renderBranch(b, child, childPrefix, i == len(node.Children)-1, depth+1)
	}
}
