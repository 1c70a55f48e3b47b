package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/rcliao/memcurve/internal/session"
)

func (m *Model) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("memcurve"))
	b.WriteString("  ")
	b.WriteString(tallyStyle.Render(m.tally()))
	b.WriteString("\n\n")
	b.WriteString(cardStyle.Render(m.card()))
	b.WriteString("\n")

	if m.status != "" {
		b.WriteString(statusStyle.Render(m.status))
		b.WriteString("\n")
	}
	if m.err != nil {
		b.WriteString(errorStyle.Render("error: " + m.err.Error()))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(m.help.View(m.keys))
	return b.String()
}

func (m *Model) card() string {
	w, ok := m.sess.Current()
	if !ok {
		return phoneticStyle.Render("Nothing to review.")
	}

	reveal := m.sess.Reveal()
	lines := []string{wordStyle.Render(w.Word)}
	if reveal.Phonetic && w.Phonetic != "" {
		lines = append(lines, phoneticStyle.Render("/"+w.Phonetic+"/"))
	} else {
		lines = append(lines, "")
	}
	if reveal.Meaning {
		lines = append(lines, meaningStyle.Render(w.Meaning))
	} else {
		lines = append(lines, "")
	}
	if lvl, ok := m.sess.Level(); ok {
		lines = append(lines, levelStyle.Render(fmt.Sprintf("level %d", lvl)))
	} else {
		lines = append(lines, levelStyle.Render("new word"))
	}
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func (m *Model) tally() string {
	r := m.sess.Recorder()
	stage := ""
	if m.sess.Stage() == session.StageExhausted {
		stage = " · done"
	}
	return fmt.Sprintf("shown %d · known %d · unknown %d%s",
		m.sess.Shown(), len(r.Known()), len(r.Unknown()), stage)
}
