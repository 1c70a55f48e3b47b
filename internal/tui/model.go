// Package tui is the terminal front end of a drilling session: it shows the
// current word and turns key presses into session actions.
package tui

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/rcliao/memcurve/internal/curve"
	"github.com/rcliao/memcurve/internal/session"
)

// Model is the bubbletea model wrapping a Session.
type Model struct {
	sess   *session.Session
	keys   keyMap
	help   help.Model
	copyFn func(string) error

	status string
	err    error
	width  int
}

// New returns a model for an already started session.
func New(sess *session.Session) *Model {
	m := &Model{
		sess:   sess,
		keys:   defaultKeyMap(),
		help:   help.New(),
		copyFn: clipboard.WriteAll,
	}
	if sess.Stage() == session.StageExhausted {
		m.status = "No words due today. Come back tomorrow."
	}
	m.keys.sync(sess.Stage())
	return m
}

// Run starts the session and blocks until the user quits or ctx ends.
func Run(ctx context.Context, sess *session.Session) error {
	if err := sess.Start(); err != nil && !errors.Is(err, curve.ErrNoWordsDue) {
		return err
	}
	p := tea.NewProgram(New(sess), tea.WithAltScreen(), tea.WithContext(ctx))
	_, err := p.Run()
	if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
		return nil
	}
	return err
}

func (m *Model) Init() tea.Cmd { return nil }

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		m.err = nil
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Know):
			m.do(m.sess.Know)
		case key.Matches(msg, m.keys.DontKnow):
			m.do(m.sess.DontKnow)
		case key.Matches(msg, m.keys.Wrong):
			m.do(m.sess.Wrong)
		case key.Matches(msg, m.keys.Next):
			m.do(m.sess.Next)
		case key.Matches(msg, m.keys.Copy):
			m.copyCurrent()
		}
		m.keys.sync(m.sess.Stage())
	}
	return m, nil
}

func (m *Model) do(action func() error) {
	m.status = ""
	err := action()
	switch {
	case err == nil:
	case errors.Is(err, curve.ErrNoWordsDue):
		m.status = "No more words due. Press q to save and quit."
	default:
		m.err = err
		slog.Warn("session action failed", "stage", m.sess.Stage().String(), "err", err)
	}
}

func (m *Model) copyCurrent() {
	w, ok := m.sess.Current()
	if !ok {
		return
	}
	if err := m.copyFn(fmt.Sprintf("%s %s %s", w.Word, w.Phonetic, w.Meaning)); err != nil {
		m.err = fmt.Errorf("copy to clipboard: %w", err)
		return
	}
	m.status = "Copied " + w.Word
}
