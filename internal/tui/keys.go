package tui

import (
	"github.com/charmbracelet/bubbles/key"

	"github.com/rcliao/memcurve/internal/session"
)

type keyMap struct {
	Know     key.Binding
	DontKnow key.Binding
	Next     key.Binding
	Wrong    key.Binding
	Copy     key.Binding
	Quit     key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Know: key.NewBinding(
			key.WithKeys("k", "left"),
			key.WithHelp("k", "know"),
		),
		DontKnow: key.NewBinding(
			key.WithKeys("u", "right"),
			key.WithHelp("u", "don't know"),
		),
		Next: key.NewBinding(
			key.WithKeys("n", "enter", " "),
			key.WithHelp("n", "next"),
		),
		Wrong: key.NewBinding(
			key.WithKeys("w"),
			key.WithHelp("w", "mis-remembered"),
		),
		Copy: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "copy"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "save & quit"),
		),
	}
}

// sync enables only the bindings that apply to stage.
func (k *keyMap) sync(stage session.Stage) {
	k.Know.SetEnabled(stage == session.StageAsk)
	k.DontKnow.SetEnabled(stage == session.StageAsk)
	k.Next.SetEnabled(stage == session.StageRevealKnown || stage == session.StageRevealUnknown)
	k.Wrong.SetEnabled(stage == session.StageRevealKnown)
	k.Copy.SetEnabled(stage == session.StageRevealKnown || stage == session.StageRevealUnknown)
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Know, k.DontKnow, k.Next, k.Wrong, k.Copy, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}
