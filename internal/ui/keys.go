package ui

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/ngmaloney/weather-terminal/internal/models"
)

type keyMap struct {
	Submit     key.Binding
	ToggleUnit key.Binding
	Quit       key.Binding
}

func newKeyMap(unit models.Unit) keyMap {
	km := keyMap{
		Submit: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "fetch weather"),
		),
		ToggleUnit: key.NewBinding(
			key.WithKeys("tab"),
		),
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c", "esc"),
			key.WithHelp("esc", "quit"),
		),
	}
	km.setUnit(unit)
	return km
}

// setUnit labels the toggle with the unit it switches to
func (k *keyMap) setUnit(unit models.Unit) {
	k.ToggleUnit.SetHelp("tab", unit.Toggle().Symbol())
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Submit, k.ToggleUnit, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}
