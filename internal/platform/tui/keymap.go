package tui

import (
	"github.com/charmbracelet/bubbles/key"
)

// ViewerKeyMap defines the key bindings for the layout viewer.
type ViewerKeyMap struct {
	NextSeed   key.Binding
	PrevSeed   key.Binding
	RandomSeed key.Binding
	Toggle     key.Binding
	Help       key.Binding
	Quit       key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k ViewerKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.NextSeed, k.PrevSeed, k.RandomSeed, k.Toggle, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k ViewerKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.NextSeed, k.PrevSeed, k.RandomSeed},
		{k.Toggle, k.Help, k.Quit},
	}
}

// DefaultViewerKeyMap returns default key bindings.
func DefaultViewerKeyMap() ViewerKeyMap {
	return ViewerKeyMap{
		NextSeed: key.NewBinding(
			key.WithKeys("n", "right", "l"),
			key.WithHelp("n/→", "next seed"),
		),
		PrevSeed: key.NewBinding(
			key.WithKeys("p", "left", "h"),
			key.WithHelp("p/←", "prev seed"),
		),
		RandomSeed: key.NewBinding(
			key.WithKeys("r", " "),
			key.WithHelp("r", "random seed"),
		),
		Toggle: key.NewBinding(
			key.WithKeys("t", "tab"),
			key.WithHelp("t", "cells/tiles"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "more"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c", "esc"),
			key.WithHelp("q", "quit"),
		),
	}
}
