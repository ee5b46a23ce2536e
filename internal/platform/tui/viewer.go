package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/mapgen/internal/layout"
	"github.com/vovakirdan/mapgen/internal/mapgen"
)

// ViewMode selects what the viewer draws.
type ViewMode int

const (
	// ViewCells shows the carved cell states (debug overlay).
	ViewCells ViewMode = iota
	// ViewTiles shows the classified tiles.
	ViewTiles
)

// String returns the view mode name.
func (v ViewMode) String() string {
	if v == ViewTiles {
		return "tiles"
	}
	return "cells"
}

// ViewerOption customises a ViewerModel.
type ViewerOption func(*ViewerModel)

// WithRecorder is called with every successful pass, e.g. to keep run history.
func WithRecorder(fn func(mapgen.Config, mapgen.Result)) ViewerOption {
	return func(m *ViewerModel) {
		m.record = fn
	}
}

// WithSeedSource overrides how the "random seed" key picks a seed.
func WithSeedSource(fn func() uint64) ViewerOption {
	return func(m *ViewerModel) {
		m.nextSeed = fn
	}
}

// WithTheme overrides the default theme.
func WithTheme(t LayoutTheme) ViewerOption {
	return func(m *ViewerModel) {
		m.theme = t
	}
}

// ViewerModel is a Bubble Tea model that browses generated layouts by seed.
type ViewerModel struct {
	gen      *mapgen.Generator
	title    string
	result   mapgen.Result
	grid     *layout.Grid
	err      error
	mode     ViewMode
	theme    LayoutTheme
	keys     ViewerKeyMap
	help     help.Model
	record   func(mapgen.Config, mapgen.Result)
	nextSeed func() uint64
	width    int
	height   int
	quitting bool
}

// NewViewerModel creates a viewer and runs the first pass.
func NewViewerModel(gen *mapgen.Generator, title string, opts ...ViewerOption) ViewerModel {
	m := ViewerModel{
		gen:   gen,
		title: title,
		theme: DefaultLayoutTheme(),
		keys:  DefaultViewerKeyMap(),
		help:  help.New(),
		nextSeed: func() uint64 {
			return uint64(time.Now().UnixNano())
		},
	}
	for _, opt := range opts {
		opt(&m)
	}
	m.regenerate()
	return m
}

// regenerate runs one pass with the generator's current seed.
func (m *ViewerModel) regenerate() {
	res, err := m.gen.Generate(context.Background())
	m.err = err
	if err != nil {
		m.result = mapgen.Result{}
		m.grid = nil
		return
	}
	m.result = res
	m.grid = m.gen.Grid()
	if m.record != nil {
		m.record(m.gen.Config(), res)
	}
}

func (m *ViewerModel) reseed(seed uint64) {
	m.gen.Reseed(seed)
	m.regenerate()
}

// Init initializes the viewer.
func (m ViewerModel) Init() tea.Cmd {
	return nil
}

// Update handles messages.
func (m ViewerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.NextSeed):
			m.reseed(m.gen.Config().Seed + 1)
		case key.Matches(msg, m.keys.PrevSeed):
			m.reseed(m.gen.Config().Seed - 1)
		case key.Matches(msg, m.keys.RandomSeed):
			m.reseed(m.nextSeed())
		case key.Matches(msg, m.keys.Toggle):
			if m.mode == ViewCells {
				m.mode = ViewTiles
			} else {
				m.mode = ViewCells
			}
		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
		}
	}
	return m, nil
}

// View renders the viewer.
func (m ViewerModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString(m.theme.HUDTitle.Render(m.title))
	b.WriteString("\n")
	b.WriteString(m.hud())
	b.WriteString("\n\n")

	if m.err != nil {
		b.WriteString(m.theme.HUDWarning.Render("Error: " + m.err.Error()))
		b.WriteString("\n\n")
	} else if m.grid != nil {
		mapView := m.theme.MapBorder.Render(m.renderMap())
		if m.width > 0 && lipgloss.Width(mapView) > m.width {
			b.WriteString(m.theme.HUDWarning.Render("terminal too narrow for this grid"))
			b.WriteString("\n")
		}
		b.WriteString(mapView)
		b.WriteString("\n\n")
	}

	b.WriteString(m.help.View(m.keys))
	return b.String()
}

func (m ViewerModel) renderMap() string {
	if m.mode == ViewTiles {
		return RenderTiles(m.grid.W, m.grid.H, m.result.Placements, m.theme)
	}
	return RenderCells(m.grid, m.theme)
}

func (m ViewerModel) hud() string {
	s := m.result.Stats
	fields := []string{
		fmt.Sprintf("seed %d", m.result.Seed),
		m.result.Strategy,
		m.mode.String(),
		fmt.Sprintf("hallways %d", s.Hallways),
		fmt.Sprintf("intersections %d", s.Intersections),
		fmt.Sprintf("interiors %d", s.Interiors),
		fmt.Sprintf("walls %d", s.Walls),
	}
	return m.theme.HUDValue.Render(strings.Join(fields, " · "))
}

// Result returns the last generated result.
func (m ViewerModel) Result() mapgen.Result {
	return m.result
}

// Mode returns the current view mode.
func (m ViewerModel) Mode() ViewMode {
	return m.mode
}

// Err returns the error of the last pass, if any.
func (m ViewerModel) Err() error {
	return m.err
}

// RunViewer starts the interactive layout viewer.
func RunViewer(gen *mapgen.Generator, title string, opts ...ViewerOption) error {
	model := NewViewerModel(gen, title, opts...)
	p := tea.NewProgram(model, tea.WithAltScreen())
	_, err := p.Run()
	return err
}
