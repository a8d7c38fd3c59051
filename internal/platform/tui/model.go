package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/qsnake/internal/core"
	"github.com/vovakirdan/qsnake/internal/game/snake"
	"github.com/vovakirdan/qsnake/internal/storage"
)

// Model is the Bubble Tea model driving a qsnake session. It owns the tick
// loop, forwards input to the game, and persists episode results and the
// Q-table at episode boundaries.
type Model struct {
	game       *snake.Game
	screen     *core.Screen
	store      *storage.Store
	qtablePath string // empty disables Q-table persistence
	keys       *KeyMapper
	config     core.RuntimeConfig
	inputFrame core.InputFrame
	gameState  core.GameState
	quitting   bool
}

// NewModel creates a Bubble Tea model for the given game.
// A nil store or empty qtablePath disables the respective persistence.
func NewModel(game *snake.Game, store *storage.Store, qtablePath string, cfg core.RuntimeConfig) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	game.Reset(cfg)

	return Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:      store,
		qtablePath: qtablePath,
		keys:       NewKeyMapper(),
		config:     cfg,
		inputFrame: core.NewInputFrame(),
		gameState:  game.State(),
	}
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.game.TickInterval())
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if isQuit := m.keys.MapKeyToFrame(msg, &m.inputFrame); isQuit {
		m.persistQTable()
		m.quitting = true
		return m, tea.Quit
	}
	return m, nil
}

// handleResize updates the layout; the episode keeps running.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)
	m.game.Resize(msg.Width, msg.Height)
	return m, nil
}

// handleTick advances the simulation by one tick.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.quitting {
		return m, nil
	}

	result := m.game.Step(m.inputFrame)
	m.gameState = result.State

	if result.EpisodeEnded {
		if m.store != nil {
			//nolint:errcheck // Best-effort save, game continues regardless
			m.store.SaveEpisode(result.Episode)
		}
		if m.gameState.Training {
			m.persistQTable()
		}
	}

	m.inputFrame.Clear()

	return m, tickCmd(m.game.TickInterval())
}

// persistQTable writes the Q-table snapshot if a path is configured.
func (m Model) persistQTable() {
	if m.qtablePath == "" || !m.game.Training() {
		return
	}
	//nolint:errcheck // Best-effort save, load failures are recovered anyway
	m.game.Agent().Save(m.qtablePath)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen)
}

// Run starts the Bubble Tea program for a local terminal session.
func Run(game *snake.Game, store *storage.Store, qtablePath string, cfg core.RuntimeConfig) error {
	model := NewModel(game, store, qtablePath, cfg)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
