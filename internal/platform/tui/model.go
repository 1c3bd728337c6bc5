package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-quoridor/internal/core"
	"github.com/vovakirdan/tui-quoridor/internal/logging"
	"github.com/vovakirdan/tui-quoridor/internal/quoridor"
	"github.com/vovakirdan/tui-quoridor/internal/rules"
)

// Mode selects what the arrow keys control.
type Mode int

const (
	ModeMove Mode = iota // arrows move the selected player
	ModeWall             // arrows move the wall cursor
)

// Model is the Bubble Tea model of the board sandbox. Either player can act
// at any time; tab selects which one the arrow keys move.
type Model struct {
	config core.RuntimeConfig
	keys   KeyMap
	help   help.Model
	theme  Theme
	screen *core.Screen
	logger *log.Logger
	trace  bool
	tracer *logging.PathTracer // nil unless trace is set

	board   *quoridor.Board
	history []*quoridor.Board // boards before each committed action

	player      quoridor.Player
	mode        Mode
	cursor      quoridor.Position
	orientation quoridor.Orientation
	showPath    bool
	paths       [][]quoridor.Position // found paths of the current board, while showPath is on

	status   string
	err      error
	width    int // terminal size, 0 until the first resize
	height   int
	quitting bool
}

// Option configures a Model.
type Option func(*Model)

// WithLogger routes model events to logger.
func WithLogger(logger *log.Logger) Option {
	return func(m *Model) {
		m.logger = logger
	}
}

// WithPathTracing logs every path search the model triggers at debug level.
func WithPathTracing() Option {
	return func(m *Model) {
		m.trace = true
	}
}

// NewModel creates a model with a fresh board of the configured size.
func NewModel(cfg core.RuntimeConfig, opts ...Option) (Model, error) {
	m := Model{
		config:   cfg,
		keys:     DefaultKeyMap(),
		help:     help.New(),
		theme:    DefaultTheme(),
		logger:   logging.Discard(),
		showPath: cfg.ShowPath,
		width:    cfg.ScreenW,
		height:   cfg.ScreenH,
	}
	for _, opt := range opts {
		opt(&m)
	}
	if m.trace {
		m.tracer = logging.NewPathTracer(m.logger, nil)
	}
	if err := m.reset(); err != nil {
		return Model{}, err
	}
	m.help.Width = cfg.ScreenW
	return m, nil
}

// reset starts over on an empty board.
func (m *Model) reset() error {
	b, err := quoridor.New(m.config.BoardH, m.config.BoardW)
	if err != nil {
		return fmt.Errorf("new board: %w", err)
	}
	m.setBoard(b)
	m.history = nil
	m.player = quoridor.PlayerA
	m.mode = ModeMove
	m.orientation = quoridor.Horizontal
	m.cursor = b.Dims().MustPosition(1, 0)
	m.err = nil
	m.status = "new board"

	w, h := screenSize(b.Dims())
	m.screen = core.NewScreen(core.Max(w, m.width), h)
	m.logger.Info("new board", "height", m.config.BoardH, "width", m.config.BoardW)
	return nil
}

// setBoard makes b current and points the tracer at it.
func (m *Model) setBoard(b *quoridor.Board) {
	m.board = b
	if m.tracer != nil {
		m.tracer.Attach(b)
	}
	m.refreshPaths()
}

// refreshPaths searches both players' paths once per board change, so
// rendering never runs a search.
func (m *Model) refreshPaths() {
	m.paths = nil
	if !m.showPath {
		return
	}
	for _, p := range []quoridor.Player{quoridor.PlayerA, quoridor.PlayerB} {
		if path, ok := m.board.FindPath(m.board.PositionOf(p), p); ok {
			m.paths = append(m.paths, path)
		}
	}
}

// Board returns the current board.
func (m Model) Board() *quoridor.Board {
	return m.board
}

// Player returns the player the arrow keys move.
func (m Model) Player() quoridor.Player {
	return m.player
}

// Mode returns the current input mode.
func (m Model) Mode() Mode {
	return m.mode
}

// Cursor returns the wall cursor position and orientation.
func (m Model) Cursor() (quoridor.Position, quoridor.Orientation) {
	return m.cursor, m.orientation
}

// Err returns the error of the last rejected action, if any.
func (m Model) Err() error {
	return m.err
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleAction(m.keys.Action(msg))

	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = msg.Width
		w, h := screenSize(m.board.Dims())
		m.screen.Resize(core.Max(w, msg.Width), h)
		return m, nil
	}

	return m, nil
}

// handleAction applies one board action.
func (m Model) handleAction(action core.Action) (tea.Model, tea.Cmd) {
	if action == core.ActionQuit {
		m.quitting = true
		return m, tea.Quit
	}
	if action == core.ActionNone {
		return m, nil
	}

	m.err = nil
	m.status = ""
	m.logger.Debug("action", "action", action.String())

	switch {
	case action.IsDirectional() && m.mode == ModeMove:
		m.move(action)
	case action.IsDirectional():
		m.moveCursor(action)
	}

	switch action {
	case core.ActionToggleMode:
		if m.mode == ModeMove {
			m.mode = ModeWall
		} else {
			m.mode = ModeMove
		}
	case core.ActionRotate:
		m.orientation = m.orientation.Rotated()
	case core.ActionConfirm:
		if m.mode == ModeWall {
			m.placeWall()
		}
	case core.ActionSwitchPlayer:
		m.player = m.player.Opponent()
		m.status = fmt.Sprintf("acting as player %s", m.player)
	case core.ActionUndo:
		m.undo()
	case core.ActionNew:
		if err := m.reset(); err != nil {
			m.err = err
		}
	case core.ActionTogglePath:
		m.showPath = !m.showPath
		m.refreshPaths()
	case core.ActionHelp:
		m.help.ShowAll = !m.help.ShowAll
	}
	return m, nil
}

// cardinalityOf maps an arrow to a board direction.
func cardinalityOf(action core.Action) quoridor.Cardinality {
	switch action {
	case core.ActionDown:
		return quoridor.South
	case core.ActionLeft:
		return quoridor.West
	case core.ActionRight:
		return quoridor.East
	default:
		return quoridor.North
	}
}

func (m *Model) move(action core.Action) {
	dir := cardinalityOf(action)
	next := m.board.Clone()
	if err := next.MovePlayer(m.player, dir); err != nil {
		m.err = err
		m.logger.Debug("move rejected", "player", m.player.String(), "dir", dir.String(), "err", err)
		return
	}
	m.commit(next)
	m.logger.Info("player moved", "player", m.player.String(), "dir", dir.String(), "to", next.PositionOf(m.player).String())
	if winner, ok := next.CheckForWinner(); ok {
		m.logger.Info("goal reached", "player", winner.String())
	}
}

func (m *Model) moveCursor(action core.Action) {
	dx, dy := action.Offset()
	d := m.board.Dims()
	row := core.Clamp(m.cursor.Row()+dy, 0, d.Height-1)
	col := core.Clamp(m.cursor.Col()+dx, 0, d.Width-1)
	m.cursor = d.MustPosition(row, col)
}

// placeWall tries the wall on a copy and commits it unless it is illegal or,
// with vetoing on, leaves either player without a path.
func (m *Model) placeWall() {
	next := m.board.Clone()
	if m.tracer != nil {
		m.tracer.Attach(next)
	}
	if err := rules.ApplyWall(next, m.cursor, m.orientation, m.config.VetoBlockingWalls); err != nil {
		if m.tracer != nil {
			m.tracer.Attach(m.board)
		}
		m.err = err
		m.logger.Debug("wall rejected", "at", m.cursor.String(), "orientation", m.orientation.String(), "err", err)
		return
	}
	m.commit(next)
	m.logger.Info("wall placed", "at", m.cursor.String(), "orientation", m.orientation.String())
}

// commit pushes the current board to the history and makes next current.
func (m *Model) commit(next *quoridor.Board) {
	m.history = append(m.history, m.board)
	m.setBoard(next)
}

func (m *Model) undo() {
	if len(m.history) == 0 {
		m.status = "nothing to undo"
		return
	}
	last := len(m.history) - 1
	m.setBoard(m.history[last])
	m.history = m.history[:last]
	m.status = "undone"
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	w, h := screenSize(m.board.Dims())
	if m.width > 0 && m.height > 0 && (m.width < w || m.height < h) {
		return fmt.Sprintf("Terminal too small: need %dx%d, have %dx%d\n\nq to quit",
			w, h, m.width, m.height)
	}

	m.drawBoard(m.screen)
	m.drawStatus(m.screen)

	var b strings.Builder
	if m.config.Colors {
		b.WriteString(RenderScreen(m.screen, m.theme))
	} else {
		b.WriteString(m.screen.String())
	}
	b.WriteString("\n")
	b.WriteString(m.help.View(m.keys))
	return b.String()
}

// Run starts the Bubble Tea program.
func Run(cfg core.RuntimeConfig, opts ...Option) error {
	model, err := NewModel(cfg, opts...)
	if err != nil {
		return err
	}

	p := tea.NewProgram(model, tea.WithAltScreen())
	_, err = p.Run()
	return err
}
