// Package loop drives one player's run in a terminal: input, fixed-rate
// simulation ticks, drawing and sound cues.
package loop

import (
	"bufio"
	"context"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/tomz197/spaceshoot/internal/audio"
	gameconfig "github.com/tomz197/spaceshoot/internal/config"
	"github.com/tomz197/spaceshoot/internal/draw"
	"github.com/tomz197/spaceshoot/internal/game"
	"github.com/tomz197/spaceshoot/internal/input"
	"github.com/tomz197/spaceshoot/internal/loop/config"
)

// Options configures a session.
type Options struct {
	TermSizeFunc draw.TermSizeFunc
	Username     string
	Seed         uint64 // Seed of the first run; 0 picks one from the clock
	Tuning       *gameconfig.Tuning
	Logger       *log.Logger
	Cues         audio.Cues
	IdleTimeout  bool // Warn and disconnect inactive players
}

// Session is one player's terminal connected to one World.
type Session struct {
	world    *game.World
	resolver input.Resolver
	state    *sessionState

	canvas      *draw.Canvas
	chunkWriter *draw.ChunkWriter
	writer      io.Writer
	inputStream *input.Stream
	termSize    draw.TermSizeFunc

	logger   *log.Logger
	cues     audio.Cues
	username string
	seed     uint64
	idle     bool
	now      func() time.Time
}

// NewSession creates a session reading keys from r and drawing to w.
func NewSession(r *bufio.Reader, w io.Writer, opts Options) *Session {
	termSize := opts.TermSizeFunc
	if termSize == nil {
		termSize = draw.DefaultTermSizeFunc
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	if opts.Username != "" {
		logger = logger.With("user", opts.Username)
	}
	cues := opts.Cues
	if cues == nil {
		cues = audio.Nop{}
	}

	worldOpts := []game.Option{game.WithLogger(logger)}
	if opts.Tuning != nil {
		worldOpts = append(worldOpts, game.WithTuning(*opts.Tuning))
	}

	termWidth, termHeight, err := termSize()
	if err != nil {
		logger.Debug("terminal size unavailable", "err", err)
	}
	renderWidth, renderHeight, offsetCol, offsetRow := clampTermSize(termWidth, termHeight)
	canvas := draw.NewCanvas(renderWidth, renderHeight, config.HalfHeight)
	canvas.SetOffset(offsetCol, offsetRow)

	s := &Session{
		world:       game.NewWorld(opts.Seed, worldOpts...),
		state:       newSessionState(time.Now()),
		canvas:      canvas,
		chunkWriter: draw.NewChunkWriter(w, offsetCol, offsetRow),
		writer:      w,
		inputStream: input.StartStream(r),
		termSize:    termSize,
		logger:      logger,
		cues:        cues,
		username:    truncate(opts.Username, config.MaxUsernameLength),
		seed:        opts.Seed,
		idle:        opts.IdleTimeout,
		now:         time.Now,
	}
	s.syncView()
	return s
}

// Run starts a session and blocks until the player quits, the input closes or
// ctx is cancelled and the shutdown notice has been shown.
func Run(ctx context.Context, r *bufio.Reader, w io.Writer, opts Options) error {
	return NewSession(r, w, opts).Run(ctx)
}

// Run executes the Input → Update → Draw cycle at the fixed tick rate.
func (s *Session) Run(ctx context.Context) error {
	draw.HideCursor(s.writer)
	defer draw.ShowCursor(s.writer)
	draw.ClearScreen(s.writer)

	last := s.now()
	for s.state.Running {
		frameStart := s.now()
		delta := frameStart.Sub(last)
		last = frameStart

		if ctx.Err() != nil && s.state.Screen != ScreenShutdown {
			s.beginShutdown()
		}

		s.state.Input = input.ReadInput(s.inputStream)
		if s.state.Input.Closed && len(s.state.Input.Pressed) == 0 {
			s.state.Running = false
			break
		}
		s.updateScreen()
		s.Step(delta)

		if err := s.drawFrame(); err != nil {
			return err
		}

		elapsed := s.now().Sub(frameStart)
		if elapsed < config.TickTime {
			time.Sleep(config.TickTime - elapsed)
		}
	}

	s.logger.Info("session ended", "runs", s.state.runs, "best", s.state.best)
	draw.ClearScreen(s.writer)
	return nil
}

// Step applies the frame's input and advances the current screen. Playing
// advances the world by exactly one tick.
func (s *Session) Step(delta time.Duration) {
	st := s.state
	pause := st.pressedPause()
	start := st.pressedStart()

	s.trackActivity()
	if st.Input.Quit {
		st.Running = false
		return
	}

	switch st.Screen {
	case ScreenTitle:
		if start {
			s.startRun()
		}
	case ScreenPlaying:
		if pause {
			st.Screen = ScreenPaused
			return
		}
		s.tick()
	case ScreenPaused:
		if pause || st.Input.Escape {
			st.Screen = ScreenPlaying
		}
	case ScreenOver:
		if start {
			s.startRun()
		}
	case ScreenShutdown:
		st.shutdownTimer -= delta.Seconds()
		if st.shutdownTimer <= 0 {
			st.Running = false
		}
	}
}

// tick advances the world once and reacts to the outcome.
func (s *Session) tick() {
	p := s.world.Player()
	s.world.AdvanceOneTick(s.resolver.Resolve(s.state.Input, p.X, p.Y))
	audio.Play(s.cues, s.world.Events())

	if s.world.Over() {
		prog := s.world.Progress()
		s.state.best = max(s.state.best, prog.Score)
		s.state.Screen = ScreenOver
		s.logger.Info("run over",
			"seed", s.world.Seed(),
			"score", prog.Score,
			"level", prog.Level,
			"seconds", prog.ElapsedSeconds,
		)
	}
}

// startRun begins a fresh run. The first run uses the configured seed.
func (s *Session) startRun() {
	seed := s.seed
	if s.state.runs > 0 || seed == 0 {
		seed = uint64(s.now().UnixNano())
	}
	s.state.runs++
	s.world.InitializeRun(seed)
	s.resolver.Reset()
	s.state.Screen = ScreenPlaying
	s.logger.Info("run started", "seed", seed, "run", s.state.runs)
}

func (s *Session) beginShutdown() {
	s.state.Screen = ScreenShutdown
	s.state.shutdownTimer = config.ShutdownDisplaySeconds
}

// trackActivity warns and eventually disconnects idle players.
func (s *Session) trackActivity() {
	st := s.state
	now := s.now()
	if len(st.Input.Pressed) > 0 {
		st.lastInput = now
		st.isInactive = false
		return
	}
	if !s.idle {
		return
	}
	idle := now.Sub(st.lastInput).Seconds()
	if idle > config.InactivityDisconnectUser {
		s.logger.Info("disconnecting inactive player")
		st.Running = false
	} else if idle > config.InactivityWarnUser {
		st.isInactive = true
	}
}

// updateScreen handles terminal resize, clamping to max render resolution.
// On actual size changes the terminal is cleared to remove residual pixels
// outside the new canvas area.
func (s *Session) updateScreen() {
	termWidth, termHeight, err := s.termSize()
	if err != nil {
		s.logger.Debug("terminal size unavailable", "err", err)
		return
	}
	renderWidth, renderHeight, offsetCol, offsetRow := clampTermSize(termWidth, termHeight)

	if renderWidth != s.canvas.TerminalWidth() || renderHeight != s.canvas.TerminalHeight() ||
		offsetCol != s.canvas.OffsetCol() || offsetRow != s.canvas.OffsetRow() {
		s.chunkWriter.Clear()
		s.canvas.ForceRedraw()
	}

	s.canvas.Resize(renderWidth, renderHeight)
	s.canvas.SetOffset(offsetCol, offsetRow)
	s.chunkWriter.SetOffset(offsetCol, offsetRow)
	s.syncView()
}

// syncView tells the world how much of it the player can see, so enemies
// spawn just off screen.
func (s *Session) syncView() {
	hw, hh := s.canvas.Extents()
	s.world.SetView(game.View{HalfWidth: hw, HalfHeight: hh})
}

// Screen returns the session's current screen.
func (s *Session) Screen() Screen { return s.state.Screen }

// World returns the session's simulation.
func (s *Session) World() *game.World { return s.world }

// clampTermSize clamps terminal dimensions to the max render resolution and computes
// the centering offset for the render area.
func clampTermSize(termWidth, termHeight int) (renderWidth, renderHeight, offsetCol, offsetRow int) {
	renderWidth = min(termWidth, config.MaxTermWidth)
	renderHeight = min(termHeight, config.MaxTermHeight)
	offsetCol = (termWidth - renderWidth) / 2
	offsetRow = (termHeight - renderHeight) / 2
	return
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}
