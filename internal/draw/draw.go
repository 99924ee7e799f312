package draw

import (
	"context"
	"slices"
	"sync"
	"time"

	"github.com/desertthunder/hrtools/internal/models"
	"github.com/desertthunder/hrtools/internal/shared"
	"golang.org/x/time/rate"
)

const (
	DefaultSteps    = 30
	DefaultInterval = 80 * time.Millisecond
)

// State is the phase of the draw state machine.
type State int

const (
	Idle State = iota
	Drawing
	Result
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Drawing:
		return "drawing"
	case Result:
		return "result"
	default:
		return ""
	}
}

// Opts contains configuration for an [Engine].
type Opts struct {
	Random          shared.Random // Binding selections (default: [shared.NewRandom])
	Cosmetic        shared.Random // Cycling display samples (default: [shared.NewRandom])
	Steps           int           // Ticks per draw (default: 30)
	Interval        time.Duration // Cadence between ticks in [Engine.Run]; zero means no pacing
	AllowDuplicates bool          // Keep winners in the pool
}

// Engine holds the draw session for one roster.
type Engine struct {
	mu       sync.Mutex
	roster   []models.Person
	pool     []models.Person
	history  []models.Person
	winner   *models.Person
	state    State
	step     int
	current  int
	steps    int
	interval time.Duration
	allowDup bool
	keepWin  bool // allowDup as it was when the running draw started
	rnd      shared.Random
	cosmetic shared.Random
}

// NewEngine creates an [Engine] whose pool is the full roster.
func NewEngine(roster []models.Person, opts Opts) *Engine {
	if opts.Random == nil {
		opts.Random = shared.NewRandom()
	}
	if opts.Cosmetic == nil {
		opts.Cosmetic = shared.NewRandom()
	}
	if opts.Steps <= 0 {
		opts.Steps = DefaultSteps
	}
	if opts.Interval < 0 {
		opts.Interval = 0
	}

	e := &Engine{
		steps:    opts.Steps,
		interval: opts.Interval,
		allowDup: opts.AllowDuplicates,
		rnd:      opts.Random,
		cosmetic: opts.Cosmetic,
	}
	e.reset(roster)
	return e
}

// SetRoster replaces the upstream roster. The pool, winner and history are reset and any draw in progress is abandoned.
func (e *Engine) SetRoster(roster []models.Person) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.reset(roster)
}

// Reset restores the pool to the full roster, clears winner and history and returns to Idle.
func (e *Engine) Reset() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.reset(e.roster)
}

func (e *Engine) reset(roster []models.Person) {
	e.roster = roster
	e.pool = slices.Clone(roster)
	e.history = nil
	e.winner = nil
	e.state = Idle
	e.step = 0
	e.current = 0
}

// SetAllowDuplicates toggles whether winners stay in the pool. The pool and history are left as they are,
// and a draw already running keeps the setting it started with.
func (e *Engine) SetAllowDuplicates(allow bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.allowDup = allow
}

// Start begins a draw. It returns false, changing nothing, when the pool is empty or a draw is already running.
func (e *Engine) Start() bool {
	e.mu.Lock()
	defer e.mu.Unlock()

	if len(e.pool) == 0 || e.state == Drawing {
		return false
	}

	e.state = Drawing
	e.keepWin = e.allowDup
	e.winner = nil
	e.step = 0
	e.current = 0
	return true
}

// Tick advances a running draw by one step. Outside Drawing it reports the current state and does nothing.
func (e *Engine) Tick() ProgressUpdate {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.state != Drawing {
		return e.snapshot()
	}

	e.current = e.cosmetic.IntN(len(e.pool))
	e.step++

	if e.step >= e.steps {
		e.finish()
	}
	return e.snapshot()
}

// finish performs the binding selection.
func (e *Engine) finish() {
	i := e.rnd.IntN(len(e.pool))
	winner := e.pool[i]

	e.winner = &winner
	e.history = append([]models.Person{winner}, e.history...)
	if !e.keepWin {
		e.pool = slices.Delete(slices.Clone(e.pool), i, i+1)
	}
	e.current = 0
	e.state = Result
}

func (e *Engine) snapshot() ProgressUpdate {
	u := ProgressUpdate{Step: e.step, Total: e.steps, Done: e.state == Result}
	if e.state == Drawing && e.current < len(e.pool) {
		u.Current = e.pool[e.current]
	}
	if e.winner != nil {
		w := *e.winner
		u.Winner = &w
		u.Current = w
	}
	return u
}

// Run performs a complete draw, pacing ticks at the configured interval.
//
// It returns (nil, nil) when the draw could not start. Cancelling ctx abandons the draw and returns to Idle.
func (e *Engine) Run(ctx context.Context, progress chan<- ProgressUpdate) (*models.Person, error) {
	if !e.Start() {
		return nil, nil
	}

	limit := rate.Inf
	if e.interval > 0 {
		limit = rate.Every(e.interval)
	}
	limiter := rate.NewLimiter(limit, 1)
	limiter.Allow() // first tick lands one interval after start

	for {
		if err := limiter.Wait(ctx); err != nil {
			e.abort()
			return nil, err
		}

		update := e.Tick()
		sendProgress(progress, update)

		if update.Done {
			return update.Winner, nil
		}
		if e.State() != Drawing {
			return nil, nil
		}
	}
}

// abort drops an in-progress draw back to Idle, keeping pool and history.
func (e *Engine) abort() {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.state == Drawing {
		e.state = Idle
		e.step = 0
		e.current = 0
	}
}

// State returns the current state.
func (e *Engine) State() State {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.state
}

// Winner returns the most recent winner, or nil.
func (e *Engine) Winner() *models.Person {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.winner == nil {
		return nil
	}
	w := *e.winner
	return &w
}

// Pool returns a copy of the people still eligible to win.
func (e *Engine) Pool() []models.Person {
	e.mu.Lock()
	defer e.mu.Unlock()
	return slices.Clone(e.pool)
}

// History returns a copy of past winners, most recent first.
func (e *Engine) History() []models.Person {
	e.mu.Lock()
	defer e.mu.Unlock()
	return slices.Clone(e.history)
}

// AllowDuplicates reports whether winners stay in the pool.
func (e *Engine) AllowDuplicates() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.allowDup
}

// Progress returns the latest tick snapshot for display.
func (e *Engine) Progress() ProgressUpdate {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.snapshot()
}

// Interval returns the configured cadence between ticks.
func (e *Engine) Interval() time.Duration { return e.interval }
