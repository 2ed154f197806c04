package quiz

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"sync"
	"time"

	"quizgen/internal/question"
)

// State is the controller's lifecycle state.
type State string

const (
	StateStart      State = "start"
	StateInProgress State = "in_progress"
	StateFinished   State = "finished"
)

var (
	// ErrInvalidTransition is returned for a transition the current state does not allow.
	ErrInvalidTransition = errors.New("quiz: invalid state transition")
	// ErrNoActiveSession is returned for session operations outside InProgress.
	ErrNoActiveSession = errors.New("quiz: no session in progress")
)

// TickInterval is how often the countdown decrements.
const TickInterval = time.Second

// Options configures a Controller. Zero values select wall-clock defaults.
type Options struct {
	Scheduler Scheduler
	Now       func() time.Time
	Rand      *rand.Rand
	Observer  Observer
}

// Controller owns the live session and its single timer handle.
type Controller struct {
	mu         sync.Mutex
	pool       question.Pool
	settings   Settings
	scheduler  Scheduler
	now        func() time.Time
	rng        *rand.Rand
	observer   Observer
	state      State
	mode       Mode
	session    *Session
	result     *Result
	stopTimer  func()
	generation uint64
}

// NewController returns a controller in the Start state.
func NewController(pool question.Pool, settings Settings, opts Options) *Controller {
	if opts.Scheduler == nil {
		opts.Scheduler = TickerScheduler{}
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if opts.Rand == nil {
		opts.Rand = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	if opts.Observer == nil {
		opts.Observer = nopObserver{}
	}
	return &Controller{
		pool:      pool,
		settings:  settings,
		scheduler: opts.Scheduler,
		now:       opts.Now,
		rng:       opts.Rand,
		observer:  opts.Observer,
		state:     StateStart,
	}
}

// Settings returns the runtime settings.
func (c *Controller) Settings() Settings {
	return c.settings
}

// Pool returns the question pool.
func (c *Controller) Pool() question.Pool {
	return c.pool
}

// State returns the current lifecycle state.
func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// StartQuiz builds a new session for mode and starts its countdown.
func (c *Controller) StartQuiz(mode Mode) error {
	c.mu.Lock()
	if c.state != StateStart {
		state := c.state
		c.mu.Unlock()
		return fmt.Errorf("%w: start from %s", ErrInvalidTransition, state)
	}
	info, err := c.beginLocked(mode)
	c.mu.Unlock()
	if err != nil {
		return err
	}
	c.observer.OnSessionStart(info)
	return nil
}

// Finish ends the current session manually and scores it.
func (c *Controller) Finish() (Result, error) {
	c.mu.Lock()
	if c.state != StateInProgress {
		state := c.state
		c.mu.Unlock()
		return Result{}, fmt.Errorf("%w: finish from %s", ErrInvalidTransition, state)
	}
	result := c.finishLocked(FinishManual)
	c.mu.Unlock()
	c.observer.OnFinish(result)
	return result, nil
}

// Retry starts a fresh session with the mode of the finished one.
func (c *Controller) Retry() error {
	c.mu.Lock()
	if c.state != StateFinished {
		state := c.state
		c.mu.Unlock()
		return fmt.Errorf("%w: retry from %s", ErrInvalidTransition, state)
	}
	info, err := c.beginLocked(c.mode)
	c.mu.Unlock()
	if err != nil {
		return err
	}
	c.observer.OnSessionStart(info)
	return nil
}

// Home returns to the Start state. From InProgress the session is abandoned.
func (c *Controller) Home() error {
	c.mu.Lock()
	var (
		abandoned bool
		info      SessionInfo
		answered  int
	)
	switch c.state {
	case StateInProgress:
		abandoned = true
		info = c.infoLocked()
		answered = c.session.AnsweredCount()
	case StateFinished:
	default:
		state := c.state
		c.mu.Unlock()
		return fmt.Errorf("%w: home from %s", ErrInvalidTransition, state)
	}
	c.cancelTimerLocked()
	c.session = nil
	c.result = nil
	c.state = StateStart
	c.mu.Unlock()
	if abandoned {
		c.observer.OnAbandon(info, answered)
	}
	return nil
}

// SelectOption answers the current question.
func (c *Controller) SelectOption(index int) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.state != StateInProgress {
		return ErrNoActiveSession
	}
	return c.session.SelectOption(index)
}

// Navigate moves the current question by delta.
func (c *Controller) Navigate(delta int) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.state != StateInProgress {
		return ErrNoActiveSession
	}
	c.session.Navigate(delta)
	return nil
}

// JumpTo moves to the question at index.
func (c *Controller) JumpTo(index int) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.state != StateInProgress {
		return ErrNoActiveSession
	}
	c.session.JumpTo(index)
	return nil
}

// Snapshot is a deep copy of the controller state at one instant.
type Snapshot struct {
	State    State
	Mode     Mode
	Session  *Session
	Result   *Result
	Settings Settings
	Pool     PoolStats
}

// PoolStats describes the pool sizes relevant to mode selection.
type PoolStats struct {
	Total   int
	Primary int
}

// Snapshot returns a copy that is safe to read without the controller lock.
func (c *Controller) Snapshot() Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()
	snap := Snapshot{
		State:    c.state,
		Mode:     c.mode,
		Session:  c.session.Clone(),
		Settings: c.settings,
		Pool:     c.poolStats(),
	}
	if c.result != nil {
		result := *c.result
		snap.Result = &result
	}
	return snap
}

// Close stops the timer. The controller stays usable.
func (c *Controller) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.cancelTimerLocked()
}

func (c *Controller) poolStats() PoolStats {
	stats := PoolStats{Total: c.pool.Size()}
	if source, ok := c.pool.Source(c.settings.PrimarySource); ok {
		stats.Primary = len(source.Questions)
	}
	return stats
}

func (c *Controller) beginLocked(mode Mode) (SessionInfo, error) {
	session, err := Build(mode, c.pool, c.settings, c.rng, c.now())
	if err != nil {
		return SessionInfo{}, err
	}
	c.cancelTimerLocked()
	c.session = session
	c.result = nil
	c.mode = mode
	c.state = StateInProgress
	generation := c.generation
	c.stopTimer = c.scheduler.Every(TickInterval, func() { c.tick(generation) })
	return c.infoLocked(), nil
}

func (c *Controller) finishLocked(reason FinishReason) Result {
	c.cancelTimerLocked()
	result := Score(c.session, c.settings, c.now(), reason)
	c.result = &result
	c.state = StateFinished
	return result
}

// cancelTimerLocked stops the live handle and invalidates ticks it may
// still deliver.
func (c *Controller) cancelTimerLocked() {
	if c.stopTimer != nil {
		c.stopTimer()
		c.stopTimer = nil
	}
	c.generation++
}

func (c *Controller) tick(generation uint64) {
	c.mu.Lock()
	if generation != c.generation || c.state != StateInProgress {
		c.mu.Unlock()
		return
	}
	if c.session.SecondsRemaining > 0 {
		c.session.SecondsRemaining--
	}
	if c.session.SecondsRemaining > 0 {
		c.mu.Unlock()
		return
	}
	result := c.finishLocked(FinishTimeout)
	c.mu.Unlock()
	c.observer.OnFinish(result)
}

func (c *Controller) infoLocked() SessionInfo {
	return SessionInfo{
		SessionID:    c.session.ID,
		Mode:         c.session.Mode,
		Items:        len(c.session.Items),
		Requested:    c.session.Requested,
		TimerSeconds: c.settings.TimerSeconds,
	}
}
