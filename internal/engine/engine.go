// Package engine implements the brain-training game loop: challenge
// selection, countdown timing, scoring, difficulty progression, and life
// management. The engine owns all game state; the presentation layer reads
// it through emitted events and the State snapshot, and mutates it only
// through the public methods.
//
// The engine is tick-driven: the platform calls Advance with the elapsed
// wall time each frame, exactly as the arcade games consume a fixed tick.
// There are no internal timers, which keeps the whole state machine
// deterministic and inert while paused.
package engine

import (
	"io"
	"math"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-braintrain/internal/challenge"
	"github.com/vovakirdan/tui-braintrain/internal/difficulty"
)

// Config holds the engine's tuning knobs. Zero values are replaced by the
// defaults from DefaultConfig.
type Config struct {
	// MaxLives is the life cap; a game starts with this many.
	MaxLives int

	// StreakTarget is the run of consecutive correct answers that grants
	// a life. The streak resets when it is reached, whether or not a
	// life was actually granted.
	StreakTarget int

	// CorrectDelay is the pacing delay after a correct answer, during
	// which the presentation shows positive feedback.
	CorrectDelay time.Duration

	// WrongDelay is the pacing delay after a wrong answer or timeout
	// when lives remain.
	WrongDelay time.Duration

	// GameOverDelay is the pacing delay between losing the last life and
	// the game-over transition.
	GameOverDelay time.Duration

	// GraceDelay postpones the countdown start after a challenge is
	// announced, giving the player time to read. Zero starts the
	// countdown immediately.
	GraceDelay time.Duration

	// Logger receives engine diagnostics. Nil discards them.
	Logger *log.Logger
}

// DefaultConfig returns the standard engine tuning.
func DefaultConfig() Config {
	return Config{
		MaxLives:      5,
		StreakTarget:  3,
		CorrectDelay:  1500 * time.Millisecond,
		WrongDelay:    2500 * time.Millisecond,
		GameOverDelay: 2500 * time.Millisecond,
		GraceDelay:    0,
	}
}

// State is a snapshot of the engine's game state. Returned by value; the
// engine is the only writer.
type State struct {
	IsPlaying bool
	IsPaused  bool

	Lives    int
	MaxLives int

	Score      int
	WinStreak  int
	Difficulty int

	TotalChallenges int
	CorrectAnswers  int
	WrongAnswers    int

	CategoryStats map[challenge.Category]CategoryStat

	TimeRemaining time.Duration
	BaseTime      time.Duration
	StartTime     time.Time
}

// pendingKind tags the continuation scheduled after grading.
type pendingKind int

const (
	pendingNone pendingKind = iota
	pendingNext             // Advance to the next challenge
	pendingEnd              // Transition to game over
)

// Engine is the game state machine. Not safe for concurrent use: the
// platform drives it from a single event loop, per the Bubble Tea model.
type Engine struct {
	reg      *challenge.Registry
	recorder StatsRecorder
	cfg      Config
	log      *log.Logger

	subs    []subscriber
	nextSub int

	st        State
	current   challenge.Instance
	activeCat challenge.Category

	// Countdown and scheduling state. accepting gates SubmitAnswer so a
	// graded challenge cannot be graded twice while its pacing delay
	// runs; the countdown and the submission path both clear it, so the
	// first to execute wins.
	accepting    bool
	timerRunning bool
	grace        time.Duration
	elapsed      time.Duration
	pending      pendingKind
	pendingIn    time.Duration
}

// New creates an engine drawing challenges from reg and persisting results
// through recorder. recorder may be nil.
func New(reg *challenge.Registry, recorder StatsRecorder, cfg Config) *Engine {
	def := DefaultConfig()
	if cfg.MaxLives <= 0 {
		cfg.MaxLives = def.MaxLives
	}
	if cfg.StreakTarget <= 0 {
		cfg.StreakTarget = def.StreakTarget
	}
	if cfg.CorrectDelay <= 0 {
		cfg.CorrectDelay = def.CorrectDelay
	}
	if cfg.WrongDelay <= 0 {
		cfg.WrongDelay = def.WrongDelay
	}
	if cfg.GameOverDelay <= 0 {
		cfg.GameOverDelay = def.GameOverDelay
	}
	logger := cfg.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	return &Engine{
		reg:      reg,
		recorder: recorder,
		cfg:      cfg,
		log:      logger,
	}
}

// State returns a copy of the current game state.
func (e *Engine) State() State {
	st := e.st
	st.CategoryStats = make(map[challenge.Category]CategoryStat, len(e.st.CategoryStats))
	for c, s := range e.st.CategoryStats {
		st.CategoryStats[c] = s
	}
	return st
}

// Current returns the active challenge instance, or nil outside a round.
func (e *Engine) Current() challenge.Instance { return e.current }

// Elapsed returns how long the active challenge has been on screen.
// Presentation passes this to Instance.Render.
func (e *Engine) Elapsed() time.Duration { return e.elapsed }

// StartGame resets all game state and requests the first challenge.
// Calling it while a game is already playing is a no-op; a fresh call
// after game over begins a logically new game.
func (e *Engine) StartGame() {
	if e.st.IsPlaying {
		return
	}

	stats := make(map[challenge.Category]CategoryStat, 4)
	for _, c := range challenge.Categories() {
		stats[c] = CategoryStat{}
	}

	e.st = State{
		IsPlaying:     true,
		Lives:         e.cfg.MaxLives,
		MaxLives:      e.cfg.MaxLives,
		Difficulty:    1,
		CategoryStats: stats,
		StartTime:     time.Now(),
	}
	e.pending = pendingNone

	e.emit(GameStartedEvent{Lives: e.st.Lives, Difficulty: e.st.Difficulty})
	e.nextChallenge()
}

// PauseGame freezes the countdown. Valid only while playing and not
// already paused; otherwise a no-op.
func (e *Engine) PauseGame() {
	if !e.st.IsPlaying || e.st.IsPaused {
		return
	}
	e.st.IsPaused = true
	e.emit(GamePausedEvent{})
}

// ResumeGame restarts the countdown from the frozen remaining time.
func (e *Engine) ResumeGame() {
	if !e.st.IsPlaying || !e.st.IsPaused {
		return
	}
	e.st.IsPaused = false
	e.emit(GameResumedEvent{})
}

// Advance moves the engine's clocks forward by dt: the grace delay, the
// countdown, and any pending pacing delay. The platform calls this on a
// fixed tick. Inert while idle or paused.
func (e *Engine) Advance(dt time.Duration) {
	if !e.st.IsPlaying || e.st.IsPaused {
		return
	}

	// A scheduled continuation takes priority over the countdown: after
	// grading there is no live countdown until the next challenge.
	if e.pending != pendingNone {
		e.pendingIn -= dt
		if e.pendingIn > 0 {
			return
		}
		kind := e.pending
		e.pending = pendingNone

		// Re-validate at fire time: a quit or an earlier transition may
		// have changed the world since this was scheduled.
		switch kind {
		case pendingEnd:
			e.EndGame()
		case pendingNext:
			if !e.st.IsPlaying || e.st.Lives <= 0 {
				e.EndGame()
				return
			}
			e.nextChallenge()
		}
		return
	}

	if e.current == nil {
		return
	}
	e.elapsed += dt

	if e.grace > 0 {
		e.grace -= dt
		if e.grace > 0 {
			return
		}
		e.timerRunning = true
	}
	if !e.timerRunning {
		return
	}

	e.st.TimeRemaining -= dt
	if e.st.TimeRemaining < 0 {
		e.st.TimeRemaining = 0
	}

	pct := 0.0
	if e.st.BaseTime > 0 {
		pct = float64(e.st.TimeRemaining) / float64(e.st.BaseTime)
	}
	e.emit(TimerTickEvent{Remaining: e.st.TimeRemaining, Total: e.st.BaseTime, Percent: pct})

	if e.st.TimeRemaining <= 0 {
		e.timerRunning = false
		e.accepting = false
		e.emit(TimeoutEvent{CorrectAnswer: e.current.CorrectAnswer()})
		e.fail()
	}
}

// SubmitAnswer grades the player's answer against the active challenge.
// Ignored when there is no active challenge, the game is not playing, the
// game is paused, or the challenge was already graded. Pause suspends
// answer acceptance along with the countdown.
func (e *Engine) SubmitAnswer(answer challenge.Answer) {
	if !e.st.IsPlaying || e.st.IsPaused || e.current == nil || !e.accepting {
		return
	}

	// Stop the countdown before grading so a tick and a submission can
	// never both apply to this challenge.
	e.timerRunning = false
	e.accepting = false

	if e.current.Check(answer) {
		e.succeed()
	} else {
		e.fail()
	}
}

// EndGame finalizes the game: stops everything, hands aggregates to the
// stats recorder, and emits the single game-over event. Idempotent; a
// no-op when not playing.
func (e *Engine) EndGame() {
	if !e.st.IsPlaying {
		return
	}

	e.st.IsPlaying = false
	e.st.IsPaused = false
	e.timerRunning = false
	e.accepting = false
	e.pending = pendingNone
	if e.current != nil {
		e.current.Cleanup()
		e.current = nil
	}

	duration := time.Since(e.st.StartTime)

	accuracy := 0
	if e.st.TotalChallenges > 0 {
		accuracy = int(math.Round(float64(e.st.CorrectAnswers) / float64(e.st.TotalChallenges) * 100))
	}

	var result Result
	if e.recorder != nil {
		summary := Summary{
			Score:           e.st.Score,
			CorrectAnswers:  e.st.CorrectAnswers,
			WrongAnswers:    e.st.WrongAnswers,
			TotalChallenges: e.st.TotalChallenges,
			Duration:        duration,
			Categories:      e.State().CategoryStats,
		}
		res, err := e.recorder.RecordGame(summary)
		if err != nil {
			e.log.Error("recording game stats failed", "err", err)
		} else {
			result = res
		}
	}

	e.emit(GameOverEvent{
		Score:    e.st.Score,
		Accuracy: accuracy,
		Duration: duration,
		Result:   result,
	})
}

// nextChallenge runs the acquire/configure/instantiate/announce steps of
// the per-challenge cycle.
func (e *Engine) nextChallenge() {
	if e.st.Lives <= 0 {
		e.EndGame()
		return
	}

	if e.current != nil {
		e.current.Cleanup()
		e.current = nil
	}
	e.timerRunning = false

	rec, err := e.reg.RandomChallenge(e.st.Difficulty)
	if err != nil {
		// A content gap, not a player-facing condition: fail closed into
		// a graceful game over instead of surfacing an error.
		e.log.Error("challenge acquisition failed", "difficulty", e.st.Difficulty, "err", err)
		e.EndGame()
		return
	}

	budget := difficulty.TimerFor(rec.Meta.BaseTime, e.st.Difficulty)
	e.st.BaseTime = budget
	e.st.TimeRemaining = budget

	inst := e.reg.New(rec, e.st.Difficulty)
	e.st.TotalChallenges++
	e.current = inst
	e.activeCat = rec.Category

	e.elapsed = 0
	e.grace = e.cfg.GraceDelay
	e.accepting = true
	if e.grace <= 0 {
		e.timerRunning = true
	}

	e.emit(ChallengeReadyEvent{Instance: inst, Difficulty: e.st.Difficulty, TimeLimit: budget})
}

// succeed applies the correct-answer transition.
func (e *Engine) succeed() {
	cs := e.st.CategoryStats[e.activeCat]
	cs.Attempts++
	cs.Correct++
	e.st.CategoryStats[e.activeCat] = cs

	e.st.Score++
	e.st.CorrectAnswers++
	e.st.WinStreak++
	e.st.Difficulty++

	if e.st.WinStreak >= e.cfg.StreakTarget {
		if e.st.Lives < e.st.MaxLives {
			e.st.Lives++
			e.emit(LifeGainedEvent{Lives: e.st.Lives})
		}
		// The streak bonus is consumed even at full health.
		e.st.WinStreak = 0
	}

	e.emit(AnswerCorrectEvent{
		Score:      e.st.Score,
		Difficulty: e.st.Difficulty,
		Streak:     e.st.WinStreak,
		Lives:      e.st.Lives,
	})

	e.schedule(pendingNext, e.cfg.CorrectDelay)
}

// fail applies the wrong-answer transition, shared by explicit wrong
// submissions and timeouts.
func (e *Engine) fail() {
	cs := e.st.CategoryStats[e.activeCat]
	cs.Attempts++
	e.st.CategoryStats[e.activeCat] = cs

	e.st.WrongAnswers++
	e.st.WinStreak = 0
	e.st.Lives--
	if e.st.Lives < 0 {
		e.st.Lives = 0
	}

	var correct challenge.Answer
	if e.current != nil {
		correct = e.current.CorrectAnswer()
	}
	e.emit(AnswerWrongEvent{Lives: e.st.Lives, CorrectAnswer: correct})

	// The two outcomes are mutually exclusive: losing the last life
	// schedules only the end transition, never the next challenge.
	if e.st.Lives <= 0 {
		e.schedule(pendingEnd, e.cfg.GameOverDelay)
	} else {
		e.schedule(pendingNext, e.cfg.WrongDelay)
	}
}

func (e *Engine) schedule(kind pendingKind, in time.Duration) {
	e.pending = kind
	e.pendingIn = in
}
