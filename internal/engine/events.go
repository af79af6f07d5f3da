package engine

import (
	"time"

	"github.com/vovakirdan/tui-braintrain/internal/challenge"
)

// Event is a lifecycle notification emitted by the engine. Delivery is
// synchronous with respect to the emitting call, and subscribers are
// invoked in subscription order.
type Event interface {
	engineEvent()
}

// GameStartedEvent is emitted once per StartGame, after state is reset.
type GameStartedEvent struct {
	Lives      int
	Difficulty int
}

func (GameStartedEvent) engineEvent() {}

// ChallengeReadyEvent announces a newly instantiated challenge. The
// presentation layer renders the instance; the countdown starts after the
// configured grace delay (zero by default).
type ChallengeReadyEvent struct {
	Instance   challenge.Instance
	Difficulty int
	TimeLimit  time.Duration
}

func (ChallengeReadyEvent) engineEvent() {}

// TimerTickEvent is emitted on every countdown tick.
type TimerTickEvent struct {
	Remaining time.Duration
	Total     time.Duration
	Percent   float64 // Fraction of the budget remaining, in [0, 1]
}

func (TimerTickEvent) engineEvent() {}

// AnswerCorrectEvent carries the state after a correct answer was applied.
type AnswerCorrectEvent struct {
	Score      int
	Difficulty int
	Streak     int
	Lives      int
}

func (AnswerCorrectEvent) engineEvent() {}

// AnswerWrongEvent carries the state after a wrong answer or timeout.
// CorrectAnswer is included so the presentation can reveal it.
type AnswerWrongEvent struct {
	Lives         int
	CorrectAnswer challenge.Answer
}

func (AnswerWrongEvent) engineEvent() {}

// TimeoutEvent is emitted when the countdown expires, immediately before
// the AnswerWrongEvent for the same challenge.
type TimeoutEvent struct {
	CorrectAnswer challenge.Answer
}

func (TimeoutEvent) engineEvent() {}

// LifeGainedEvent is emitted when a streak of correct answers grants a life.
type LifeGainedEvent struct {
	Lives int
}

func (LifeGainedEvent) engineEvent() {}

// GamePausedEvent is emitted when the countdown is frozen.
type GamePausedEvent struct{}

func (GamePausedEvent) engineEvent() {}

// GameResumedEvent is emitted when the countdown restarts from where it
// was frozen.
type GameResumedEvent struct{}

func (GameResumedEvent) engineEvent() {}

// GameOverEvent is emitted exactly once per game, after final aggregates
// were handed to the stats recorder.
type GameOverEvent struct {
	Score    int
	Accuracy int // Percent of challenges answered correctly, rounded
	Duration time.Duration
	Result   Result
}

func (GameOverEvent) engineEvent() {}

type subscriber struct {
	id int
	fn func(Event)
}

// Subscribe registers a listener for all engine events and returns a token
// for Unsubscribe. Listeners are called synchronously, in subscription
// order, and filter by type.
func (e *Engine) Subscribe(fn func(Event)) int {
	e.nextSub++
	e.subs = append(e.subs, subscriber{id: e.nextSub, fn: fn})
	return e.nextSub
}

// Unsubscribe removes a previously registered listener. Unknown tokens are
// ignored.
func (e *Engine) Unsubscribe(token int) {
	for i, s := range e.subs {
		if s.id == token {
			e.subs = append(e.subs[:i], e.subs[i+1:]...)
			return
		}
	}
}

func (e *Engine) emit(ev Event) {
	for _, s := range e.subs {
		s.fn(ev)
	}
}
