package tui

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-braintrain/internal/challenge"
	"github.com/vovakirdan/tui-braintrain/internal/engine"
)

// Options configures the presentation layer.
type Options struct {
	// TickInterval is how often the engine is advanced (default 100ms).
	TickInterval time.Duration

	// Width and Height are the initial terminal dimensions.
	Width  int
	Height int
}

// eventBuffer collects engine events between frames. It lives behind a
// pointer so the Bubble Tea value-copied model and the engine subscription
// share it.
type eventBuffer struct {
	events []engine.Event
}

// Model is the Bubble Tea model for a brain-training session.
type Model struct {
	eng  *engine.Engine
	buf  *eventBuffer
	tick time.Duration

	input textinput.Model
	timer progress.Model

	width  int
	height int

	// View state folded from engine events.
	view      challenge.View
	title     string
	category  string
	remaining time.Duration
	total     time.Duration
	pct       float64
	choiceIdx int
	feedback  string
	reveal    string
	paused    bool
	over      *engine.GameOverEvent
	quitting  bool
}

// NewModel creates the session model and subscribes it to engine events.
func NewModel(eng *engine.Engine, opts Options) Model {
	if opts.TickInterval <= 0 {
		opts.TickInterval = 100 * time.Millisecond
	}
	if opts.Width <= 0 {
		opts.Width = 80
	}
	if opts.Height <= 0 {
		opts.Height = 24
	}

	ti := textinput.New()
	ti.Placeholder = "your answer"
	ti.CharLimit = 64
	ti.Width = 30
	ti.Focus()

	bar := progress.New(progress.WithDefaultGradient(), progress.WithoutPercentage())
	bar.Width = 40

	buf := &eventBuffer{}
	eng.Subscribe(func(ev engine.Event) {
		buf.events = append(buf.events, ev)
	})

	return Model{
		eng:    eng,
		buf:    buf,
		tick:   opts.TickInterval,
		input:  ti,
		timer:  bar,
		width:  opts.Width,
		height: opts.Height,
	}
}

// Init starts the game and the tick loop.
func (m Model) Init() tea.Cmd {
	m.eng.StartGame()
	return tickCmd(m.tick)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		if w := msg.Width - 20; w > 10 && w < 60 {
			m.timer.Width = w
		}
		return m, nil

	case TickMsg:
		m.eng.Advance(m.tick)
		m = m.drain()
		if cur := m.eng.Current(); cur != nil && m.over == nil {
			m.view = cur.Render(m.eng.Elapsed())
		}
		return m, tickCmd(m.tick)
	}

	return m, nil
}

// handleKey maps keys to engine mutations. The quit and pause keys shift
// depending on whether the player is typing a free-form answer.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()

	if key == "ctrl+c" {
		m.eng.EndGame()
		m.quitting = true
		return m, tea.Quit
	}

	if m.over != nil {
		switch key {
		case "r":
			m.over = nil
			m.feedback = ""
			m.reveal = ""
			m.view = challenge.View{}
			m.eng.StartGame()
			m = m.drain()
			return m, nil
		case "q", "enter", "esc":
			m.quitting = true
			return m, tea.Quit
		}
		return m, nil
	}

	if m.paused {
		switch key {
		case "esc", "p":
			m.eng.ResumeGame()
			m = m.drain()
		case "q":
			m.eng.EndGame()
			m = m.drain()
		}
		return m, nil
	}

	typing := m.view.Input != challenge.InputChoice && m.view.AcceptInput

	switch key {
	case "esc":
		m.eng.PauseGame()
		m = m.drain()
		return m, nil
	case "q", "p":
		if !typing {
			if key == "p" {
				m.eng.PauseGame()
				m = m.drain()
				return m, nil
			}
			m.eng.EndGame()
			m = m.drain()
			return m, nil
		}
	}

	if m.view.Input == challenge.InputChoice && m.view.AcceptInput {
		return m.handleChoiceKey(key)
	}

	if typing {
		if key == "enter" {
			m.eng.SubmitAnswer(m.input.Value())
			m.input.Reset()
			m = m.drain()
			return m, nil
		}
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}

	return m, nil
}

// handleChoiceKey navigates and submits pick-one answers.
func (m Model) handleChoiceKey(key string) (tea.Model, tea.Cmd) {
	n := len(m.view.Choices)
	if n == 0 {
		return m, nil
	}

	switch key {
	case "up", "k":
		m.choiceIdx = (m.choiceIdx - 1 + n) % n
	case "down", "j":
		m.choiceIdx = (m.choiceIdx + 1) % n
	case "enter", " ":
		m.eng.SubmitAnswer(m.view.Choices[m.choiceIdx])
		m = m.drain()
	default:
		// Digit keys submit the numbered choice directly.
		if idx, err := strconv.Atoi(key); err == nil && idx >= 1 && idx <= n {
			m.eng.SubmitAnswer(m.view.Choices[idx-1])
			m = m.drain()
		}
	}
	return m, nil
}

// drain folds buffered engine events into view state, in emission order.
func (m Model) drain() Model {
	for _, ev := range m.buf.events {
		switch e := ev.(type) {
		case engine.ChallengeReadyEvent:
			m.title = e.Instance.Title()
			m.category = e.Instance.Category().String()
			m.total = e.TimeLimit
			m.remaining = e.TimeLimit
			m.pct = 1
			m.feedback = ""
			m.reveal = ""
			m.choiceIdx = 0
			m.input.Reset()
		case engine.TimerTickEvent:
			m.remaining = e.Remaining
			m.total = e.Total
			m.pct = e.Percent
		case engine.AnswerCorrectEvent:
			m.feedback = correctStyle.Render("Correct!")
		case engine.TimeoutEvent:
			m.feedback = wrongStyle.Render("Time's up!")
		case engine.AnswerWrongEvent:
			if m.feedback == "" {
				m.feedback = wrongStyle.Render("Wrong!")
			}
			m.reveal = revealStyle.Render("Answer: " + formatAnswer(e.CorrectAnswer))
		case engine.LifeGainedEvent:
			m.feedback += correctStyle.Render("  +1 life")
		case engine.GamePausedEvent:
			m.paused = true
		case engine.GameResumedEvent:
			m.paused = false
		case engine.GameOverEvent:
			cp := e
			m.over = &cp
		}
	}
	m.buf.events = m.buf.events[:0]
	return m
}

// formatAnswer renders a stored answer for the on-screen reveal.
func formatAnswer(a challenge.Answer) string {
	switch v := a.(type) {
	case nil:
		return "-"
	case bool:
		if v {
			return "True"
		}
		return "False"
	case []int:
		parts := make([]string, len(v))
		for i, n := range v {
			parts[i] = strconv.Itoa(n)
		}
		return strings.Join(parts, " ")
	case float64:
		return strconv.FormatFloat(v, 'g', -1, 64)
	default:
		return fmt.Sprint(v)
	}
}

// View renders the session.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if m.over != nil {
		return m.gameOverView()
	}

	st := m.eng.State()

	hearts := strings.Repeat("♥ ", st.Lives) + strings.Repeat("♡ ", st.MaxLives-st.Lives)
	header := lipgloss.JoinHorizontal(lipgloss.Top,
		livesStyle.Render(hearts),
		statStyle.Render(fmt.Sprintf("   score %d   level %d   streak %d",
			st.Score, st.Difficulty, st.WinStreak)),
	)

	timerLine := fmt.Sprintf("%s  %4.1fs", m.timer.ViewAs(m.pct), m.remaining.Seconds())

	var body strings.Builder
	body.WriteString(titleStyle.Render(m.title))
	body.WriteString("  ")
	body.WriteString(categoryStyle.Render(m.category))
	body.WriteString("\n\n")
	body.WriteString(promptStyle.Render(m.view.Prompt))
	body.WriteString("\n\n")

	switch {
	case !m.view.AcceptInput && m.view.Prompt != "":
		body.WriteString(helpStyle.Render("memorize..."))
	case m.view.Input == challenge.InputChoice:
		for i, c := range m.view.Choices {
			line := fmt.Sprintf("%d. %s", i+1, c)
			if i == m.choiceIdx {
				body.WriteString(selectedChoiceStyle.Render("> " + line))
			} else {
				body.WriteString(choiceStyle.Render(line))
			}
			body.WriteString("\n")
		}
	default:
		body.WriteString(m.input.View())
	}

	body.WriteString("\n\n")
	if m.feedback != "" {
		body.WriteString(m.feedback)
		body.WriteString("\n")
	}
	if m.reveal != "" {
		body.WriteString(m.reveal)
		body.WriteString("\n")
	}

	if m.paused {
		body.WriteString("\n")
		body.WriteString(headerStyle.Render("PAUSED"))
		body.WriteString(helpStyle.Render("  esc/p resume  q end game"))
	} else {
		body.WriteString("\n")
		body.WriteString(helpStyle.Render("enter submit  esc pause  ctrl+c quit"))
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		headerStyle.Render("Brain Train"),
		header,
		timerLine,
		"",
		body.String(),
	)
}

// gameOverView renders the final screen with the persisted aggregates.
func (m Model) gameOverView() string {
	e := m.over

	var sb strings.Builder
	sb.WriteString(headerStyle.Render("GAME OVER"))
	sb.WriteString("\n\n")
	fmt.Fprintf(&sb, "Score      %d\n", e.Score)
	fmt.Fprintf(&sb, "Accuracy   %d%%\n", e.Accuracy)
	fmt.Fprintf(&sb, "Duration   %s\n", e.Duration.Round(time.Second))
	if e.Result.Rank != "" {
		fmt.Fprintf(&sb, "Rank       %s\n", e.Result.Rank)
		fmt.Fprintf(&sb, "Best       %d\n", e.Result.HighScore)
		if e.Result.NewHighScore {
			sb.WriteString(correctStyle.Render("\nNew high score!"))
			sb.WriteString("\n")
		}
	}
	sb.WriteString("\n")
	sb.WriteString(helpStyle.Render("r play again  q quit"))

	return gameOverStyle.Render(sb.String())
}

// Run starts the Bubble Tea program for the given engine.
func Run(eng *engine.Engine, opts Options) error {
	p := tea.NewProgram(
		NewModel(eng, opts),
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
