package core

import "fmt"

// PausePolicy selects how pause tokens are earned.
type PausePolicy string

const (
	// PolicyFixedRatio grants one token per clear while fewer tokens are
	// held than Ratio divides into the words cleared.
	PolicyFixedRatio PausePolicy = "fixed_ratio"
	// PolicyEscalating grants a token at a threshold that grows by one more
	// word for each token granted.
	PolicyEscalating PausePolicy = "escalating"
)

// ProgressionConfig configures the pause-token economy.
type ProgressionConfig struct {
	Policy           PausePolicy
	Ratio            int
	InitialThreshold int
}

// DefaultProgressionConfig returns the fixed-ratio policy with ratio 5.
func DefaultProgressionConfig() ProgressionConfig {
	return ProgressionConfig{
		Policy:           PolicyFixedRatio,
		Ratio:            5,
		InitialThreshold: 5,
	}
}

// Validate checks the policy and its parameters.
func (c ProgressionConfig) Validate() error {
	switch c.Policy {
	case PolicyFixedRatio:
		if c.Ratio <= 0 {
			return fmt.Errorf("progression: ratio must be positive, got %d", c.Ratio)
		}
	case PolicyEscalating:
		if c.InitialThreshold <= 0 {
			return fmt.Errorf("progression: initial threshold must be positive, got %d", c.InitialThreshold)
		}
	default:
		return fmt.Errorf("progression: unknown pause policy %q", c.Policy)
	}
	return nil
}

// Progression tracks score, cleared words and pause tokens.
// Everything except PauseTokens only grows until Reset.
type Progression struct {
	cfg ProgressionConfig

	Score         int
	WordsCleared  int
	PauseTokens   int
	TokensGranted int
	Paused        bool
	NextThreshold int
}

// NewProgression creates a zeroed progression for cfg.
func NewProgression(cfg ProgressionConfig) *Progression {
	p := &Progression{cfg: cfg}
	p.Reset()
	return p
}

// Reset returns to the starting state.
func (p *Progression) Reset() {
	p.Score = 0
	p.WordsCleared = 0
	p.PauseTokens = 0
	p.TokensGranted = 0
	p.Paused = false
	p.NextThreshold = p.cfg.InitialThreshold
}

// Policy returns the active grant policy.
func (p *Progression) Policy() PausePolicy {
	return p.cfg.Policy
}

// Record adds a clear of words words worth score points and returns how many
// tokens it earned.
func (p *Progression) Record(words, score int) int {
	p.Score += score
	p.WordsCleared += words

	granted := 0
	switch p.cfg.Policy {
	case PolicyEscalating:
		for p.WordsCleared >= p.NextThreshold {
			p.grant()
			granted++
			p.NextThreshold += p.TokensGranted + 1
		}
	default:
		if p.WordsCleared/p.cfg.Ratio > p.PauseTokens {
			p.grant()
			granted++
		}
	}
	return granted
}

func (p *Progression) grant() {
	p.PauseTokens++
	p.TokensGranted++
}

// TogglePause pauses by spending a token, or resumes for free.
func (p *Progression) TogglePause() error {
	if p.Paused {
		p.Paused = false
		return nil
	}
	if p.PauseTokens <= 0 {
		return ErrNoPauseTokens
	}
	p.PauseTokens--
	p.Paused = true
	return nil
}
