package core

// RuntimeConfig contains configuration passed to games at initialization.
// Games use this to adapt to screen size and for deterministic simulation.
type RuntimeConfig struct {
	ScreenW  int    // Screen width in characters
	ScreenH  int    // Screen height in characters
	TickRate int    // Simulation ticks per second (default 60)
	Seed     int64  // RNG seed for deterministic gameplay
	Variant  string // Game-specific variant key (difficulty preset)
	Lang     string // BCP 47 language tag for UI text

	ConfigPath string // Custom game config file, empty for the search path

	// Bonus consumables granted on top of the game's starting charges,
	// usually claimed from the player's progress record.
	Bonus Consumables
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
		Lang:     "en",
	}
}

// Consumables counts single-use power-ups.
type Consumables struct {
	Hints    int `yaml:"hints"`
	Shuffles int `yaml:"shuffles"`
	Bombs    int `yaml:"bombs"`
	Freezes  int `yaml:"freezes"`
}

// Add returns the element-wise sum of two consumable sets.
func (c Consumables) Add(o Consumables) Consumables {
	return Consumables{
		Hints:    c.Hints + o.Hints,
		Shuffles: c.Shuffles + o.Shuffles,
		Bombs:    c.Bombs + o.Bombs,
		Freezes:  c.Freezes + o.Freezes,
	}
}

// Sub returns the element-wise difference of two consumable sets.
func (c Consumables) Sub(o Consumables) Consumables {
	return Consumables{
		Hints:    c.Hints - o.Hints,
		Shuffles: c.Shuffles - o.Shuffles,
		Bombs:    c.Bombs - o.Bombs,
		Freezes:  c.Freezes - o.Freezes,
	}
}

// Mask keeps only the kinds that are positive in accept.
func (c Consumables) Mask(accept Consumables) Consumables {
	keep := func(v, a int) int {
		if a > 0 {
			return v
		}
		return 0
	}
	return Consumables{
		Hints:    keep(c.Hints, accept.Hints),
		Shuffles: keep(c.Shuffles, accept.Shuffles),
		Bombs:    keep(c.Bombs, accept.Bombs),
		Freezes:  keep(c.Freezes, accept.Freezes),
	}
}

// Min returns the element-wise minimum of two consumable sets.
func (c Consumables) Min(o Consumables) Consumables {
	return Consumables{
		Hints:    min(c.Hints, o.Hints),
		Shuffles: min(c.Shuffles, o.Shuffles),
		Bombs:    min(c.Bombs, o.Bombs),
		Freezes:  min(c.Freezes, o.Freezes),
	}
}

// Max returns the element-wise maximum of two consumable sets.
func (c Consumables) Max(o Consumables) Consumables {
	return Consumables{
		Hints:    max(c.Hints, o.Hints),
		Shuffles: max(c.Shuffles, o.Shuffles),
		Bombs:    max(c.Bombs, o.Bombs),
		Freezes:  max(c.Freezes, o.Freezes),
	}
}

// IsZero reports whether no consumable is held.
func (c Consumables) IsZero() bool {
	return c == Consumables{}
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Score    int  // Current score
	Moves    int  // Successful matches this session
	Coins    int  // Currency earned this session
	GameOver bool // Whether the game has ended
	Paused   bool // Whether the game is paused

	// Charges are the power-ups the session has left.
	Charges Consumables
}

// StepResult is returned by Game.Step() after each simulation tick.
type StepResult struct {
	State GameState
}
