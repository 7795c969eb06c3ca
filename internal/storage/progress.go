package storage

import (
	"database/sql"
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/numbermatch/internal/core"
)

var (
	// ErrInsufficientCoins is returned when a purchase costs more than the
	// player owns.
	ErrInsufficientCoins = errors.New("storage: not enough coins")

	// ErrUnknownItem is returned for purchases of items the shop lacks.
	ErrUnknownItem = errors.New("storage: unknown item")
)

// Progress is the per-game record kept between sessions. It is stored as a
// flat YAML document; unknown keys are ignored and missing keys default to
// zero.
type Progress struct {
	HighScore   int `yaml:"highScore"`
	TotalMoves  int `yaml:"totalMoves"`
	GamesPlayed int `yaml:"gamesPlayed"`
	Coins       int `yaml:"coins"`

	// Purchased power-ups waiting to be claimed by the next session.
	core.Consumables `yaml:",inline"`
}

// Session summarizes a finished game for RecordSession.
type Session struct {
	Score int
	Moves int
	Coins int
}

// DecodeProgress parses a stored record. Any parse failure yields the zero
// record, and negative counters are clamped to zero.
func DecodeProgress(data []byte) Progress {
	var p Progress
	if err := yaml.Unmarshal(data, &p); err != nil {
		return Progress{}
	}
	p.sanitize()
	return p
}

// Encode serializes the record.
func (p Progress) Encode() ([]byte, error) {
	return yaml.Marshal(p)
}

func (p *Progress) sanitize() {
	for _, v := range []*int{
		&p.HighScore, &p.TotalMoves, &p.GamesPlayed, &p.Coins,
		&p.Hints, &p.Shuffles, &p.Bombs, &p.Freezes,
	} {
		if *v < 0 {
			*v = 0
		}
	}
}

// querier is satisfied by *sql.DB and *sql.Tx.
type querier interface {
	QueryRow(query string, args ...any) *sql.Row
	Exec(query string, args ...any) (sql.Result, error)
}

// LoadProgress returns the progress record of a game. Missing or corrupt
// records read as the zero record; only database failures are errors.
func (s *Store) LoadProgress(key string) (Progress, error) {
	return loadProgress(s.db, key)
}

func loadProgress(q querier, key string) (Progress, error) {
	var data string
	err := q.QueryRow("SELECT data FROM progress WHERE progress_key = ?", key).Scan(&data)
	if errors.Is(err, sql.ErrNoRows) {
		return Progress{}, nil
	}
	if err != nil {
		return Progress{}, fmt.Errorf("storage: cannot query progress: %w", err)
	}
	return DecodeProgress([]byte(data)), nil
}

// SaveProgress replaces the progress record of a game.
func (s *Store) SaveProgress(key string, p Progress) error {
	return saveProgress(s.db, key, p)
}

func saveProgress(q querier, key string, p Progress) error {
	data, err := p.Encode()
	if err != nil {
		return fmt.Errorf("storage: cannot encode progress: %w", err)
	}
	_, err = q.Exec(
		`INSERT INTO progress (progress_key, data, updated_at) VALUES (?, ?, CURRENT_TIMESTAMP)
		 ON CONFLICT(progress_key) DO UPDATE SET data = excluded.data, updated_at = CURRENT_TIMESTAMP`,
		key, string(data),
	)
	if err != nil {
		return fmt.Errorf("storage: cannot save progress: %w", err)
	}
	return nil
}

// updateProgress runs fn on the stored record inside a transaction and
// saves the result unless fn fails.
func (s *Store) updateProgress(key string, fn func(*Progress) error) (Progress, error) {
	tx, err := s.db.Begin()
	if err != nil {
		return Progress{}, fmt.Errorf("storage: cannot begin transaction: %w", err)
	}
	defer tx.Rollback()

	p, err := loadProgress(tx, key)
	if err != nil {
		return Progress{}, err
	}
	if err := fn(&p); err != nil {
		return Progress{}, err
	}
	if err := saveProgress(tx, key, p); err != nil {
		return Progress{}, err
	}
	if err := tx.Commit(); err != nil {
		return Progress{}, fmt.Errorf("storage: cannot commit progress: %w", err)
	}
	return p, nil
}

// RecordSession folds a finished session into the progress record.
func (s *Store) RecordSession(key string, sess Session) (Progress, error) {
	return s.updateProgress(key, func(p *Progress) error {
		if sess.Score > p.HighScore {
			p.HighScore = sess.Score
		}
		p.TotalMoves += max(0, sess.Moves)
		p.Coins += max(0, sess.Coins)
		p.GamesPlayed++
		return nil
	})
}

// Purchase spends qty*price coins on an item: "hint", "shuffle", "bomb"
// or "freeze" (plural forms accepted).
func (s *Store) Purchase(key, item string, qty, price int) (Progress, error) {
	if qty < 1 {
		return Progress{}, fmt.Errorf("storage: invalid quantity %d", qty)
	}
	if price < 1 {
		return Progress{}, fmt.Errorf("storage: invalid price %d", price)
	}
	return s.updateProgress(key, func(p *Progress) error {
		slot := p.slot(item)
		if slot == nil {
			return fmt.Errorf("%w: %q", ErrUnknownItem, item)
		}
		// qty*price may overflow; compare through division first.
		if qty > p.Coins/price {
			return fmt.Errorf("%w: %d at %d each, have %d", ErrInsufficientCoins, qty, price, p.Coins)
		}
		p.Coins -= qty * price
		*slot += qty
		return nil
	})
}

// ReturnConsumables puts power-ups a session claimed but did not spend
// back into the record.
func (s *Store) ReturnConsumables(key string, c core.Consumables) error {
	c = c.Max(core.Consumables{})
	if c.IsZero() {
		return nil
	}
	_, err := s.updateProgress(key, func(p *Progress) error {
		p.Consumables = p.Consumables.Add(c)
		return nil
	})
	return err
}

// ClaimConsumables moves the purchased power-ups of the kinds marked in
// accept out of the record and returns them for use in a new session.
// Other kinds stay stored for a mode that can spend them.
func (s *Store) ClaimConsumables(key string, accept core.Consumables) (core.Consumables, error) {
	var claimed core.Consumables
	_, err := s.updateProgress(key, func(p *Progress) error {
		claimed = p.Consumables.Mask(accept)
		p.Consumables = p.Consumables.Sub(claimed)
		return nil
	})
	if err != nil {
		return core.Consumables{}, err
	}
	return claimed, nil
}

func (p *Progress) slot(item string) *int {
	switch item {
	case "hint", "hints":
		return &p.Hints
	case "shuffle", "shuffles":
		return &p.Shuffles
	case "bomb", "bombs":
		return &p.Bombs
	case "freeze", "freezes":
		return &p.Freezes
	default:
		return nil
	}
}
