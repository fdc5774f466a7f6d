package exercise

import (
	"errors"
	"fmt"
	"time"

	"officerdrill/internal/notify"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

var (
	ErrUnknownCard = errors.New("unknown card")
	ErrUnknownZone = errors.New("unknown zone")
)

// Default toast durations.
const (
	DefaultResetDuration  = 2 * time.Second
	DefaultResultDuration = 6 * time.Second
)

// Controller owns one exercise session: which zone each card was dropped
// into and whether the answers have been checked. Everything shown on screen
// is derived from those two pieces of state on demand.
//
// A Controller is driven from a single event loop and is not safe for
// concurrent use.
type Controller struct {
	catalog  *Catalog
	notifier notify.Notifier
	log      *zap.Logger

	sessionID      string
	resetDuration  time.Duration
	resultDuration time.Duration

	// order keeps placement insertion order; placements is the lookup.
	order      []int
	placements map[int]string
	checked    bool
}

// Option configures a Controller.
type Option func(*Controller)

// WithLogger sets the controller's logger.
func WithLogger(log *zap.Logger) Option {
	return func(c *Controller) {
		if log != nil {
			c.log = log
		}
	}
}

// WithDurations overrides how long reset and result toasts stay visible.
// Non-positive values keep the defaults.
func WithDurations(reset, result time.Duration) Option {
	return func(c *Controller) {
		if reset > 0 {
			c.resetDuration = reset
		}
		if result > 0 {
			c.resultDuration = result
		}
	}
}

// WithSessionID fixes the session id used in log lines.
func WithSessionID(id string) Option {
	return func(c *Controller) {
		if id != "" {
			c.sessionID = id
		}
	}
}

// NewController starts an empty session over cat. A nil notifier discards
// notifications.
func NewController(cat *Catalog, n notify.Notifier, opts ...Option) *Controller {
	if n == nil {
		n = notify.Discard
	}
	c := &Controller{
		catalog:        cat,
		notifier:       n,
		log:            zap.NewNop(),
		sessionID:      uuid.NewString(),
		resetDuration:  DefaultResetDuration,
		resultDuration: DefaultResultDuration,
		placements:     make(map[int]string),
	}
	for _, opt := range opts {
		opt(c)
	}
	c.log = c.log.With(zap.String("session", c.sessionID))
	c.log.Info("exercise session started",
		zap.String("title", cat.Title),
		zap.Int("cards", cat.TotalCards()))
	return c
}

// Catalog returns the exercise content.
func (c *Controller) Catalog() *Catalog { return c.catalog }

// SessionID identifies this session in logs.
func (c *Controller) SessionID() string { return c.sessionID }

// Place assigns cardID to zoneID, overwriting any earlier assignment, and
// clears the checked state. Unknown ids leave the session untouched.
func (c *Controller) Place(cardID int, zoneID string) error {
	if _, ok := c.catalog.Card(cardID); !ok {
		return fmt.Errorf("place card %d: %w", cardID, ErrUnknownCard)
	}
	if _, ok := c.catalog.Zone(zoneID); !ok {
		return fmt.Errorf("place card %d in %q: %w", cardID, zoneID, ErrUnknownZone)
	}

	c.checked = false
	if _, placed := c.placements[cardID]; !placed {
		c.order = append(c.order, cardID)
	}
	c.placements[cardID] = zoneID
	c.log.Debug("card placed", zap.Int("card", cardID), zap.String("zone", zoneID))
	return nil
}

// Remove returns cardID to the unplaced pile and clears the checked state.
// Removing a card that is not placed is a no-op.
func (c *Controller) Remove(cardID int) {
	c.checked = false
	if _, placed := c.placements[cardID]; !placed {
		return
	}
	delete(c.placements, cardID)
	for i, id := range c.order {
		if id == cardID {
			c.order = append(c.order[:i], c.order[i+1:]...)
			break
		}
	}
	c.log.Debug("card removed", zap.Int("card", cardID))
}

// Reset returns every card to the unplaced pile and announces it.
func (c *Controller) Reset() {
	c.order = nil
	c.placements = make(map[int]string)
	c.checked = false
	c.log.Info("exercise reset")
	c.notifier.Notify(notify.Notification{
		Severity:    notify.SeverityInfo,
		Title:       "Reset",
		Description: "All cards have been returned.",
		Duration:    c.resetDuration,
	})
}

// CheckAnswers switches into checked mode, scores the placements and
// announces the outcome. It does not require the completion gate to hold;
// callers decide whether to offer it.
func (c *Controller) CheckAnswers() Result {
	c.checked = true
	res := c.Score()
	c.log.Info("answers checked",
		zap.Int("correct", res.Correct),
		zap.Int("total", res.Total),
		zap.Bool("gate", c.CanCheckAnswers()))
	c.notifier.Notify(res.notification(c.resultDuration))
	return res
}

// Checked reports whether answers are currently being shown.
func (c *Controller) Checked() bool { return c.checked }

// Score counts correctly placed cards without changing any state.
func (c *Controller) Score() Result {
	res := Result{Total: c.catalog.TotalCards()}
	for _, id := range c.order {
		if c.IsCorrect(id) {
			res.Correct++
		}
	}
	return res
}

// ZoneOf returns the zone cardID is placed in.
func (c *Controller) ZoneOf(cardID int) (string, bool) {
	zone, ok := c.placements[cardID]
	return zone, ok
}

// IsCorrect reports whether cardID is placed in its catalog zone.
func (c *Controller) IsCorrect(cardID int) bool {
	card, ok := c.catalog.Card(cardID)
	if !ok {
		return false
	}
	zone, placed := c.placements[cardID]
	return placed && zone == card.CorrectZone
}

// Placement is one card-to-zone assignment.
type Placement struct {
	CardID int
	ZoneID string
}

// Placements returns the current assignments in the order cards were first
// placed.
func (c *Controller) Placements() []Placement {
	out := make([]Placement, 0, len(c.order))
	for _, id := range c.order {
		out = append(out, Placement{CardID: id, ZoneID: c.placements[id]})
	}
	return out
}

// UnplacedCards returns the cards not in any zone, in catalog order.
func (c *Controller) UnplacedCards() []ScenarioCard {
	var out []ScenarioCard
	for _, card := range c.catalog.Cards {
		if _, placed := c.placements[card.ID]; !placed {
			out = append(out, card)
		}
	}
	return out
}

// CardsInZone returns the cards placed in zoneID, in placement order.
func (c *Controller) CardsInZone(zoneID string) []ScenarioCard {
	var out []ScenarioCard
	for _, id := range c.order {
		if c.placements[id] != zoneID {
			continue
		}
		if card, ok := c.catalog.Card(id); ok {
			out = append(out, card)
		}
	}
	return out
}

// CardsPerZone counts placed cards for every catalog zone.
func (c *Controller) CardsPerZone() map[string]int {
	counts := make(map[string]int, len(c.catalog.Zones))
	for _, z := range c.catalog.Zones {
		counts[z.ID] = 0
	}
	for _, zone := range c.placements {
		counts[zone]++
	}
	return counts
}

// CanCheckAnswers is the completion gate: every zone holds exactly its
// number of slots.
func (c *Controller) CanCheckAnswers() bool {
	counts := c.CardsPerZone()
	for _, z := range c.catalog.Zones {
		if counts[z.ID] != c.catalog.SlotsPerZone {
			return false
		}
	}
	return true
}
