package layout

import (
	"errors"
	"fmt"
)

// Default random-walk parameters.
const (
	DefaultWalkers  = 1
	DefaultLifetime = 50
)

// Slice carving constants.
const (
	sliceLines = 3 // rows and columns carved per axis
	sliceInset = 3 // random lines stay this far from each border
	sliceSlack = 3 // spans leave up to this many cells open at each end
)

// ErrInvalidStrategy is returned for strategies with unusable parameters.
var ErrInvalidStrategy = errors.New("layout: invalid carve strategy")

// Strategy selects how a carving pass lays out hallways.
// The set of strategies is closed: RandomWalk and SliceCarve.
type Strategy interface {
	// Name returns a short identifier, e.g. "random-walk".
	Name() string
	// Validate reports whether the strategy can run.
	Validate() error

	isStrategy()
}

// RandomWalk carves with Walkers agents that each take Lifetime steps from
// the grid centre. Cells visited more than once become intersections.
type RandomWalk struct {
	Walkers  int
	Lifetime int
}

// Name implements Strategy.
func (RandomWalk) Name() string { return "random-walk" }

// Validate implements Strategy.
func (s RandomWalk) Validate() error {
	if s.Walkers < 1 {
		return fmt.Errorf("%w: need at least one walker, got %d", ErrInvalidStrategy, s.Walkers)
	}
	if s.Lifetime < 0 {
		return fmt.Errorf("%w: negative walker lifetime %d", ErrInvalidStrategy, s.Lifetime)
	}
	return nil
}

func (RandomWalk) isStrategy() {}

// SliceCarve carves three partial rows and three partial columns.
// The middle row H/2 is always carved.
type SliceCarve struct{}

// Name implements Strategy.
func (SliceCarve) Name() string { return "slice" }

// Validate implements Strategy.
func (SliceCarve) Validate() error { return nil }

func (SliceCarve) isStrategy() {}

// DefaultStrategy returns a single-walker random walk of 50 steps.
func DefaultStrategy() Strategy {
	return RandomWalk{Walkers: DefaultWalkers, Lifetime: DefaultLifetime}
}

// ParseStrategy builds a strategy from its name.
// The walker parameters are ignored for "slice".
func ParseStrategy(name string, walkers, lifetime int) (Strategy, error) {
	switch name {
	case "random-walk", "walk", "":
		return RandomWalk{Walkers: walkers, Lifetime: lifetime}, nil
	case "slice", "slice-carve":
		return SliceCarve{}, nil
	default:
		return nil, fmt.Errorf("%w: unknown strategy %q", ErrInvalidStrategy, name)
	}
}

// Carve runs one carving pass over g. It expects a freshly reset grid and
// does not classify the result.
func Carve(g *Grid, s Strategy, rng Source) error {
	if s == nil {
		return fmt.Errorf("%w: nil strategy", ErrInvalidStrategy)
	}
	if err := s.Validate(); err != nil {
		return err
	}

	switch s := s.(type) {
	case RandomWalk:
		return carveRandomWalk(g, s, rng)
	case SliceCarve:
		return carveSlices(g, rng)
	default:
		return fmt.Errorf("%w: unsupported strategy %T", ErrInvalidStrategy, s)
	}
}

// carveRandomWalk spawns every walker on the centre cell, upgrading it once
// per walker, then moves all walkers once per tick in spawn order.
func carveRandomWalk(g *Grid, s RandomWalk, rng Source) error {
	start := g.Center()
	walkers := make([]*Walker, 0, s.Walkers)
	for i := 0; i < s.Walkers; i++ {
		walkers = append(walkers, NewWalker(start, g))
		if err := g.Upgrade(start); err != nil {
			return err
		}
	}

	for tick := 0; tick < s.Lifetime; tick++ {
		for _, w := range walkers {
			if err := g.Upgrade(w.Move(rng)); err != nil {
				return err
			}
		}
	}
	return nil
}

// carveSlices picks the target rows and columns, then carves a randomized
// span along each of them. Rows are all drawn before columns.
func carveSlices(g *Grid, rng Source) error {
	rows := [sliceLines]int{g.H / 2}
	for i := 1; i < sliceLines; i++ {
		rows[i] = insetLine(g.H, rng)
	}
	var cols [sliceLines]int
	for i := range cols {
		cols[i] = insetLine(g.W, rng)
	}

	for _, y := range rows {
		start, end := span(g.W, rng)
		for x := start; x <= end; x++ {
			if err := g.Upgrade(C(x, y)); err != nil {
				return err
			}
		}
	}
	for _, x := range cols {
		start, end := span(g.H, rng)
		for y := start; y <= end; y++ {
			if err := g.Upgrade(C(x, y)); err != nil {
				return err
			}
		}
	}
	return nil
}

// insetLine returns a random index in [sliceInset, n-sliceInset), or the
// midpoint when the axis is too short for the inset.
func insetLine(n int, rng Source) int {
	room := n - 2*sliceInset
	if room <= 0 {
		return n / 2
	}
	return sliceInset + rng.Intn(room)
}

// span returns the inclusive [start, end] of a near-full-length line on an
// axis of length n, leaving a random margin of under sliceSlack at each end.
func span(n int, rng Source) (start, end int) {
	slack := min(sliceSlack, n/2)
	if slack <= 0 {
		return 0, n - 1
	}
	start = rng.Intn(slack)
	end = n - 1 - rng.Intn(slack)
	return start, end
}
