// Package lemonade holds the lemonade-making cycle: the current stage, the
// squeeze counter and the randomized squeeze target.
package lemonade

import (
	"fmt"
	"math/rand/v2"
	"strings"
)

// Stage is one phase of the lemonade-making cycle.
type Stage int

const (
	StageTree Stage = iota
	StageLemon
	StageDrink
	StageEmpty
)

// Bounds of the squeeze target, inclusive.
const (
	MinTaps = 2
	MaxTaps = 4
)

var stageNames = [...]string{
	StageTree:  "TREE",
	StageLemon: "LEMON",
	StageDrink: "DRINK",
	StageEmpty: "EMPTY",
}

func (s Stage) String() string {
	if !s.Valid() {
		return fmt.Sprintf("Stage(%d)", int(s))
	}
	return stageNames[s]
}

// Valid reports whether s is one of the four defined stages.
func (s Stage) Valid() bool {
	return s >= StageTree && s <= StageEmpty
}

// ParseStage accepts a stage name in any case ("tree", "LEMON", ...).
func ParseStage(name string) (Stage, error) {
	want := strings.ToUpper(strings.TrimSpace(name))
	for i, n := range stageNames {
		if n == want {
			return Stage(i), nil
		}
	}
	return StageTree, fmt.Errorf("unknown stage %q (want tree, lemon, drink or empty)", name)
}

// Rand is the randomness source used to draw the squeeze target.
// *rand.Rand from math/rand/v2 satisfies it.
type Rand interface {
	IntN(n int) int
}

type systemRand struct{}

func (systemRand) IntN(n int) int { return rand.IntN(n) }

// SystemRand returns the process-wide default source.
func SystemRand() Rand { return systemRand{} }

// SeededRand returns a reproducible source. A zero seed falls back to
// SystemRand.
func SeededRand(seed uint64) Rand {
	if seed == 0 {
		return SystemRand()
	}
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// DrawRequiredTaps draws uniformly from [MinTaps, MaxTaps].
func DrawRequiredTaps(r Rand) int {
	return MinTaps + r.IntN(MaxTaps-MinTaps+1)
}

// State is the whole screen state. It is a value: Advance returns the next
// state and leaves the receiver untouched.
type State struct {
	Stage        Stage
	TapCount     int
	RequiredTaps int
}

// New returns the state shown when the screen is first composed.
func New(r Rand) State {
	return State{
		Stage:        StageTree,
		RequiredTaps: DrawRequiredTaps(r),
	}
}

// Advance applies one tap. It never fails.
func (s State) Advance(r Rand) State {
	switch s.Stage {
	case StageTree:
		s.Stage = StageLemon
	case StageLemon:
		s.TapCount++
		if s.TapCount >= s.RequiredTaps {
			s.Stage = StageDrink
		}
	case StageDrink:
		s.Stage = StageEmpty
	case StageEmpty:
		s.Stage = StageTree
		s.TapCount = 0
		s.RequiredTaps = DrawRequiredTaps(r)
	default:
		// Unreachable through Advance; recover to the start of the cycle.
		s = New(r)
	}
	return s
}

// Remaining is the number of squeezes left before the lemonade is ready.
func (s State) Remaining() int {
	if n := s.RequiredTaps - s.TapCount; n > 0 {
		return n
	}
	return 0
}
