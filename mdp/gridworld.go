package mdp

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

const (
	renderPrecision = 8
	// Values closer to zero than this render as zero.
	suppressBelow = 1e-8
)

var gridActions = []Action{Up, Down, Left, Right}

var (
	_ TransitionFunction = (*GridWorld)(nil)
	_ RewardFunction     = (*GridWorld)(nil)
	_ ActionSpace        = (*GridWorld)(nil)
)

// GridWorld is a size x size lattice with row-major state numbering. The
// bottom-right cell is the single absorbing terminal state.
type GridWorld struct {
	size    int
	nStates int
	gamma   float64
	theta   float64
	rewards []Reward
	values  []float64
}

// NewGridWorld returns a model with all values at zero, reward -1 on every
// state and 0 on the terminal one.
func NewGridWorld(size int) (*GridWorld, error) {
	if size < 1 {
		return nil, fmt.Errorf("grid size %d: %w", size, ErrInvalidConfiguration)
	}
	n := size * size
	rewards := make([]Reward, n)
	for s := range rewards {
		rewards[s] = -1
	}
	rewards[n-1] = 0
	return &GridWorld{
		size:    size,
		nStates: n,
		gamma:   DefaultGamma,
		theta:   DefaultTheta,
		rewards: rewards,
		values:  make([]float64, n),
	}, nil
}

// Size is the side length of the grid.
func (w *GridWorld) Size() int {
	return w.size
}

// NStates is Size squared.
func (w *GridWorld) NStates() int {
	return w.nStates
}

// Gamma is the discount factor, DefaultGamma for every grid.
func (w *GridWorld) Gamma() float64 {
	return w.gamma
}

// Theta is the convergence threshold, DefaultTheta for every grid.
func (w *GridWorld) Theta() float64 {
	return w.theta
}

// Terminal is the bottom-right cell, NStates()-1. Its value is never swept.
func (w *GridWorld) Terminal() State {
	return State(w.nStates - 1)
}

func (w *GridWorld) IsTerminal(s State) bool {
	return s == w.Terminal()
}

// Actions returns a fresh copy of the action set.
func (w *GridWorld) Actions() []Action {
	actions := make([]Action, len(gridActions))
	copy(actions, gridActions)
	return actions
}

// Coords returns the row and column of s. It panics if s is off the grid.
func (w *GridWorld) Coords(s State) (int, int) {
	w.checkState(s)
	return int(s) / w.size, int(s) % w.size
}

// StateIndex is the row-major inverse of Coords.
func (w *GridWorld) StateIndex(row, col int) State {
	if row < 0 || col < 0 || row >= w.size || col >= w.size {
		panic(fmt.Sprintf("off board: (%d, %d) on a %dx%d grid", row, col, w.size, w.size))
	}
	return State(row*w.size + col)
}

// NextState moves one cell in the action's direction. Moves off the edge leave
// the agent where it was.
func (w *GridWorld) NextState(s State, action Action) State {
	row, col := w.Coords(s)
	switch action {
	case Up:
		row = max(0, row-1)
	case Down:
		row = min(w.size-1, row+1)
	case Left:
		col = max(0, col-1)
	case Right:
		col = min(w.size-1, col+1)
	default:
		panic("unhandled action: " + string(action))
	}
	return w.StateIndex(row, col)
}

func (w *GridWorld) Transition(s State, action Action) State {
	return w.NextState(s, action)
}

func (w *GridWorld) Reward(s State) Reward {
	w.checkState(s)
	return w.rewards[s]
}

// Rewards returns a copy of the reward table.
func (w *GridWorld) Rewards() []Reward {
	rewards := make([]Reward, len(w.rewards))
	copy(rewards, w.rewards)
	return rewards
}

func (w *GridWorld) Value(s State) float64 {
	w.checkState(s)
	return w.values[s]
}

// Values returns a copy of the current value array.
func (w *GridWorld) Values() []float64 {
	values := make([]float64, len(w.values))
	copy(values, w.values)
	return values
}

// Render formats values as a size x size matrix with fixed precision. It does
// not touch the model's own value array.
func (w *GridWorld) Render(values []float64) string {
	if len(values) != w.nStates {
		panic(fmt.Sprintf("render: got %d values for %d states", len(values), w.nStates))
	}
	data := make([]float64, len(values))
	for i, v := range values {
		if math.Abs(v) < suppressBelow {
			continue
		}
		data[i] = v
	}
	m := mat.NewDense(w.size, w.size, data)
	return fmt.Sprintf("%.*f", renderPrecision, mat.Formatted(m, mat.Squeeze()))
}

func (w *GridWorld) checkState(s State) {
	if s < 0 || int(s) >= w.nStates {
		panic(fmt.Sprintf("bad state %d on a %dx%d grid", s, w.size, w.size))
	}
}
