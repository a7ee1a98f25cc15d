// Package mdp holds a deterministic square gridworld and a synchronous
// value-iteration engine that evaluates the uniform random policy on it.
package mdp

import "errors"

type State int

type Action string

type Reward float64

const (
	Up    Action = "up"
	Down  Action = "down"
	Left  Action = "left"
	Right Action = "right"
)

const (
	// DefaultGamma leaves returns undiscounted.
	DefaultGamma = 1.0
	// DefaultTheta is the sweep delta below which iteration stops.
	DefaultTheta = 1e-4
)

var (
	ErrInvalidConfiguration = errors.New("invalid configuration")
	ErrSweepLimit           = errors.New("sweep limit reached before convergence")
)

type TransitionFunction interface {
	Transition(State, Action) State
}

type RewardFunction interface {
	Reward(State) Reward
}

type ActionSpace interface {
	Actions() []Action
}
