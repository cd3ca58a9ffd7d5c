package manager

import "fmt"

// Phase is where a game stands.
type Phase int

const (
	Playing Phase = iota
	Lost
	Won
)

func (p Phase) String() string {
	switch p {
	case Playing:
		return "playing"
	case Lost:
		return "lost"
	case Won:
		return "won"
	default:
		return fmt.Sprintf("Phase(%d)", int(p))
	}
}

// StateManager tracks the phase, why it ended and a few counters for logs.
type StateManager struct {
	phase         Phase
	collision     CollisionType
	steps         int
	applesEaten   int
	longestLength int
}

func NewStateManager(initLength int) *StateManager {
	return &StateManager{
		phase:         Playing,
		longestLength: initLength,
	}
}

func (sm *StateManager) Phase() Phase {
	return sm.phase
}

func (sm *StateManager) Collision() CollisionType {
	return sm.collision
}

func (sm *StateManager) Steps() int {
	return sm.steps
}

func (sm *StateManager) ApplesEaten() int {
	return sm.applesEaten
}

func (sm *StateManager) LongestLength() int {
	return sm.longestLength
}

// RecordStep counts one movement step.
func (sm *StateManager) RecordStep() {
	sm.steps++
}

// RecordApple counts an eaten apple and the resulting length.
func (sm *StateManager) RecordApple(length int) {
	sm.applesEaten++
	if length > sm.longestLength {
		sm.longestLength = length
	}
}

// Lose ends the game because of a collision. Only the first end counts.
func (sm *StateManager) Lose(c CollisionType) {
	if sm.phase != Playing {
		return
	}
	sm.phase = Lost
	sm.collision = c
}

// Win ends the game with the board filled.
func (sm *StateManager) Win() {
	if sm.phase != Playing {
		return
	}
	sm.phase = Won
}
