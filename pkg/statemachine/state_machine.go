// Copyright (C) 2022-2025, Solana Playground. All rights reserved.
// See the file LICENSE for licensing terms.

package statemachine

import (
	"errors"
)

// StateDirection tells the machine where to go after a state handler returns.
type StateDirection int64

const (
	Forward StateDirection = iota
	Backward
	Stop
)

const noState = ""

// StateMachine drives an ordered list of named states. The wizard visits
// them front to back; Backward allows a handler to send the user to the
// previous question group, Stop aborts the run.
type StateMachine struct {
	states  []string
	index   int
	running bool
}

func NewStateMachine(states []string) (*StateMachine, error) {
	if len(states) == 0 {
		return nil, errors.New("number of states must be greater than zero")
	}
	return &StateMachine{
		states:  states,
		running: true,
	}, nil
}

func (sm *StateMachine) Running() bool {
	return sm.running
}

func (sm *StateMachine) CurrentState() string {
	if !sm.running {
		return noState
	}
	return sm.states[sm.index]
}

func (sm *StateMachine) NextState(direction StateDirection) {
	if !sm.running {
		return
	}
	switch direction {
	case Backward:
		if sm.index > 0 {
			sm.index--
		}
	case Forward:
		sm.index++
		if sm.index == len(sm.states) {
			sm.running = false
		}
	default:
		sm.running = false
	}
}
