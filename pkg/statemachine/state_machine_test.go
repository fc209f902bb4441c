// Copyright (C) 2022-2025, Solana Playground. All rights reserved.
// See the file LICENSE for licensing terms.

package statemachine

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestStateMachineEmpty(t *testing.T) {
	require := require.New(t)
	_, err := NewStateMachine(nil)
	require.Error(err)
}

func TestStateMachineForward(t *testing.T) {
	require := require.New(t)
	states := []string{"one", "two", "three"}
	sm, err := NewStateMachine(states)
	require.NoError(err)

	visited := []string{}
	for sm.Running() {
		visited = append(visited, sm.CurrentState())
		sm.NextState(Forward)
	}
	require.Equal(states, visited)
	require.Equal("", sm.CurrentState())
}

func TestStateMachineBackward(t *testing.T) {
	require := require.New(t)
	sm, err := NewStateMachine([]string{"one", "two"})
	require.NoError(err)

	// backward at the first state stays put
	sm.NextState(Backward)
	require.Equal("one", sm.CurrentState())

	sm.NextState(Forward)
	require.Equal("two", sm.CurrentState())
	sm.NextState(Backward)
	require.Equal("one", sm.CurrentState())
}

func TestStateMachineStop(t *testing.T) {
	require := require.New(t)
	sm, err := NewStateMachine([]string{"one", "two"})
	require.NoError(err)

	sm.NextState(Stop)
	require.False(sm.Running())

	// a stopped machine ignores further transitions
	sm.NextState(Forward)
	require.False(sm.Running())
}
