// Copyright (C) 2022-2025, Solana Playground. All rights reserved.
// See the file LICENSE for licensing terms.
package prompts

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestIsTruthyEnv(t *testing.T) {
	require := require.New(t)

	for _, v := range []string{"1", "true", "t", "yes", "y", "on", "TRUE", " on "} {
		t.Setenv(EnvNonInteractive, v)
		require.True(isTruthyEnv(EnvNonInteractive), "value %q should be truthy", v)
	}
	for _, v := range []string{"0", "false", "no", ""} {
		t.Setenv(EnvNonInteractive, v)
		require.False(isTruthyEnv(EnvNonInteractive), "value %q should not be truthy", v)
	}
}

func TestIsInteractiveEnvOverride(t *testing.T) {
	require := require.New(t)

	t.Setenv(EnvNonInteractive, "1")
	require.False(IsInteractive())

	t.Setenv(EnvNonInteractive, "0")
	t.Setenv(EnvCI, "true")
	require.False(IsInteractive())
}

func TestNewPrompterForModeFlag(t *testing.T) {
	require := require.New(t)
	p := NewPrompterForMode(true)
	_, ok := p.(*NonInteractivePrompter)
	require.True(ok, "expected NonInteractivePrompter when flag is set")
}

func TestNonInteractivePrompterFailsFast(t *testing.T) {
	require := require.New(t)
	p := NewNonInteractivePrompter()

	_, err := p.CaptureString("price")
	require.ErrorIs(err, ErrNonInteractive)

	_, err = p.CaptureYesNo("retain authority")
	require.ErrorIs(err, ErrNonInteractive)

	_, err = p.CaptureIndices("features", []string{"a", "b"})
	require.ErrorIs(err, ErrNonInteractive)
}
