// Copyright (C) 2022-2025, Solana Playground. All rights reserved.
// See the file LICENSE for licensing terms.
package prompts

import (
	"bytes"
	"testing"

	"github.com/manifoldco/promptui"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/alexcolls/solana-playground/pkg/ux"
)

func TestCaptureIndicesMenuUsesUserWriter(t *testing.T) {
	require := require.New(t)

	console := &bytes.Buffer{}
	ux.ResetUserLog(zap.NewNop(), console)

	origRunner := promptUIRunner
	promptUIRunner = func(prompt promptui.Prompt) (string, error) {
		return "0,2", nil
	}
	defer func() { promptUIRunner = origRunner }()

	prompter := &realPrompter{}
	indices, err := prompter.CaptureIndices("Pick some options", []string{"alpha", "beta", "gamma"})
	require.NoError(err)
	require.Equal([]int{0, 2}, indices)

	out := console.String()
	require.Contains(out, "0) alpha")
	require.Contains(out, "1) beta")
	require.Contains(out, "2) gamma")
}
