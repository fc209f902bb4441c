// Copyright (C) 2022-2025, Solana Playground. All rights reserved.
// See the file LICENSE for licensing terms.
package prompts

import (
	"errors"
	"fmt"
)

// ErrNonInteractive is returned when a prompt is attempted in non-interactive mode.
// The config wizard has no flag equivalents, so commands catch this and
// tell the operator to run on a terminal.
var ErrNonInteractive = errors.New("cannot prompt in non-interactive mode")

// NonInteractivePrompter implements Prompter but fails fast on any prompt
// attempt. Used in CI/script environments to detect misuse early.
type NonInteractivePrompter struct{}

func NewNonInteractivePrompter() *NonInteractivePrompter {
	return &NonInteractivePrompter{}
}

func (p *NonInteractivePrompter) fail(operation string) error {
	return fmt.Errorf("%w: %s - run on a terminal, or unset %s", ErrNonInteractive, operation, EnvNonInteractive)
}

func (p *NonInteractivePrompter) CaptureString(promptStr string) (string, error) {
	return "", p.fail(promptStr)
}

func (p *NonInteractivePrompter) CaptureStringAllowEmpty(promptStr string) (string, error) {
	return "", p.fail(promptStr)
}

func (p *NonInteractivePrompter) CaptureStringWithDefault(promptStr string, _ string) (string, error) {
	return "", p.fail(promptStr)
}

func (p *NonInteractivePrompter) CaptureValidatedString(promptStr string, _ func(string) error) (string, error) {
	return "", p.fail(promptStr)
}

func (p *NonInteractivePrompter) CaptureFloat(promptStr string, _ func(float64) error) (float64, error) {
	return 0, p.fail(promptStr)
}

func (p *NonInteractivePrompter) CaptureOptionalFloat(promptStr string, _ func(float64) error) (*float64, error) {
	return nil, p.fail(promptStr)
}

func (p *NonInteractivePrompter) CaptureInt(promptStr string, _ func(int) error) (int, error) {
	return 0, p.fail(promptStr)
}

func (p *NonInteractivePrompter) CaptureUint64(promptStr string) (uint64, error) {
	return 0, p.fail(promptStr)
}

func (p *NonInteractivePrompter) CapturePositiveInt(promptStr string, _ []Comparator) (int, error) {
	return 0, p.fail(promptStr)
}

func (p *NonInteractivePrompter) CapturePositiveIntWithDefault(promptStr string, _ []Comparator, _ string) (int, error) {
	return 0, p.fail(promptStr)
}

func (p *NonInteractivePrompter) CaptureYesNo(promptStr string) (bool, error) {
	return false, p.fail(promptStr)
}

func (p *NonInteractivePrompter) CaptureNoYes(promptStr string) (bool, error) {
	return false, p.fail(promptStr)
}

func (p *NonInteractivePrompter) CaptureList(promptStr string, _ []string) (string, error) {
	return "", p.fail(promptStr)
}

func (p *NonInteractivePrompter) CaptureIndex(promptStr string, _ []string) (int, error) {
	return 0, p.fail(promptStr)
}

func (p *NonInteractivePrompter) CaptureIndices(promptStr string, _ []string) ([]int, error) {
	return nil, p.fail(promptStr)
}

func (p *NonInteractivePrompter) CapturePubkey(promptStr string) (string, error) {
	return "", p.fail(promptStr)
}
