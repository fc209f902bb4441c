// Code generated manually for testing. Update as needed.

package mocks

import (
	"github.com/stretchr/testify/mock"

	"github.com/alexcolls/solana-playground/pkg/prompts"
)

// Prompter is a mock implementation of prompts.Prompter
type Prompter struct {
	mock.Mock
}

func (m *Prompter) CaptureString(promptStr string) (string, error) {
	args := m.Called(promptStr)
	return args.String(0), args.Error(1)
}

func (m *Prompter) CaptureStringAllowEmpty(promptStr string) (string, error) {
	args := m.Called(promptStr)
	return args.String(0), args.Error(1)
}

func (m *Prompter) CaptureStringWithDefault(promptStr string, defaultValue string) (string, error) {
	args := m.Called(promptStr, defaultValue)
	return args.String(0), args.Error(1)
}

func (m *Prompter) CaptureValidatedString(promptStr string, validator func(string) error) (string, error) {
	args := m.Called(promptStr, validator)
	return args.String(0), args.Error(1)
}

func (m *Prompter) CaptureFloat(promptStr string, validator func(float64) error) (float64, error) {
	args := m.Called(promptStr, validator)
	return args.Get(0).(float64), args.Error(1)
}

func (m *Prompter) CaptureOptionalFloat(promptStr string, validator func(float64) error) (*float64, error) {
	args := m.Called(promptStr, validator)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*float64), args.Error(1)
}

func (m *Prompter) CaptureInt(promptStr string, validator func(int) error) (int, error) {
	args := m.Called(promptStr, validator)
	return args.Int(0), args.Error(1)
}

func (m *Prompter) CaptureUint64(promptStr string) (uint64, error) {
	args := m.Called(promptStr)
	return args.Get(0).(uint64), args.Error(1)
}

func (m *Prompter) CapturePositiveInt(promptStr string, comparators []prompts.Comparator) (int, error) {
	args := m.Called(promptStr, comparators)
	return args.Int(0), args.Error(1)
}

func (m *Prompter) CapturePositiveIntWithDefault(promptStr string, comparators []prompts.Comparator, defaultValue string) (int, error) {
	args := m.Called(promptStr, comparators, defaultValue)
	return args.Int(0), args.Error(1)
}

func (m *Prompter) CaptureYesNo(promptStr string) (bool, error) {
	args := m.Called(promptStr)
	return args.Bool(0), args.Error(1)
}

func (m *Prompter) CaptureNoYes(promptStr string) (bool, error) {
	args := m.Called(promptStr)
	return args.Bool(0), args.Error(1)
}

func (m *Prompter) CaptureList(promptStr string, options []string) (string, error) {
	args := m.Called(promptStr, options)
	return args.String(0), args.Error(1)
}

func (m *Prompter) CaptureIndex(promptStr string, options []string) (int, error) {
	args := m.Called(promptStr, options)
	return args.Int(0), args.Error(1)
}

func (m *Prompter) CaptureIndices(promptStr string, options []string) ([]int, error) {
	args := m.Called(promptStr, options)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]int), args.Error(1)
}

func (m *Prompter) CapturePubkey(promptStr string) (string, error) {
	args := m.Called(promptStr)
	return args.String(0), args.Error(1)
}
