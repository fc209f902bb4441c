// Copyright (C) 2022-2025, Solana Playground. All rights reserved.
// See the file LICENSE for licensing terms.
package prompts

import (
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/manifoldco/promptui"

	"github.com/alexcolls/solana-playground/pkg/ux"
)

const (
	Yes = "Yes"
	No  = "No"

	LessThanEq = "Less Than Or Eq"
	MoreThanEq = "More Than Or Eq"
	MoreThan   = "More Than"
)

// promptUIRunner is a variable for testing purposes to allow mocking prompt.Run()
var promptUIRunner = func(prompt promptui.Prompt) (string, error) {
	return prompt.Run()
}

// promptUISelectRunner is a variable for testing purposes to allow mocking select.Run()
var promptUISelectRunner = func(sel promptui.Select) (int, string, error) {
	return sel.Run()
}

type Comparator struct {
	Label string // Label that identifies reference value
	Type  string // Less Than Eq or More than Eq
	Value uint64 // Value to Compare To
}

func (comparator *Comparator) Validate(val uint64) error {
	switch comparator.Type {
	case LessThanEq:
		if val > comparator.Value {
			return fmt.Errorf("the value must be smaller than or equal to %s (%d)", comparator.Label, comparator.Value)
		}
	case MoreThan:
		if val <= comparator.Value {
			return fmt.Errorf("the value must be bigger than %s (%d)", comparator.Label, comparator.Value)
		}
	case MoreThanEq:
		if val < comparator.Value {
			return fmt.Errorf("the value must be bigger than or equal to %s (%d)", comparator.Label, comparator.Value)
		}
	}
	return nil
}

// Prompter is the wizard's window to the operator. Every method blocks
// until an accepted answer (or a hard prompt error) arrives; validation
// rejections are handled inside the prompt loop and never surface here.
type Prompter interface {
	CaptureString(promptStr string) (string, error)
	CaptureStringAllowEmpty(promptStr string) (string, error)
	CaptureStringWithDefault(promptStr string, defaultValue string) (string, error)
	CaptureValidatedString(promptStr string, validator func(string) error) (string, error)
	CaptureFloat(promptStr string, validator func(float64) error) (float64, error)
	CaptureOptionalFloat(promptStr string, validator func(float64) error) (*float64, error)
	CaptureInt(promptStr string, validator func(int) error) (int, error)
	CaptureUint64(promptStr string) (uint64, error)
	CapturePositiveInt(promptStr string, comparators []Comparator) (int, error)
	CapturePositiveIntWithDefault(promptStr string, comparators []Comparator, defaultValue string) (int, error)
	CaptureYesNo(promptStr string) (bool, error)
	CaptureNoYes(promptStr string) (bool, error)
	CaptureList(promptStr string, options []string) (string, error)
	CaptureIndex(promptStr string, options []string) (int, error)
	CaptureIndices(promptStr string, options []string) ([]int, error)
	CapturePubkey(promptStr string) (string, error)
}

type realPrompter struct{}

func NewPrompter() Prompter {
	return &realPrompter{}
}

func (*realPrompter) CaptureString(promptStr string) (string, error) {
	prompt := promptui.Prompt{
		Label:    promptStr,
		Validate: ValidateNonEmpty,
	}

	return promptUIRunner(prompt)
}

func (*realPrompter) CaptureStringAllowEmpty(promptStr string) (string, error) {
	prompt := promptui.Prompt{
		Label: promptStr,
	}

	return promptUIRunner(prompt)
}

func (*realPrompter) CaptureStringWithDefault(promptStr string, defaultValue string) (string, error) {
	prompt := promptui.Prompt{
		Label:   promptStr,
		Default: defaultValue,
	}

	return promptUIRunner(prompt)
}

func (*realPrompter) CaptureValidatedString(promptStr string, validator func(string) error) (string, error) {
	prompt := promptui.Prompt{
		Label:    promptStr,
		Validate: validator,
	}

	return promptUIRunner(prompt)
}

func (*realPrompter) CaptureFloat(promptStr string, validator func(float64) error) (float64, error) {
	prompt := promptui.Prompt{
		Label: promptStr,
		Validate: func(input string) error {
			val, err := strconv.ParseFloat(input, 64)
			if err != nil {
				return fmt.Errorf("couldn't parse input %q to a number", input)
			}
			if validator != nil {
				return validator(val)
			}
			return nil
		},
	}

	result, err := promptUIRunner(prompt)
	if err != nil {
		return 0, err
	}

	return strconv.ParseFloat(result, 64)
}

// CaptureOptionalFloat is CaptureFloat with an empty answer meaning
// "leave unset", in which case it returns nil.
func (*realPrompter) CaptureOptionalFloat(promptStr string, validator func(float64) error) (*float64, error) {
	prompt := promptui.Prompt{
		Label: promptStr,
		Validate: func(input string) error {
			if input == "" {
				return nil
			}
			val, err := strconv.ParseFloat(input, 64)
			if err != nil {
				return fmt.Errorf("couldn't parse input %q to a number", input)
			}
			if validator != nil {
				return validator(val)
			}
			return nil
		},
	}

	result, err := promptUIRunner(prompt)
	if err != nil {
		return nil, err
	}
	if result == "" {
		return nil, nil
	}
	val, err := strconv.ParseFloat(result, 64)
	if err != nil {
		return nil, err
	}
	return &val, nil
}

func (*realPrompter) CaptureInt(promptStr string, validator func(int) error) (int, error) {
	prompt := promptui.Prompt{
		Label: promptStr,
		Validate: func(input string) error {
			val, err := strconv.Atoi(input)
			if err != nil {
				return fmt.Errorf("couldn't parse input %q to a number", input)
			}
			if validator != nil {
				return validator(val)
			}
			return nil
		},
	}

	result, err := promptUIRunner(prompt)
	if err != nil {
		return 0, err
	}

	return strconv.Atoi(result)
}

func (*realPrompter) CaptureUint64(promptStr string) (uint64, error) {
	prompt := promptui.Prompt{
		Label:    promptStr,
		Validate: validateBiggerThanZero,
	}

	amountStr, err := promptUIRunner(prompt)
	if err != nil {
		return 0, err
	}
	return strconv.ParseUint(amountStr, 0, 64)
}

func capturePositiveInt(promptStr string, comparators []Comparator, defaultValue string) (int, error) {
	prompt := promptui.Prompt{
		Label:   promptStr,
		Default: defaultValue,
		Validate: func(input string) error {
			val, err := strconv.Atoi(input)
			if err != nil {
				return fmt.Errorf("couldn't parse input %q to a number", input)
			}
			if val < 0 {
				return errors.New("input is less than 0")
			}
			for _, comparator := range comparators {
				if err := comparator.Validate(uint64(val)); err != nil {
					return err
				}
			}
			return nil
		},
	}

	amountStr, err := promptUIRunner(prompt)
	if err != nil {
		return 0, err
	}
	return strconv.Atoi(amountStr)
}

func (*realPrompter) CapturePositiveInt(promptStr string, comparators []Comparator) (int, error) {
	return capturePositiveInt(promptStr, comparators, "")
}

func (*realPrompter) CapturePositiveIntWithDefault(promptStr string, comparators []Comparator, defaultValue string) (int, error) {
	return capturePositiveInt(promptStr, comparators, defaultValue)
}

func yesNoBase(promptStr string, orderedOptions []string) (bool, error) {
	prompt := promptui.Select{
		Label: promptStr,
		Items: orderedOptions,
	}

	_, decision, err := promptUISelectRunner(prompt)
	if err != nil {
		return false, err
	}
	return decision == Yes, nil
}

func (*realPrompter) CaptureYesNo(promptStr string) (bool, error) {
	return yesNoBase(promptStr, []string{Yes, No})
}

func (*realPrompter) CaptureNoYes(promptStr string) (bool, error) {
	return yesNoBase(promptStr, []string{No, Yes})
}

func (*realPrompter) CaptureList(promptStr string, options []string) (string, error) {
	prompt := promptui.Select{
		Label: promptStr,
		Items: options,
	}
	_, listDecision, err := promptUISelectRunner(prompt)
	if err != nil {
		return "", err
	}
	return listDecision, nil
}

func (*realPrompter) CaptureIndex(promptStr string, options []string) (int, error) {
	prompt := promptui.Select{
		Label: promptStr,
		Items: options,
	}

	listIndex, _, err := promptUISelectRunner(prompt)
	if err != nil {
		return 0, err
	}
	return listIndex, nil
}

// CaptureIndices asks for a comma separated list of option indices
// (e.g. "0,2"). An empty answer is legal and yields an empty selection.
func (*realPrompter) CaptureIndices(promptStr string, options []string) ([]int, error) {
	for i, option := range options {
		ux.Logger.PrintToUser("%d) %s", i, option)
	}
	prompt := promptui.Prompt{
		Label: promptStr,
		Validate: func(input string) error {
			_, err := ParseIndices(input, len(options))
			return err
		},
	}

	result, err := promptUIRunner(prompt)
	if err != nil {
		return nil, err
	}
	return ParseIndices(result, len(options))
}

// ParseIndices parses a comma separated index list against a number of
// options. Duplicates collapse, output is sorted, "" means none.
func ParseIndices(input string, numOptions int) ([]int, error) {
	input = strings.TrimSpace(input)
	if input == "" {
		return []int{}, nil
	}
	seen := map[int]bool{}
	for _, part := range strings.Split(input, ",") {
		part = strings.TrimSpace(part)
		index, err := strconv.Atoi(part)
		if err != nil {
			return nil, fmt.Errorf("couldn't parse %q to an option number", part)
		}
		if index < 0 || index >= numOptions {
			return nil, fmt.Errorf("option %d is out of range, pick between 0 and %d", index, numOptions-1)
		}
		seen[index] = true
	}
	indices := make([]int, 0, len(seen))
	for index := range seen {
		indices = append(indices, index)
	}
	sort.Ints(indices)
	return indices, nil
}

func (*realPrompter) CapturePubkey(promptStr string) (string, error) {
	prompt := promptui.Prompt{
		Label:    promptStr,
		Validate: ValidatePubkey,
	}

	return promptUIRunner(prompt)
}
