// Copyright (C) 2022-2025, Solana Playground. All rights reserved.
// See the file LICENSE for licensing terms.
package prompts

import (
	"errors"
	"fmt"
	"net/url"
	"strconv"

	"github.com/gagliardetto/solana-go"
)

// ValidatePubkey checks that the input is a well formed base58 Solana
// public key. It does not touch the network.
func ValidatePubkey(input string) error {
	if _, err := solana.PublicKeyFromBase58(input); err != nil {
		return fmt.Errorf("invalid Solana address: %w", err)
	}
	return nil
}

func ValidateURLFormat(input string) error {
	if input == "" {
		return errors.New("URL cannot be empty")
	}
	parsedURL, err := url.Parse(input)
	if err != nil {
		return err
	}
	if parsedURL.Scheme == "" {
		return errors.New("URL must have a scheme (e.g., http:// or https://)")
	}
	return nil
}

func ValidateNonEmpty(input string) error {
	if input == "" {
		return errors.New("input cannot be empty")
	}
	return nil
}

// MaxLengthValidator bounds the length of a free text answer. Empty
// input is allowed; pair with ValidateNonEmpty when it is not.
func MaxLengthValidator(label string, maxLength int) func(string) error {
	return func(input string) error {
		if len(input) > maxLength {
			return fmt.Errorf("%s must be %d characters or less", label, maxLength)
		}
		return nil
	}
}

func validateBiggerThanZero(input string) error {
	val, err := strconv.ParseUint(input, 0, 64)
	if err != nil {
		return fmt.Errorf("couldn't parse input %q to a number", input)
	}
	if val == 0 {
		return errors.New("the value must be bigger than zero")
	}
	return nil
}
