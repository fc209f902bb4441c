// Copyright (C) 2022-2025, Solana Playground. All rights reserved.
// See the file LICENSE for licensing terms.
package prompts

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestValidatePubkey(t *testing.T) {
	require := require.New(t)
	require.NoError(ValidatePubkey("DzNy1kFJdP5JggbEWSrvPqEZDRSm1ejMj3aEfRSGzyLq"))
	require.Error(ValidatePubkey(""))
	require.Error(ValidatePubkey("not-a-pubkey"))
	// too short even though base58
	require.Error(ValidatePubkey("abc"))
}

func TestValidateURLFormat(t *testing.T) {
	require := require.New(t)
	require.NoError(ValidateURLFormat("https://example.com/assets"))
	require.Error(ValidateURLFormat(""))
	require.Error(ValidateURLFormat("example.com/no-scheme"))
}

func TestMaxLengthValidator(t *testing.T) {
	require := require.New(t)
	validate := MaxLengthValidator("symbol", 10)
	require.NoError(validate(""))
	require.NoError(validate("SUGAR"))
	require.NoError(validate("TENCHARSOK"))
	require.Error(validate("ELEVENCHARS"))
}

func TestComparator(t *testing.T) {
	require := require.New(t)

	lessEq := Comparator{Label: "max fee", Type: LessThanEq, Value: 10000}
	require.NoError(lessEq.Validate(0))
	require.NoError(lessEq.Validate(10000))
	require.Error(lessEq.Validate(10001))

	moreEq := Comparator{Label: "min creators", Type: MoreThanEq, Value: 1}
	require.NoError(moreEq.Validate(1))
	require.Error(moreEq.Validate(0))

	more := Comparator{Label: "floor", Type: MoreThan, Value: 0}
	require.NoError(more.Validate(1))
	require.Error(more.Validate(0))
}

func TestParseIndices(t *testing.T) {
	require := require.New(t)

	indices, err := ParseIndices("", 6)
	require.NoError(err)
	require.Empty(indices)

	indices, err = ParseIndices("0,2", 6)
	require.NoError(err)
	require.Equal([]int{0, 2}, indices)

	// whitespace, duplicates and ordering
	indices, err = ParseIndices(" 5 , 1,1, 0 ", 6)
	require.NoError(err)
	require.Equal([]int{0, 1, 5}, indices)

	_, err = ParseIndices("6", 6)
	require.Error(err)
	_, err = ParseIndices("-1", 6)
	require.Error(err)
	_, err = ParseIndices("a,b", 6)
	require.Error(err)
}

func TestValidateBiggerThanZero(t *testing.T) {
	require := require.New(t)
	require.NoError(validateBiggerThanZero("100"))
	require.Error(validateBiggerThanZero("0"))
	require.Error(validateBiggerThanZero("abc"))
}
