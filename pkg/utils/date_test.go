// Copyright (C) 2022-2025, Solana Playground. All rights reserved.
// See the file LICENSE for licensing terms.
package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestNormalizeDate(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "full date with offset",
			input:    "2022-05-02 18:00:00 +0000",
			expected: "2022-05-02T18:00:00Z",
		},
		{
			name:     "full date with non utc offset",
			input:    "2022-05-02 18:00:00 +0200",
			expected: "2022-05-02T16:00:00Z",
		},
		{
			name:     "date and time without zone",
			input:    "2022-05-02 18:00:00",
			expected: "2022-05-02T18:00:00Z",
		},
		{
			name:     "date only",
			input:    "2022-05-02",
			expected: "2022-05-02T00:00:00Z",
		},
		{
			name:     "rfc3339 passthrough",
			input:    "2022-05-02T18:00:00+02:00",
			expected: "2022-05-02T16:00:00Z",
		},
		{
			name:     "surrounding whitespace",
			input:    "  2022-05-02  ",
			expected: "2022-05-02T00:00:00Z",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require := require.New(t)
			out, err := NormalizeDate(tt.input)
			require.NoError(err)
			require.Equal(tt.expected, out)
		})
	}
}

func TestNormalizeDateNow(t *testing.T) {
	require := require.New(t)
	out, err := NormalizeDate("now")
	require.NoError(err)
	parsed, err := time.Parse(time.RFC3339, out)
	require.NoError(err)
	require.WithinDuration(time.Now().UTC(), parsed, time.Minute)
}

func TestNormalizeDateInvalid(t *testing.T) {
	require := require.New(t)
	for _, input := range []string{"", "not a date", "02/05/2022", "2022-13-40"} {
		_, err := NormalizeDate(input)
		require.Error(err, "input %q should not parse", input)
	}
}
