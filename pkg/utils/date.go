// Copyright (C) 2022-2025, Solana Playground. All rights reserved.
// See the file LICENSE for licensing terms.
package utils

import (
	"fmt"
	"strings"
	"time"
)

// dateLayouts are the accepted input formats for date answers, tried in
// order. Layouts without a zone are interpreted as UTC.
var dateLayouts = []string{
	"2006-01-02 15:04:05 -0700",
	"2006-01-02 15:04:05 MST",
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// ParseDate parses a free-form date answer. The literal "now" resolves to
// the current time.
func ParseDate(input string) (time.Time, error) {
	input = strings.TrimSpace(input)
	if strings.EqualFold(input, "now") {
		return time.Now().UTC(), nil
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, input); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf(
		"could not parse %q as a date, try the YYYY-MM-DD HH:MM:SS [+/-]UTC-OFFSET format", input)
}

// NormalizeDate canonicalizes a free-form date answer to RFC 3339 in UTC.
func NormalizeDate(input string) (string, error) {
	t, err := ParseDate(input)
	if err != nil {
		return "", err
	}
	return t.UTC().Format(time.RFC3339), nil
}
