// Copyright (C) 2022-2025, Solana Playground. All rights reserved.
// See the file LICENSE for licensing terms.
package candymachine

// Feature is one of the optional configuration blocks the operator can
// opt into via the multi-choice question.
type Feature int64

const (
	FeatureSplToken Feature = iota
	FeatureGatekeeper
	FeatureWhitelist
	FeatureEndSettings
	FeatureHiddenSettings
	FeatureFreeze
)

// featureLabels keeps the original option order; the multi-choice answer
// is parsed against it.
var featureLabels = []string{
	"SPL Token Mint",
	"Gatekeeper",
	"Whitelist Mint",
	"End Settings",
	"Hidden Settings",
	"Freeze Settings",
}

type featureSet map[Feature]bool

func newFeatureSet(indices []int) featureSet {
	set := featureSet{}
	for _, index := range indices {
		set[Feature(index)] = true
	}
	return set
}

func (fs featureSet) has(f Feature) bool {
	return fs[f]
}
