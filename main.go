// Copyright (C) 2022-2025, Solana Playground. All rights reserved.
// See the file LICENSE for licensing terms.

package main

import (
	"github.com/alexcolls/solana-playground/cmd"
)

func main() {
	cmd.Execute()
}
