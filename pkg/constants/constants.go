// Copyright (C) 2022-2025, Solana Playground. All rights reserved.
// See the file LICENSE for licensing terms.
package constants

import (
	"time"
)

const (
	DefaultPerms755    = 0o755
	WriteReadReadPerms = 0o644

	BaseDirName = ".sugar"
	LogDir      = "logs"
	LogFileName = "sugar.log"

	// ConfigDataFileName is the well-known name of the candy machine
	// config document produced by `sugar config create`.
	ConfigDataFileName = "config.json"

	// CLIConfigFileName holds the tool's own settings (rpc endpoint etc.).
	CLIConfigFileName = "cli.json"

	APIRequestTimeout = 30 * time.Second

	DefaultRPCEndpoint = "https://api.devnet.solana.com"

	MaxCreatorLimit         = 4
	MaxShareTotal           = 100
	MaxSymbolLength         = 10
	MaxSellerFeeBasisPoints = 10_000
	MaxHiddenNameLength     = 25
	MaxHiddenURILength      = 200
	MaxFreezeDays           = 31
	SecondsPerDay           = 86_400

	// Gatekeeper provider networks supported by the candy machine.
	CivicGatekeeperNetwork  = "ignREusXmGrscGNUesoU9mxfds9AiYTezUKex2PsZV6"
	EncoreGatekeeperNetwork = "tibePmPaoTgrs929rWpu755EXaxC7M3SthVCf6GzjZt"

	ConfigDocsURL = "https://docs.metaplex.com/tools/sugar/configuration"

	AWSDefaultProfile = "default"
)
