// Copyright (C) 2022-2025, Solana Playground. All rights reserved.
// See the file LICENSE for licensing terms.
package candymachine

import (
	"context"
	"errors"
	"fmt"

	"github.com/alexcolls/solana-playground/pkg/application"
	"github.com/alexcolls/solana-playground/pkg/constants"
	"github.com/alexcolls/solana-playground/pkg/models"
	"github.com/alexcolls/solana-playground/pkg/prompts"
	"github.com/alexcolls/solana-playground/pkg/solanaclient"
	"github.com/alexcolls/solana-playground/pkg/statemachine"
	"github.com/alexcolls/solana-playground/pkg/utils"
	"github.com/alexcolls/solana-playground/pkg/ux"
)

const (
	statePricing        = "pricing"
	stateGoLiveDate     = "goLiveDate"
	stateCreators       = "creators"
	stateFeatures       = "features"
	stateTreasury       = "treasury"
	stateGatekeeper     = "gatekeeper"
	stateWhitelist      = "whitelist"
	stateEndSettings    = "endSettings"
	stateHiddenSettings = "hiddenSettings"
	stateFreeze         = "freeze"
	stateUploadMethod   = "uploadMethod"
	stateToggles        = "toggles"
)

const (
	gatekeeperCivicOption  = "Civic Pass"
	gatekeeperEncoreOption = "Verify by Encore"

	endSettingAmountOption = "Amount"
	endSettingDateOption   = "Date"

	uploadBundlrOption     = "Bundlr"
	uploadAwsOption        = "AWS"
	uploadNftStorageOption = "NFT Storage"
	uploadShdwOption       = "SHDW"
)

// wizard carries the working state of one interactive config run. Answers
// accumulate in the builder; number is kept around because the end
// settings amount must not exceed it.
type wizard struct {
	app      *application.Sugar
	builder  *models.ConfigBuilder
	features featureSet
	number   uint64
}

// CreateConfigData asks the full question sequence and returns the
// assembled config. It does not persist anything; see SaveConfigData.
func CreateConfigData(app *application.Sugar) (*models.ConfigData, error) {
	ux.Logger.PrintToUser("[1/2] 🍬 Sugar interactive config maker")
	ux.Logger.PrintToUser("")
	ux.Logger.PrintToUser("Check out our Candy Machine config docs to learn about the options:")
	ux.Logger.PrintToUser("  -> %s", constants.ConfigDocsURL)
	ux.Logger.PrintToUser("")

	w := &wizard{
		app:      app,
		builder:  models.NewConfigBuilder(),
		features: featureSet{},
	}

	machine, err := statemachine.NewStateMachine([]string{
		statePricing,
		stateGoLiveDate,
		stateCreators,
		stateFeatures,
		stateTreasury,
		stateGatekeeper,
		stateWhitelist,
		stateEndSettings,
		stateHiddenSettings,
		stateFreeze,
		stateUploadMethod,
		stateToggles,
	})
	if err != nil {
		return nil, err
	}
	for machine.Running() {
		var direction statemachine.StateDirection
		switch machine.CurrentState() {
		case statePricing:
			direction, err = w.collectPricing()
		case stateGoLiveDate:
			direction, err = w.collectGoLiveDate()
		case stateCreators:
			direction, err = w.collectCreators()
		case stateFeatures:
			direction, err = w.collectFeatures()
		case stateTreasury:
			direction, err = w.collectTreasury()
		case stateGatekeeper:
			direction, err = w.collectGatekeeper()
		case stateWhitelist:
			direction, err = w.collectWhitelist()
		case stateEndSettings:
			direction, err = w.collectEndSettings()
		case stateHiddenSettings:
			direction, err = w.collectHiddenSettings()
		case stateFreeze:
			direction, err = w.collectFreeze()
		case stateUploadMethod:
			direction, err = w.collectUploadMethod()
		case stateToggles:
			direction, err = w.collectToggles()
		default:
			return nil, fmt.Errorf("invalid config wizard state %q", machine.CurrentState())
		}
		if err != nil {
			return nil, err
		}
		machine.NextState(direction)
	}

	return w.builder.Build()
}

func (w *wizard) collectPricing() (statemachine.StateDirection, error) {
	price, err := w.app.Prompt.CaptureFloat("What is the price of each NFT?", validatePrice)
	if err != nil {
		return statemachine.Stop, err
	}
	if err := w.builder.SetPrice(price); err != nil {
		return statemachine.Stop, err
	}

	number, err := w.app.Prompt.CaptureUint64("How many NFTs will you have in your candy machine?")
	if err != nil {
		return statemachine.Stop, err
	}
	if err := w.builder.SetNumber(number); err != nil {
		return statemachine.Stop, err
	}
	w.number = number

	symbol, err := w.app.Prompt.CaptureValidatedString(
		"What is the symbol of your collection? Hit [ENTER] for no symbol.",
		prompts.MaxLengthValidator("symbol", constants.MaxSymbolLength),
	)
	if err != nil {
		return statemachine.Stop, err
	}
	if err := w.builder.SetSymbol(symbol); err != nil {
		return statemachine.Stop, err
	}

	fee, err := w.app.Prompt.CapturePositiveInt(
		"What is the seller fee basis points?",
		[]prompts.Comparator{
			{
				Label: "the maximum seller fee basis points",
				Type:  prompts.LessThanEq,
				Value: constants.MaxSellerFeeBasisPoints,
			},
		},
	)
	if err != nil {
		return statemachine.Stop, err
	}
	if err := w.builder.SetSellerFeeBasisPoints(uint16(fee)); err != nil {
		return statemachine.Stop, err
	}
	return statemachine.Forward, nil
}

func (w *wizard) collectGoLiveDate() (statemachine.StateDirection, error) {
	goLiveDate, err := w.app.Prompt.CaptureStringAllowEmpty(
		"What is your go live date? Many common formats are supported. " +
			"If unsure, try YYYY-MM-DD HH:MM:SS [+/-]UTC-OFFSET or type 'now' for the current time. " +
			"For example: 2022-05-02 18:00:00 +0000 for May 2, 2022 18:00:00 UTC. " +
			"Hit [ENTER] to leave the date unset.",
	)
	if err != nil {
		return statemachine.Stop, err
	}
	if goLiveDate == "" {
		if err := w.builder.ClearGoLiveDate(); err != nil {
			return statemachine.Stop, err
		}
		return statemachine.Forward, nil
	}
	if err := w.builder.SetGoLiveDate(goLiveDate); err != nil {
		return statemachine.Stop, err
	}
	return statemachine.Forward, nil
}

func (w *wizard) collectCreators() (statemachine.StateDirection, error) {
	count, err := w.app.Prompt.CapturePositiveInt(
		"How many creator wallets do you have? (max limit of 4)",
		[]prompts.Comparator{
			{
				Label: "the minimum number of creators",
				Type:  prompts.MoreThanEq,
				Value: 1,
			},
			{
				Label: "the maximum number of creators",
				Type:  prompts.LessThanEq,
				Value: constants.MaxCreatorLimit,
			},
		},
	)
	if err != nil {
		return statemachine.Stop, err
	}

	creators := make([]models.Creator, 0, count)
	totalShare := 0
	for i := 0; i < count; i++ {
		address, err := w.app.Prompt.CapturePubkey(
			fmt.Sprintf("Enter creator wallet address #%d", i+1),
		)
		if err != nil {
			return statemachine.Stop, err
		}
		isLast := i == count-1
		share, err := w.app.Prompt.CaptureInt(
			fmt.Sprintf("Enter royalty percentage share for creator #%d (e.g., 70). Total shares must add to 100.", i+1),
			shareValidator(totalShare, isLast),
		)
		if err != nil {
			return statemachine.Stop, err
		}
		totalShare += share
		creators = append(creators, models.Creator{
			Address:  address,
			Share:    uint8(share),
			Verified: false,
		})
	}
	if err := w.builder.SetCreators(creators); err != nil {
		return statemachine.Stop, err
	}
	return statemachine.Forward, nil
}

func (w *wizard) collectFeatures() (statemachine.StateDirection, error) {
	indices, err := w.app.Prompt.CaptureIndices(
		"Which extra features do you want to use? Enter the option numbers separated by commas (e.g. 0,2). Leave empty for no extra features.",
		featureLabels,
	)
	if err != nil {
		return statemachine.Stop, err
	}
	w.features = newFeatureSet(indices)
	return statemachine.Forward, nil
}

func (w *wizard) collectTreasury() (statemachine.StateDirection, error) {
	if !w.features.has(FeatureSplToken) {
		address, err := w.app.Prompt.CapturePubkey("What is your SOL treasury address?")
		if err != nil {
			return statemachine.Stop, err
		}
		if err := w.builder.SetSolTreasury(address); err != nil {
			return statemachine.Stop, err
		}
		return statemachine.Forward, nil
	}

	mint, err := w.capturePubkeyOnChain(
		"What is your SPL token mint address?",
		w.app.Solana.ResolveMint,
	)
	if err != nil {
		return statemachine.Stop, err
	}
	account, err := w.capturePubkeyOnChain(
		"What is your SPL token account address (the account that will hold the SPL token mints)?",
		w.app.Solana.ResolveTokenAccount,
	)
	if err != nil {
		return statemachine.Stop, err
	}
	if err := w.builder.SetSplTokenPayment(mint, account); err != nil {
		return statemachine.Stop, err
	}
	return statemachine.Forward, nil
}

func (w *wizard) collectGatekeeper() (statemachine.StateDirection, error) {
	if !w.features.has(FeatureGatekeeper) {
		if err := w.builder.ClearGatekeeper(); err != nil {
			return statemachine.Stop, err
		}
		return statemachine.Forward, nil
	}

	choice, err := w.app.Prompt.CaptureList(
		"Which gatekeeper network do you want to use? Check https://docs.metaplex.com/candy-machine-v2/configuration#provider-networks for more info.",
		[]string{gatekeeperCivicOption, gatekeeperEncoreOption},
	)
	if err != nil {
		return statemachine.Stop, err
	}
	network := constants.CivicGatekeeperNetwork
	if choice == gatekeeperEncoreOption {
		network = constants.EncoreGatekeeperNetwork
	}

	expire, err := w.app.Prompt.CaptureYesNo(
		"To help prevent bots even more, do you want to expire the gatekeeper token on each mint?",
	)
	if err != nil {
		return statemachine.Stop, err
	}
	if err := w.builder.SetGatekeeper(network, expire); err != nil {
		return statemachine.Stop, err
	}
	return statemachine.Forward, nil
}

func (w *wizard) collectWhitelist() (statemachine.StateDirection, error) {
	if !w.features.has(FeatureWhitelist) {
		if err := w.builder.ClearWhitelist(); err != nil {
			return statemachine.Stop, err
		}
		return statemachine.Forward, nil
	}

	mint, err := w.app.Prompt.CapturePubkey("What is your WL token mint address?")
	if err != nil {
		return statemachine.Stop, err
	}

	burn, err := w.app.Prompt.CaptureYesNo(
		"Do you want the whitelist token to be burned on each mint?",
	)
	if err != nil {
		return statemachine.Stop, err
	}
	mode := models.NeverBurn
	if burn {
		mode = models.BurnEveryTime
	}

	presale, err := w.app.Prompt.CaptureYesNo(
		"Do you want to enable presale mint with your whitelist token?",
	)
	if err != nil {
		return statemachine.Stop, err
	}

	var discountPrice *float64
	if presale {
		discountPrice, err = w.app.Prompt.CaptureOptionalFloat(
			"What is the discount price for the presale? Hit [ENTER] to not set a discount price.",
			validatePrice,
		)
		if err != nil {
			return statemachine.Stop, err
		}
	}

	if err := w.builder.SetWhitelist(models.WhitelistMintSettings{
		Mode:          mode,
		Mint:          mint,
		Presale:       presale,
		DiscountPrice: discountPrice,
	}); err != nil {
		return statemachine.Stop, err
	}
	return statemachine.Forward, nil
}

func (w *wizard) collectEndSettings() (statemachine.StateDirection, error) {
	if !w.features.has(FeatureEndSettings) {
		if err := w.builder.ClearEndSettings(); err != nil {
			return statemachine.Stop, err
		}
		return statemachine.Forward, nil
	}

	choice, err := w.app.Prompt.CaptureList(
		"What end settings type do you want to use?",
		[]string{endSettingAmountOption, endSettingDateOption},
	)
	if err != nil {
		return statemachine.Stop, err
	}

	if choice == endSettingAmountOption {
		amount, err := w.app.Prompt.CapturePositiveInt(
			"What is the amount to stop the mint?",
			[]prompts.Comparator{
				{
					Label: "the number of items in the candy machine",
					Type:  prompts.LessThanEq,
					Value: w.number,
				},
			},
		)
		if err != nil {
			return statemachine.Stop, err
		}
		if err := w.builder.SetEndSettingsAmount(uint64(amount)); err != nil {
			return statemachine.Stop, err
		}
		return statemachine.Forward, nil
	}

	date, err := w.app.Prompt.CaptureValidatedString(
		"What is the date to stop the mint?",
		func(input string) error {
			_, err := utils.ParseDate(input)
			return err
		},
	)
	if err != nil {
		return statemachine.Stop, err
	}
	normalized, err := utils.NormalizeDate(date)
	if err != nil {
		return statemachine.Stop, err
	}
	if err := w.builder.SetEndSettingsDate(normalized); err != nil {
		return statemachine.Stop, err
	}
	return statemachine.Forward, nil
}

func (w *wizard) collectHiddenSettings() (statemachine.StateDirection, error) {
	if !w.features.has(FeatureHiddenSettings) {
		if err := w.builder.ClearHiddenSettings(); err != nil {
			return statemachine.Stop, err
		}
		return statemachine.Forward, nil
	}

	name, err := w.app.Prompt.CaptureValidatedString(
		"What is the prefix name for your hidden settings mints? The mint index will be appended at the end of the name.",
		allOf(prompts.ValidateNonEmpty, prompts.MaxLengthValidator("name", constants.MaxHiddenNameLength)),
	)
	if err != nil {
		return statemachine.Stop, err
	}
	uri, err := w.app.Prompt.CaptureValidatedString(
		"What is URI to be used for each mint?",
		allOf(prompts.ValidateURLFormat, prompts.MaxLengthValidator("URI", constants.MaxHiddenURILength)),
	)
	if err != nil {
		return statemachine.Stop, err
	}
	if err := w.builder.SetHiddenSettings(name, uri); err != nil {
		return statemachine.Stop, err
	}
	return statemachine.Forward, nil
}

func (w *wizard) collectFreeze() (statemachine.StateDirection, error) {
	if !w.features.has(FeatureFreeze) {
		if err := w.builder.ClearFreeze(); err != nil {
			return statemachine.Stop, err
		}
		return statemachine.Forward, nil
	}

	days, err := w.app.Prompt.CapturePositiveIntWithDefault(
		"How many days do you want to freeze the treasury funds and minted NFTs for? It can be at most 31 days.",
		[]prompts.Comparator{
			{
				Label: "the maximum freeze time in days",
				Type:  prompts.LessThanEq,
				Value: constants.MaxFreezeDays,
			},
		},
		fmt.Sprintf("%d", constants.MaxFreezeDays),
	)
	if err != nil {
		return statemachine.Stop, err
	}
	if err := w.builder.SetFreezeDays(days); err != nil {
		return statemachine.Stop, err
	}
	return statemachine.Forward, nil
}

func (w *wizard) collectUploadMethod() (statemachine.StateDirection, error) {
	choice, err := w.app.Prompt.CaptureList(
		"What upload method do you want to use?",
		[]string{uploadBundlrOption, uploadAwsOption, uploadNftStorageOption, uploadShdwOption},
	)
	if err != nil {
		return statemachine.Stop, err
	}

	switch choice {
	case uploadBundlrOption:
		err = w.builder.SetUploadMethodBundlr()
	case uploadAwsOption:
		err = w.collectAwsUpload()
	case uploadNftStorageOption:
		var token string
		token, err = w.app.Prompt.CaptureValidatedString(
			"What is the NFT.Storage authentication token?",
			prompts.ValidateNonEmpty,
		)
		if err == nil {
			err = w.builder.SetUploadMethodNFTStorage(token)
		}
	case uploadShdwOption:
		var account string
		account, err = w.app.Prompt.CapturePubkey("What is the SHDW storage account pubkey?")
		if err == nil {
			err = w.builder.SetUploadMethodSHDW(account)
		}
	}
	if err != nil {
		return statemachine.Stop, err
	}
	return statemachine.Forward, nil
}

func (w *wizard) collectAwsUpload() error {
	bucket, err := w.app.Prompt.CaptureValidatedString(
		"What is the AWS S3 bucket name?",
		prompts.ValidateNonEmpty,
	)
	if err != nil {
		return err
	}
	profile, err := w.app.Prompt.CaptureStringWithDefault(
		"What is the AWS profile name?",
		constants.AWSDefaultProfile,
	)
	if err != nil {
		return err
	}
	directory, err := w.app.Prompt.CaptureStringAllowEmpty(
		"What is the destination directory in the bucket? Hit [ENTER] to store files in the bucket root.",
	)
	if err != nil {
		return err
	}
	return w.builder.SetUploadMethodAWS(bucket, profile, directory)
}

func (w *wizard) collectToggles() (statemachine.StateDirection, error) {
	retainAuthority, err := w.app.Prompt.CaptureYesNo(
		"Do you want to retain update authority on your NFTs? We HIGHLY recommend you choose yes.",
	)
	if err != nil {
		return statemachine.Stop, err
	}
	if err := w.builder.SetRetainAuthority(retainAuthority); err != nil {
		return statemachine.Stop, err
	}

	isMutable, err := w.app.Prompt.CaptureYesNo(
		"Do you want your NFTs to remain mutable? We HIGHLY recommend you choose yes.",
	)
	if err != nil {
		return statemachine.Stop, err
	}
	if err := w.builder.SetIsMutable(isMutable); err != nil {
		return statemachine.Stop, err
	}
	return statemachine.Forward, nil
}

// capturePubkeyOnChain asks for a pubkey and then checks it on chain.
// A missing account re-asks the question; an RPC failure aborts the run.
func (w *wizard) capturePubkeyOnChain(
	promptStr string,
	resolve func(ctx context.Context, address string) error,
) (string, error) {
	for {
		address, err := w.app.Prompt.CapturePubkey(promptStr)
		if err != nil {
			return "", err
		}
		err = resolve(context.Background(), address)
		if err == nil {
			return address, nil
		}
		if errors.Is(err, solanaclient.ErrAccountNotFound) {
			ux.Logger.RedXToUser("%s", err)
			continue
		}
		return "", err
	}
}

func allOf(validators ...func(string) error) func(string) error {
	return func(input string) error {
		for _, validator := range validators {
			if err := validator(input); err != nil {
				return err
			}
		}
		return nil
	}
}

func validatePrice(price float64) error {
	if price <= 0 {
		return errors.New("price must be greater than zero")
	}
	return nil
}

// shareValidator keeps the running royalty total legal: it can never
// exceed 100, and the last creator must bring it to exactly 100.
func shareValidator(runningTotal int, isLast bool) func(int) error {
	return func(share int) error {
		if share < 0 {
			return errors.New("royalty share cannot be negative")
		}
		newTotal := runningTotal + share
		if newTotal > constants.MaxShareTotal {
			return errors.New("royalty share total has exceeded 100 percent")
		}
		if isLast && newTotal != constants.MaxShareTotal {
			return errors.New("royalty share for all creators must total 100 percent")
		}
		return nil
	}
}
