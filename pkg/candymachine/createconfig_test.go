// Copyright (C) 2022-2025, Solana Playground. All rights reserved.
// See the file LICENSE for licensing terms.
package candymachine

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/alexcolls/solana-playground/pkg/application"
	"github.com/alexcolls/solana-playground/pkg/config"
	"github.com/alexcolls/solana-playground/pkg/constants"
	"github.com/alexcolls/solana-playground/pkg/models"
	"github.com/alexcolls/solana-playground/pkg/prompts"
	"github.com/alexcolls/solana-playground/pkg/prompts/mocks"
	"github.com/alexcolls/solana-playground/pkg/solanaclient"
	"github.com/alexcolls/solana-playground/pkg/ux"
)

const (
	testAddr1 = "DzNy1kFJdP5JggbEWSrvPqEZDRSm1ejMj3aEfRSGzyLq"
	testAddr2 = "3H3xcXSfRZb5renVdqkNafGjmFXkSNL5jSGBcAWkMLJ3"
)

// fakeSolana answers chain lookups from canned per-address errors.
type fakeSolana struct {
	mintErrs  map[string]error
	tokenErrs map[string]error
}

func (f *fakeSolana) ResolveMint(_ context.Context, address string) error {
	return f.mintErrs[address]
}

func (f *fakeSolana) ResolveTokenAccount(_ context.Context, address string) error {
	return f.tokenErrs[address]
}

func newTestApp(t *testing.T, prompt *mocks.Prompter, solana solanaclient.Client) *application.Sugar {
	t.Helper()
	ux.ResetUserLog(zap.NewNop(), &bytes.Buffer{})
	app := application.New()
	app.Setup(t.TempDir(), zap.NewNop(), config.New(), prompt, solana)
	return app
}

// expectBaseAnswers wires the questions every run answers regardless of
// the selected features.
func expectBaseAnswers(prompt *mocks.Prompter) {
	prompt.On("CaptureFloat", "What is the price of each NFT?", mock.Anything).
		Return(1.5, nil)
	prompt.On("CaptureUint64", "How many NFTs will you have in your candy machine?").
		Return(uint64(100), nil)
	prompt.On("CaptureValidatedString",
		"What is the symbol of your collection? Hit [ENTER] for no symbol.", mock.Anything).
		Return("SGR", nil)
	prompt.On("CapturePositiveInt", "What is the seller fee basis points?", mock.Anything).
		Return(500, nil)
	prompt.On("CaptureStringAllowEmpty", mock.MatchedBy(func(promptStr string) bool {
		return strings.Contains(promptStr, "go live date")
	})).Return("", nil)
	prompt.On("CapturePositiveInt", "How many creator wallets do you have? (max limit of 4)", mock.Anything).
		Return(2, nil)
	prompt.On("CapturePubkey", "Enter creator wallet address #1").Return(testAddr1, nil)
	prompt.On("CapturePubkey", "Enter creator wallet address #2").Return(testAddr2, nil)
	prompt.On("CaptureInt", mock.MatchedBy(func(promptStr string) bool {
		return strings.Contains(promptStr, "share for creator #1")
	}), mock.Anything).Return(60, nil)
	prompt.On("CaptureInt", mock.MatchedBy(func(promptStr string) bool {
		return strings.Contains(promptStr, "share for creator #2")
	}), mock.Anything).Return(40, nil)
	prompt.On("CaptureYesNo",
		"Do you want to retain update authority on your NFTs? We HIGHLY recommend you choose yes.").
		Return(true, nil)
	prompt.On("CaptureYesNo",
		"Do you want your NFTs to remain mutable? We HIGHLY recommend you choose yes.").
		Return(true, nil)
}

func TestCreateConfigDataNoFeatures(t *testing.T) {
	require := require.New(t)
	prompt := &mocks.Prompter{}
	expectBaseAnswers(prompt)
	prompt.On("CaptureIndices",
		"Which extra features do you want to use? Enter the option numbers separated by commas (e.g. 0,2). Leave empty for no extra features.", featureLabels).
		Return([]int{}, nil)
	prompt.On("CapturePubkey", "What is your SOL treasury address?").Return(testAddr1, nil)
	prompt.On("CaptureList", "What upload method do you want to use?",
		[]string{uploadBundlrOption, uploadAwsOption, uploadNftStorageOption, uploadShdwOption}).
		Return(uploadBundlrOption, nil)

	app := newTestApp(t, prompt, &fakeSolana{})
	data, err := CreateConfigData(app)
	require.NoError(err)

	require.Equal(1.5, data.Price)
	require.Equal(uint64(100), data.Number)
	require.Equal("SGR", data.Symbol)
	require.Equal(uint16(500), data.SellerFeeBasisPoints)
	require.Nil(data.GoLiveDate)
	require.Equal([]models.Creator{
		{Address: testAddr1, Share: 60, Verified: false},
		{Address: testAddr2, Share: 40, Verified: false},
	}, data.Creators)
	require.NotNil(data.SolTreasuryAccount)
	require.Equal(testAddr1, *data.SolTreasuryAccount)
	require.Nil(data.SplToken)
	require.Nil(data.SplTokenAccount)
	require.Nil(data.Gatekeeper)
	require.Nil(data.WhitelistMintSettings)
	require.Nil(data.EndSettings)
	require.Nil(data.HiddenSettings)
	require.Nil(data.FreezeTime)
	require.Equal(models.Bundlr, data.UploadMethod)
	require.Nil(data.AwsConfig)
	require.Nil(data.NftStorageAuthToken)
	require.Nil(data.ShdwStorageAccount)
	require.True(data.RetainAuthority)
	require.True(data.IsMutable)
	prompt.AssertExpectations(t)
}

func TestCreateConfigDataAllFeatures(t *testing.T) {
	require := require.New(t)
	prompt := &mocks.Prompter{}
	expectBaseAnswers(prompt)
	prompt.On("CaptureIndices",
		"Which extra features do you want to use? Enter the option numbers separated by commas (e.g. 0,2). Leave empty for no extra features.", featureLabels).
		Return([]int{0, 1, 2, 3, 4, 5}, nil)

	// SPL token treasury, both addresses exist on chain. The whitelist
	// mint must never be looked up, so any lookup of it fails the run.
	solana := &fakeSolana{
		mintErrs: map[string]error{
			testAddr2: errors.New("whitelist mints are not checked on chain"),
		},
		tokenErrs: map[string]error{},
	}
	prompt.On("CapturePubkey", "What is your SPL token mint address?").Return(testAddr1, nil)
	prompt.On("CapturePubkey",
		"What is your SPL token account address (the account that will hold the SPL token mints)?").
		Return(testAddr2, nil)

	prompt.On("CaptureList", mock.MatchedBy(func(promptStr string) bool {
		return strings.Contains(promptStr, "gatekeeper network")
	}), []string{gatekeeperCivicOption, gatekeeperEncoreOption}).
		Return(gatekeeperEncoreOption, nil)
	prompt.On("CaptureYesNo",
		"To help prevent bots even more, do you want to expire the gatekeeper token on each mint?").
		Return(true, nil)

	prompt.On("CapturePubkey", "What is your WL token mint address?").Return(testAddr2, nil)
	prompt.On("CaptureYesNo", "Do you want the whitelist token to be burned on each mint?").
		Return(true, nil)
	prompt.On("CaptureYesNo", "Do you want to enable presale mint with your whitelist token?").
		Return(true, nil)
	discount := 0.5
	prompt.On("CaptureOptionalFloat",
		"What is the discount price for the presale? Hit [ENTER] to not set a discount price.",
		mock.Anything).Return(&discount, nil)

	prompt.On("CaptureList", "What end settings type do you want to use?",
		[]string{endSettingAmountOption, endSettingDateOption}).
		Return(endSettingAmountOption, nil)
	prompt.On("CapturePositiveInt", "What is the amount to stop the mint?",
		[]prompts.Comparator{
			{
				Label: "the number of items in the candy machine",
				Type:  prompts.LessThanEq,
				Value: uint64(100),
			},
		}).Return(80, nil)

	prompt.On("CaptureValidatedString", mock.MatchedBy(func(promptStr string) bool {
		return strings.Contains(promptStr, "prefix name")
	}), mock.Anything).Return("My NFT", nil)
	prompt.On("CaptureValidatedString", "What is URI to be used for each mint?", mock.Anything).
		Return("https://example.com/nft.json", nil)

	prompt.On("CapturePositiveIntWithDefault", mock.MatchedBy(func(promptStr string) bool {
		return strings.Contains(promptStr, "freeze")
	}), mock.Anything, "31").Return(31, nil)

	prompt.On("CaptureList", "What upload method do you want to use?",
		[]string{uploadBundlrOption, uploadAwsOption, uploadNftStorageOption, uploadShdwOption}).
		Return(uploadAwsOption, nil)
	prompt.On("CaptureValidatedString", "What is the AWS S3 bucket name?", mock.Anything).
		Return("my-bucket", nil)
	prompt.On("CaptureStringWithDefault", "What is the AWS profile name?", constants.AWSDefaultProfile).
		Return("default", nil)
	prompt.On("CaptureStringAllowEmpty", mock.MatchedBy(func(promptStr string) bool {
		return strings.Contains(promptStr, "destination directory")
	})).Return("assets", nil)

	app := newTestApp(t, prompt, solana)
	data, err := CreateConfigData(app)
	require.NoError(err)

	require.Nil(data.SolTreasuryAccount)
	require.Equal(testAddr1, *data.SplToken)
	require.Equal(testAddr2, *data.SplTokenAccount)

	require.NotNil(data.Gatekeeper)
	require.Equal(constants.EncoreGatekeeperNetwork, data.Gatekeeper.Network)
	require.True(data.Gatekeeper.ExpireOnUse)

	require.NotNil(data.WhitelistMintSettings)
	require.Equal(testAddr2, data.WhitelistMintSettings.Mint)
	require.Equal(models.BurnEveryTime, data.WhitelistMintSettings.Mode)
	require.True(data.WhitelistMintSettings.Presale)
	require.Equal(0.5, *data.WhitelistMintSettings.DiscountPrice)

	require.NotNil(data.EndSettings)
	require.Equal(models.EndSettingAmount, data.EndSettings.EndSettingType)
	require.Equal(uint64(80), *data.EndSettings.Number)
	require.Nil(data.EndSettings.Date)

	require.NotNil(data.HiddenSettings)
	require.Equal("My NFT", data.HiddenSettings.Name)
	require.Equal("https://example.com/nft.json", data.HiddenSettings.URI)
	require.Empty(data.HiddenSettings.Hash)

	require.NotNil(data.FreezeTime)
	require.Equal(int64(31*constants.SecondsPerDay), *data.FreezeTime)

	require.Equal(models.AWS, data.UploadMethod)
	require.NotNil(data.AwsConfig)
	require.Equal("my-bucket", data.AwsConfig.Bucket)
	require.Equal("default", data.AwsConfig.Profile)
	require.Equal("assets", data.AwsConfig.Directory)
	prompt.AssertExpectations(t)
}

func TestCapturePubkeyOnChainRetriesMissingAccount(t *testing.T) {
	require := require.New(t)
	prompt := &mocks.Prompter{}
	prompt.On("CapturePubkey", "What is your SPL token mint address?").
		Return(testAddr1, nil).Once()
	prompt.On("CapturePubkey", "What is your SPL token mint address?").
		Return(testAddr2, nil).Once()

	solana := &fakeSolana{
		mintErrs: map[string]error{
			testAddr1: solanaclient.ErrAccountNotFound,
		},
	}
	app := newTestApp(t, prompt, solana)
	w := &wizard{app: app}

	address, err := w.capturePubkeyOnChain("What is your SPL token mint address?", app.Solana.ResolveMint)
	require.NoError(err)
	require.Equal(testAddr2, address)
	prompt.AssertExpectations(t)
}

func TestCapturePubkeyOnChainFailsWhenUnreachable(t *testing.T) {
	require := require.New(t)
	prompt := &mocks.Prompter{}
	prompt.On("CapturePubkey", "What is your SPL token mint address?").
		Return(testAddr1, nil).Once()

	rpcErr := errors.New("connection refused")
	solana := &fakeSolana{
		mintErrs: map[string]error{testAddr1: rpcErr},
	}
	app := newTestApp(t, prompt, solana)
	w := &wizard{app: app}

	_, err := w.capturePubkeyOnChain("What is your SPL token mint address?", app.Solana.ResolveMint)
	require.ErrorIs(err, rpcErr)
	prompt.AssertExpectations(t)
}

func TestShareValidator(t *testing.T) {
	require := require.New(t)

	first := shareValidator(0, false)
	require.NoError(first(60))
	require.Error(first(101))
	require.Error(first(-1))

	last := shareValidator(60, true)
	require.NoError(last(40))
	require.Error(last(50))
	require.Error(last(30))
}

func TestCreateConfigDataPromptErrorAborts(t *testing.T) {
	require := require.New(t)
	prompt := &mocks.Prompter{}
	promptErr := errors.New("interrupted")
	prompt.On("CaptureFloat", "What is the price of each NFT?", mock.Anything).
		Return(0.0, promptErr)

	app := newTestApp(t, prompt, &fakeSolana{})
	_, err := CreateConfigData(app)
	require.ErrorIs(err, promptErr)
}
