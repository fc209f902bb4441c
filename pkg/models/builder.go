// Copyright (C) 2022-2025, Solana Playground. All rights reserved.
// See the file LICENSE for licensing terms.
package models

import (
	"fmt"
	"sort"

	"github.com/alexcolls/solana-playground/pkg/constants"
)

// Field names tracked by the builder. Every one of them must be resolved
// (set, or explicitly marked absent for optional features) before Build
// hands out a document.
const (
	fieldPrice        = "price"
	fieldNumber       = "number"
	fieldSymbol       = "symbol"
	fieldSellerFee    = "sellerFeeBasisPoints"
	fieldGoLiveDate   = "goLiveDate"
	fieldCreators     = "creators"
	fieldTreasury     = "treasury"
	fieldGatekeeper   = "gatekeeper"
	fieldWhitelist    = "whitelistMintSettings"
	fieldEndSettings  = "endSettings"
	fieldHidden       = "hiddenSettings"
	fieldFreeze       = "freezeTime"
	fieldUploadMethod = "uploadMethod"
	fieldRetainAuth   = "retainAuthority"
	fieldIsMutable    = "isMutable"
)

var allFields = []string{
	fieldPrice,
	fieldNumber,
	fieldSymbol,
	fieldSellerFee,
	fieldGoLiveDate,
	fieldCreators,
	fieldTreasury,
	fieldGatekeeper,
	fieldWhitelist,
	fieldEndSettings,
	fieldHidden,
	fieldFreeze,
	fieldUploadMethod,
	fieldRetainAuth,
	fieldIsMutable,
}

// ConfigBuilder accumulates wizard answers into a ConfigData. Each field
// may be assigned exactly once; Build refuses to emit a document until
// every field has been resolved, so a consumer can never observe a
// half-assembled config.
type ConfigBuilder struct {
	doc      ConfigData
	resolved map[string]bool
}

func NewConfigBuilder() *ConfigBuilder {
	return &ConfigBuilder{
		resolved: map[string]bool{},
	}
}

func (b *ConfigBuilder) resolve(field string) error {
	if b.resolved[field] {
		return fmt.Errorf("field %s has already been set", field)
	}
	b.resolved[field] = true
	return nil
}

func (b *ConfigBuilder) SetPrice(price float64) error {
	if price <= 0 {
		return fmt.Errorf("price must be greater than zero, got %f", price)
	}
	if err := b.resolve(fieldPrice); err != nil {
		return err
	}
	b.doc.Price = price
	return nil
}

func (b *ConfigBuilder) SetNumber(number uint64) error {
	if number == 0 {
		return fmt.Errorf("number of items must be greater than zero")
	}
	if err := b.resolve(fieldNumber); err != nil {
		return err
	}
	b.doc.Number = number
	return nil
}

func (b *ConfigBuilder) SetSymbol(symbol string) error {
	if len(symbol) > constants.MaxSymbolLength {
		return fmt.Errorf("symbol must be %d characters or less", constants.MaxSymbolLength)
	}
	if err := b.resolve(fieldSymbol); err != nil {
		return err
	}
	b.doc.Symbol = symbol
	return nil
}

func (b *ConfigBuilder) SetSellerFeeBasisPoints(bps uint16) error {
	if bps > constants.MaxSellerFeeBasisPoints {
		return fmt.Errorf("seller fee basis points must be %d or less", constants.MaxSellerFeeBasisPoints)
	}
	if err := b.resolve(fieldSellerFee); err != nil {
		return err
	}
	b.doc.SellerFeeBasisPoints = bps
	return nil
}

func (b *ConfigBuilder) SetGoLiveDate(date string) error {
	if err := b.resolve(fieldGoLiveDate); err != nil {
		return err
	}
	b.doc.GoLiveDate = &date
	return nil
}

func (b *ConfigBuilder) ClearGoLiveDate() error {
	if err := b.resolve(fieldGoLiveDate); err != nil {
		return err
	}
	b.doc.GoLiveDate = nil
	return nil
}

func (b *ConfigBuilder) SetCreators(creators []Creator) error {
	if len(creators) == 0 || len(creators) > constants.MaxCreatorLimit {
		return fmt.Errorf("number of creators must be between 1 and %d, got %d",
			constants.MaxCreatorLimit, len(creators))
	}
	total := 0
	for _, creator := range creators {
		total += int(creator.Share)
	}
	if total != constants.MaxShareTotal {
		return fmt.Errorf("creator shares must total exactly %d percent, got %d",
			constants.MaxShareTotal, total)
	}
	if err := b.resolve(fieldCreators); err != nil {
		return err
	}
	b.doc.Creators = append([]Creator{}, creators...)
	return nil
}

// SetSolTreasury resolves the treasury as a plain SOL account. The SPL
// token fields are written as explicit nulls.
func (b *ConfigBuilder) SetSolTreasury(address string) error {
	if err := b.resolve(fieldTreasury); err != nil {
		return err
	}
	b.doc.SolTreasuryAccount = &address
	b.doc.SplToken = nil
	b.doc.SplTokenAccount = nil
	return nil
}

// SetSplTokenPayment resolves the treasury as SPL token payment: a mint
// plus the account that will hold the minted tokens.
func (b *ConfigBuilder) SetSplTokenPayment(mint, account string) error {
	if err := b.resolve(fieldTreasury); err != nil {
		return err
	}
	b.doc.SolTreasuryAccount = nil
	b.doc.SplToken = &mint
	b.doc.SplTokenAccount = &account
	return nil
}

func (b *ConfigBuilder) SetGatekeeper(network string, expireOnUse bool) error {
	if err := b.resolve(fieldGatekeeper); err != nil {
		return err
	}
	b.doc.Gatekeeper = &GatekeeperConfig{
		Network:     network,
		ExpireOnUse: expireOnUse,
	}
	return nil
}

func (b *ConfigBuilder) ClearGatekeeper() error {
	if err := b.resolve(fieldGatekeeper); err != nil {
		return err
	}
	b.doc.Gatekeeper = nil
	return nil
}

func (b *ConfigBuilder) SetWhitelist(settings WhitelistMintSettings) error {
	if err := b.resolve(fieldWhitelist); err != nil {
		return err
	}
	b.doc.WhitelistMintSettings = &settings
	return nil
}

func (b *ConfigBuilder) ClearWhitelist() error {
	if err := b.resolve(fieldWhitelist); err != nil {
		return err
	}
	b.doc.WhitelistMintSettings = nil
	return nil
}

func (b *ConfigBuilder) SetEndSettingsAmount(amount uint64) error {
	if b.resolved[fieldNumber] && amount > b.doc.Number {
		return fmt.Errorf("end settings amount cannot be more than the %d items in the candy machine",
			b.doc.Number)
	}
	if err := b.resolve(fieldEndSettings); err != nil {
		return err
	}
	b.doc.EndSettings = &EndSettings{
		EndSettingType: EndSettingAmount,
		Number:         &amount,
	}
	return nil
}

func (b *ConfigBuilder) SetEndSettingsDate(date string) error {
	if err := b.resolve(fieldEndSettings); err != nil {
		return err
	}
	b.doc.EndSettings = &EndSettings{
		EndSettingType: EndSettingDate,
		Date:           &date,
	}
	return nil
}

func (b *ConfigBuilder) ClearEndSettings() error {
	if err := b.resolve(fieldEndSettings); err != nil {
		return err
	}
	b.doc.EndSettings = nil
	return nil
}

func (b *ConfigBuilder) SetHiddenSettings(name, uri string) error {
	if len(name) > constants.MaxHiddenNameLength {
		return fmt.Errorf("hidden settings name must be %d characters or less", constants.MaxHiddenNameLength)
	}
	if len(uri) > constants.MaxHiddenURILength {
		return fmt.Errorf("hidden settings uri must be %d characters or less", constants.MaxHiddenURILength)
	}
	if err := b.resolve(fieldHidden); err != nil {
		return err
	}
	b.doc.HiddenSettings = &HiddenSettings{
		Name: name,
		URI:  uri,
		Hash: []byte{},
	}
	return nil
}

func (b *ConfigBuilder) ClearHiddenSettings() error {
	if err := b.resolve(fieldHidden); err != nil {
		return err
	}
	b.doc.HiddenSettings = nil
	return nil
}

// SetFreezeDays stores the freeze period, converted to seconds to match
// the on-chain candy machine value.
func (b *ConfigBuilder) SetFreezeDays(days int) error {
	if days < 0 || days > constants.MaxFreezeDays {
		return fmt.Errorf("freeze time must be between 0 and %d days, got %d",
			constants.MaxFreezeDays, days)
	}
	if err := b.resolve(fieldFreeze); err != nil {
		return err
	}
	seconds := int64(days) * constants.SecondsPerDay
	b.doc.FreezeTime = &seconds
	return nil
}

func (b *ConfigBuilder) ClearFreeze() error {
	if err := b.resolve(fieldFreeze); err != nil {
		return err
	}
	b.doc.FreezeTime = nil
	return nil
}

func (b *ConfigBuilder) SetUploadMethodBundlr() error {
	return b.setUploadMethod(Bundlr, nil, nil, nil)
}

func (b *ConfigBuilder) SetUploadMethodAWS(bucket, profile, directory string) error {
	return b.setUploadMethod(AWS, &AwsConfig{
		Bucket:    bucket,
		Profile:   profile,
		Directory: directory,
	}, nil, nil)
}

func (b *ConfigBuilder) SetUploadMethodNFTStorage(authToken string) error {
	return b.setUploadMethod(NFTStorage, nil, &authToken, nil)
}

func (b *ConfigBuilder) SetUploadMethodSHDW(storageAccount string) error {
	return b.setUploadMethod(SHDW, nil, nil, &storageAccount)
}

func (b *ConfigBuilder) setUploadMethod(
	method UploadMethod,
	awsConfig *AwsConfig,
	nftStorageAuthToken *string,
	shdwStorageAccount *string,
) error {
	if err := b.resolve(fieldUploadMethod); err != nil {
		return err
	}
	b.doc.UploadMethod = method
	b.doc.AwsConfig = awsConfig
	b.doc.NftStorageAuthToken = nftStorageAuthToken
	b.doc.ShdwStorageAccount = shdwStorageAccount
	return nil
}

func (b *ConfigBuilder) SetRetainAuthority(retain bool) error {
	if err := b.resolve(fieldRetainAuth); err != nil {
		return err
	}
	b.doc.RetainAuthority = retain
	return nil
}

func (b *ConfigBuilder) SetIsMutable(mutable bool) error {
	if err := b.resolve(fieldIsMutable); err != nil {
		return err
	}
	b.doc.IsMutable = mutable
	return nil
}

// Build returns the finished document. It fails if any field was never
// resolved, naming the missing ones.
func (b *ConfigBuilder) Build() (*ConfigData, error) {
	missing := []string{}
	for _, field := range allFields {
		if !b.resolved[field] {
			missing = append(missing, field)
		}
	}
	if len(missing) > 0 {
		sort.Strings(missing)
		return nil, fmt.Errorf("config is incomplete, unresolved fields: %v", missing)
	}
	doc := b.doc
	return &doc, nil
}
