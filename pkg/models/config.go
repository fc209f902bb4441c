// Copyright (C) 2022-2025, Solana Playground. All rights reserved.
// See the file LICENSE for licensing terms.
package models

import (
	"encoding/json"
	"fmt"
)

// UploadMethod selects where assets are uploaded during deploy.
type UploadMethod int64

const (
	Bundlr UploadMethod = iota
	AWS
	NFTStorage
	SHDW
)

var uploadMethodNames = map[UploadMethod]string{
	Bundlr:     "bundlr",
	AWS:        "aws",
	NFTStorage: "nftStorage",
	SHDW:       "shdw",
}

func (u UploadMethod) String() string {
	if name, ok := uploadMethodNames[u]; ok {
		return name
	}
	return "unknown"
}

func (u UploadMethod) MarshalJSON() ([]byte, error) {
	name, ok := uploadMethodNames[u]
	if !ok {
		return nil, fmt.Errorf("unknown upload method %d", u)
	}
	return json.Marshal(name)
}

func (u *UploadMethod) UnmarshalJSON(data []byte) error {
	var name string
	if err := json.Unmarshal(data, &name); err != nil {
		return err
	}
	for method, methodName := range uploadMethodNames {
		if methodName == name {
			*u = method
			return nil
		}
	}
	return fmt.Errorf("unknown upload method %q", name)
}

// EndSettingType selects how the mint ends.
type EndSettingType int64

const (
	EndSettingAmount EndSettingType = iota
	EndSettingDate
)

var endSettingTypeNames = map[EndSettingType]string{
	EndSettingAmount: "amount",
	EndSettingDate:   "date",
}

func (e EndSettingType) String() string {
	if name, ok := endSettingTypeNames[e]; ok {
		return name
	}
	return "unknown"
}

func (e EndSettingType) MarshalJSON() ([]byte, error) {
	name, ok := endSettingTypeNames[e]
	if !ok {
		return nil, fmt.Errorf("unknown end setting type %d", e)
	}
	return json.Marshal(name)
}

func (e *EndSettingType) UnmarshalJSON(data []byte) error {
	var name string
	if err := json.Unmarshal(data, &name); err != nil {
		return err
	}
	for typ, typName := range endSettingTypeNames {
		if typName == name {
			*e = typ
			return nil
		}
	}
	return fmt.Errorf("unknown end setting type %q", name)
}

// WhitelistMintMode controls what happens to the whitelist token on mint.
type WhitelistMintMode int64

const (
	BurnEveryTime WhitelistMintMode = iota
	NeverBurn
)

var whitelistMintModeNames = map[WhitelistMintMode]string{
	BurnEveryTime: "burnEveryTime",
	NeverBurn:     "neverBurn",
}

func (w WhitelistMintMode) String() string {
	if name, ok := whitelistMintModeNames[w]; ok {
		return name
	}
	return "unknown"
}

func (w WhitelistMintMode) MarshalJSON() ([]byte, error) {
	name, ok := whitelistMintModeNames[w]
	if !ok {
		return nil, fmt.Errorf("unknown whitelist mint mode %d", w)
	}
	return json.Marshal(name)
}

func (w *WhitelistMintMode) UnmarshalJSON(data []byte) error {
	var name string
	if err := json.Unmarshal(data, &name); err != nil {
		return err
	}
	for mode, modeName := range whitelistMintModeNames {
		if modeName == name {
			*w = mode
			return nil
		}
	}
	return fmt.Errorf("unknown whitelist mint mode %q", name)
}

// Creator is one royalty recipient. Verified is always false at creation,
// verification happens on chain after deploy.
type Creator struct {
	Address  string `json:"address"`
	Share    uint8  `json:"share"`
	Verified bool   `json:"verified"`
}

type GatekeeperConfig struct {
	Network     string `json:"gatekeeperNetwork"`
	ExpireOnUse bool   `json:"expireOnUse"`
}

type WhitelistMintSettings struct {
	Mint          string            `json:"mint"`
	Mode          WhitelistMintMode `json:"mode"`
	Presale       bool              `json:"presale"`
	DiscountPrice *float64          `json:"discountPrice"`
}

// EndSettings is a tagged variant: Amount carries Number, Date carries Date.
type EndSettings struct {
	EndSettingType EndSettingType `json:"endSettingType"`
	Number         *uint64        `json:"number,omitempty"`
	Date           *string        `json:"date,omitempty"`
}

type HiddenSettings struct {
	Name string `json:"name"`
	URI  string `json:"uri"`
	Hash []byte `json:"hash"`
}

type AwsConfig struct {
	Bucket    string `json:"bucket"`
	Profile   string `json:"profile"`
	Directory string `json:"directory"`
}

// ConfigData is the candy machine configuration document. Optional
// features are pointers so that unselected features serialize as an
// explicit null rather than disappearing from the file.
type ConfigData struct {
	Price                float64                `json:"price"`
	Number               uint64                 `json:"number"`
	Symbol               string                 `json:"symbol"`
	SellerFeeBasisPoints uint16                 `json:"sellerFeeBasisPoints"`
	GoLiveDate           *string                `json:"goLiveDate"`
	Creators             []Creator              `json:"creators"`
	SolTreasuryAccount   *string                `json:"solTreasuryAccount"`
	SplToken             *string                `json:"splToken"`
	SplTokenAccount      *string                `json:"splTokenAccount"`
	Gatekeeper           *GatekeeperConfig      `json:"gatekeeper"`
	WhitelistMintSettings *WhitelistMintSettings `json:"whitelistMintSettings"`
	EndSettings          *EndSettings           `json:"endSettings"`
	HiddenSettings       *HiddenSettings        `json:"hiddenSettings"`
	FreezeTime           *int64                 `json:"freezeTime"`
	UploadMethod         UploadMethod           `json:"uploadMethod"`
	AwsConfig            *AwsConfig             `json:"awsConfig"`
	NftStorageAuthToken  *string                `json:"nftStorageAuthToken"`
	ShdwStorageAccount   *string                `json:"shdwStorageAccount"`
	RetainAuthority      bool                   `json:"retainAuthority"`
	IsMutable            bool                   `json:"isMutable"`
}

// Pretty serializes the document to the stable, human readable form used
// both for writing the config file and for logging it to the console.
func (c *ConfigData) Pretty() ([]byte, error) {
	return json.MarshalIndent(c, "", "  ")
}
