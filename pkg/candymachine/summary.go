// Copyright (C) 2022-2025, Solana Playground. All rights reserved.
// See the file LICENSE for licensing terms.
package candymachine

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/alexcolls/solana-playground/pkg/constants"
	"github.com/alexcolls/solana-playground/pkg/models"
	"github.com/alexcolls/solana-playground/pkg/ux"
)

const unsetValue = "(unset)"

// PrintSummary renders the finished config as a table so the operator
// can review it before deciding where it goes.
func PrintSummary(data *models.ConfigData) {
	rows := [][]string{
		{"Price", strconv.FormatFloat(data.Price, 'f', -1, 64)},
		{"Number of NFTs", ux.FormatCount(data.Number)},
		{"Symbol", orUnset(data.Symbol)},
		{"Seller fee basis points", strconv.Itoa(int(data.SellerFeeBasisPoints))},
		{"Go live date", derefOrUnset(data.GoLiveDate)},
		{"Creators", formatCreators(data.Creators)},
		{"Treasury", formatTreasury(data)},
		{"Gatekeeper", formatGatekeeper(data.Gatekeeper)},
		{"Whitelist mint", formatWhitelist(data.WhitelistMintSettings)},
		{"End settings", formatEndSettings(data.EndSettings)},
		{"Hidden settings", formatHiddenSettings(data.HiddenSettings)},
		{"Freeze time", formatFreezeTime(data.FreezeTime)},
		{"Upload method", formatUploadMethod(data)},
		{"Retain authority", formatBool(data.RetainAuthority)},
		{"Mutable", formatBool(data.IsMutable)},
	}
	ux.Logger.PrintTableToUser([]string{"Setting", "Value"}, rows)
}

func formatCreators(creators []models.Creator) string {
	parts := make([]string, 0, len(creators))
	for _, creator := range creators {
		parts = append(parts, fmt.Sprintf("%s (%d%%)", creator.Address, creator.Share))
	}
	return strings.Join(parts, "\n")
}

func formatTreasury(data *models.ConfigData) string {
	if data.SolTreasuryAccount != nil {
		return fmt.Sprintf("SOL account %s", *data.SolTreasuryAccount)
	}
	if data.SplToken != nil && data.SplTokenAccount != nil {
		return fmt.Sprintf("SPL token %s\npaid into %s", *data.SplToken, *data.SplTokenAccount)
	}
	return unsetValue
}

func formatGatekeeper(gatekeeper *models.GatekeeperConfig) string {
	if gatekeeper == nil {
		return unsetValue
	}
	expire := "kept"
	if gatekeeper.ExpireOnUse {
		expire = "expired on use"
	}
	return fmt.Sprintf("%s, token %s", gatekeeper.Network, expire)
}

func formatWhitelist(settings *models.WhitelistMintSettings) string {
	if settings == nil {
		return unsetValue
	}
	parts := []string{fmt.Sprintf("mint %s", settings.Mint), settings.Mode.String()}
	if settings.Presale {
		parts = append(parts, "presale enabled")
	}
	if settings.DiscountPrice != nil {
		parts = append(parts, fmt.Sprintf("discount price %s",
			strconv.FormatFloat(*settings.DiscountPrice, 'f', -1, 64)))
	}
	return strings.Join(parts, "\n")
}

func formatEndSettings(settings *models.EndSettings) string {
	if settings == nil {
		return unsetValue
	}
	if settings.EndSettingType == models.EndSettingAmount && settings.Number != nil {
		return fmt.Sprintf("stop after %s mints", ux.FormatCount(*settings.Number))
	}
	if settings.Date != nil {
		return fmt.Sprintf("stop at %s", *settings.Date)
	}
	return unsetValue
}

func formatHiddenSettings(settings *models.HiddenSettings) string {
	if settings == nil {
		return unsetValue
	}
	return fmt.Sprintf("name %s\nuri %s", settings.Name, settings.URI)
}

func formatFreezeTime(seconds *int64) string {
	if seconds == nil {
		return unsetValue
	}
	days := *seconds / constants.SecondsPerDay
	if days == 1 {
		return "1 day"
	}
	return fmt.Sprintf("%d days", days)
}

func formatUploadMethod(data *models.ConfigData) string {
	switch data.UploadMethod {
	case models.AWS:
		if data.AwsConfig != nil {
			return fmt.Sprintf("AWS bucket %s", data.AwsConfig.Bucket)
		}
	case models.SHDW:
		if data.ShdwStorageAccount != nil {
			return fmt.Sprintf("SHDW account %s", *data.ShdwStorageAccount)
		}
	}
	return data.UploadMethod.String()
}

func formatBool(value bool) string {
	if value {
		return "yes"
	}
	return "no"
}

func derefOrUnset(value *string) string {
	if value == nil {
		return unsetValue
	}
	return orUnset(*value)
}

func orUnset(value string) string {
	if value == "" {
		return unsetValue
	}
	return value
}
