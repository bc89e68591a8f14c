package steam

import (
	"math"
	"strconv"

	serrors "github.com/matzehuels/sudet/pkg/errors"
)

// SteamID64Base is the 64-bit SteamID of account 0 in the public universe
// (universe 1, individual account type, desktop instance).
const SteamID64Base uint64 = 76561197960265728

// AccountIDFromSteamID64 returns the 32-bit account ID embedded in an
// individual account's 64-bit SteamID.
func AccountIDFromSteamID64(steamID string) (string, error) {
	if err := serrors.ValidateSteamID64(steamID); err != nil {
		return "", err
	}
	id, _ := strconv.ParseUint(steamID, 10, 64)
	if id < SteamID64Base || id-SteamID64Base > math.MaxUint32 {
		return "", serrors.New(serrors.ErrCodeInvalidID, "%s is not an individual account SteamID", steamID)
	}
	return strconv.FormatUint(id-SteamID64Base, 10), nil
}

// SteamID64FromAccountID returns the 64-bit SteamID of an individual account.
func SteamID64FromAccountID(accountID string) (string, error) {
	if err := serrors.ValidateAccountID(accountID); err != nil {
		return "", err
	}
	id, _ := strconv.ParseUint(accountID, 10, 32)
	return strconv.FormatUint(SteamID64Base+id, 10), nil
}
