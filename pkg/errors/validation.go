package errors

import (
	"strconv"
	"strings"
	"unicode"
)

// ValidateSteamID64 validates a 64-bit Steam ID as it appears in
// loginusers.vdf and in community API requests.
//
// Validation rules:
//   - ID cannot be empty
//   - Only ASCII digits
//   - Must fit in an unsigned 64-bit integer
func ValidateSteamID64(id string) error {
	if err := validateDigits("steam ID", id, 20); err != nil {
		return err
	}
	if _, err := strconv.ParseUint(id, 10, 64); err != nil {
		return Wrap(ErrCodeInvalidID, err, "steam ID out of range: %q", id)
	}
	return nil
}

// ValidateAccountID validates a 32-bit account ID. Account IDs name
// directories under userdata/, so anything other than digits is rejected
// before the ID is joined into a path.
func ValidateAccountID(id string) error {
	if err := validateDigits("account ID", id, 10); err != nil {
		return err
	}
	if _, err := strconv.ParseUint(id, 10, 32); err != nil {
		return Wrap(ErrCodeInvalidID, err, "account ID out of range: %q", id)
	}
	return nil
}

// ValidateAppID validates an app ID taken from localconfig.vdf before it is
// sent to the store API.
func ValidateAppID(id string) error {
	if err := validateDigits("app ID", id, 10); err != nil {
		return err
	}
	if _, err := strconv.ParseUint(id, 10, 32); err != nil {
		return Wrap(ErrCodeInvalidID, err, "app ID out of range: %q", id)
	}
	return nil
}

// ValidateOutputDir validates a user-supplied output directory.
//
// Validation rules:
//   - Path cannot be empty or only whitespace
//   - No null bytes or control characters
func ValidateOutputDir(path string) error {
	if strings.TrimSpace(path) == "" {
		return New(ErrCodeInvalidInput, "output directory cannot be empty")
	}
	for _, r := range path {
		if r == '\x00' || unicode.IsControl(r) {
			return New(ErrCodeInvalidInput, "output directory contains invalid characters")
		}
	}
	return nil
}

func validateDigits(what, id string, maxLen int) error {
	if id == "" {
		return New(ErrCodeInvalidID, "%s cannot be empty", what)
	}
	if len(id) > maxLen {
		return New(ErrCodeInvalidID, "%s too long (max %d digits)", what, maxLen)
	}
	for _, r := range id {
		if r < '0' || r > '9' {
			return New(ErrCodeInvalidID, "%s must contain only digits: %q", what, id)
		}
	}
	return nil
}
