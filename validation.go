package digitalstock

import (
	"regexp"
	"strings"

	"github.com/Rhymond/go-money"
)

// codeRe is the allowed character set for product codes.
var codeRe = regexp.MustCompile(`^[A-Za-z0-9-]+$`)

// NormalizeCode returns the canonical form of a product code, used as the
// uniqueness key within an inventory.
func NormalizeCode(code string) string {
	return strings.ToLower(strings.TrimSpace(code))
}

func validateCode(code string) error {
	if strings.TrimSpace(code) == "" {
		return &ValidationError{Field: "code", Reason: "must not be empty"}
	}
	if !codeRe.MatchString(code) {
		return &ValidationError{Field: "code", Reason: "only letters, digits and hyphens are allowed"}
	}
	return nil
}

func validateName(name string) error {
	if strings.TrimSpace(name) == "" {
		return &ValidationError{Field: "name", Reason: "must not be empty"}
	}
	return nil
}

// ValidateCurrency checks that the given code is a known ISO 4217 currency.
func ValidateCurrency(code string) error {
	if money.GetCurrency(code) == nil {
		return &ValidationError{Field: "currency", Reason: "unknown currency code " + code}
	}
	return nil
}
