package utils

import (
	"fmt"
	"strings"

	sdkmath "cosmossdk.io/math"
	"github.com/spf13/cast"
)

// ParseAmount parses a non-negative decimal amount in the smallest currency
// unit. Underscores may be used as digit separators, e.g. 1_000_000.
func ParseAmount(s string) (sdkmath.Uint, error) {
	clean := strings.ReplaceAll(strings.TrimSpace(s), "_", "")
	if clean == "" {
		return sdkmath.Uint{}, fmt.Errorf("amount is empty")
	}
	if strings.IndexFunc(clean, func(r rune) bool { return r < '0' || r > '9' }) >= 0 {
		return sdkmath.Uint{}, fmt.Errorf("invalid amount %q: only decimal digits are allowed", s)
	}
	if clean = strings.TrimLeft(clean, "0"); clean == "" {
		clean = "0"
	}
	amount, err := sdkmath.ParseUint(clean)
	if err != nil {
		return sdkmath.Uint{}, fmt.Errorf("invalid amount %q: %w", s, err)
	}
	return amount, nil
}

// ParseProposalID parses a proposal id given on the command line or in a URL.
func ParseProposalID(s string) (uint64, error) {
	return parseDecimalUint64("proposal id", s)
}

// ParseDatasetVersion parses a dataset version number. Versions start at 1.
func ParseDatasetVersion(s string) (uint64, error) {
	version, err := parseDecimalUint64("dataset version", s)
	if err != nil {
		return 0, err
	}
	if version == 0 {
		return 0, fmt.Errorf("invalid dataset version %q: versions start at 1", s)
	}
	return version, nil
}

func parseDecimalUint64(what, s string) (uint64, error) {
	s = strings.TrimSpace(s)
	if s == "" || strings.IndexFunc(s, func(r rune) bool { return r < '0' || r > '9' }) >= 0 {
		return 0, fmt.Errorf("invalid %s %q", what, s)
	}
	// cast parses with base prefixes, so a leading zero would read as octal
	if trimmed := strings.TrimLeft(s, "0"); trimmed != "" {
		s = trimmed
	} else {
		s = "0"
	}
	n, err := cast.ToUint64E(s)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: %w", what, s, err)
	}
	return n, nil
}
