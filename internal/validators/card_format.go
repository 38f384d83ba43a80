// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"regexp"
	"strings"
)

var (
	cardNumberPattern = regexp.MustCompile(`^[0-9]{13,19}$`)
	expiryPattern     = regexp.MustCompile(`^(0[1-9]|1[0-2])/[0-9]{2}$`)
	cvvPattern        = regexp.MustCompile(`^[0-9]{3,4}$`)
)

// NormalizeCardNumber strips the spaces and dashes people type between
// digit groups. It does not check that the result is valid.
func NormalizeCardNumber(number string) string {
	return strings.NewReplacer(" ", "", "-", "").Replace(strings.TrimSpace(number))
}

// Last4Digits returns the last four digits of a normalized card number, or
// the whole number if it is shorter.
func Last4Digits(number string) string {
	n := NormalizeCardNumber(number)
	if len(n) <= 4 {
		return n
	}
	return n[len(n)-4:]
}

func isValidCardNumber(number string) bool {
	return cardNumberPattern.MatchString(NormalizeCardNumber(number))
}

func isValidExpiryDate(expiry string) bool {
	return expiryPattern.MatchString(strings.TrimSpace(expiry))
}

func isValidCVV(cvv string) bool {
	return cvvPattern.MatchString(cvv)
}
