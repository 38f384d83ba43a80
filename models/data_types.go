// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// RecordKind defines the semantic type of a sensitive record.
// The value determines which field descriptors the codec applies to the
// record's stored attributes.
type RecordKind string

const (
	// KindCredential represents a login entry whose only sensitive field is
	// the password.
	KindCredential RecordKind = "credential"

	// KindPaymentCard represents payment card information. Number,
	// cardholder name, expiry and security code are all encrypted.
	KindPaymentCard RecordKind = "payment_card"
)

// String implements fmt.Stringer.
func (k RecordKind) String() string {
	return string(k)
}
