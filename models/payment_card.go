// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// CreatePaymentCardRequest carries the plaintext fields of a new payment card.
// CardNumber, CardholderName, ExpiryDate and CVV are encrypted at rest.
type CreatePaymentCardRequest struct {
	OwnerID        int64  `json:"-"`
	CardNumber     string `json:"cardNumber"`
	CardholderName string `json:"cardholderName"`
	ExpiryDate     string `json:"expiryDate"`
	CVV            string `json:"cvv"`
	BankName       string `json:"bankName,omitempty"`
	Category       string `json:"category,omitempty"`
	Notes          string `json:"notes,omitempty"`
}

// PaymentCardPatch is a partial update of a payment card.
// Only non-nil fields are applied.
type PaymentCardPatch struct {
	CardNumber     *string `json:"cardNumber,omitempty"`
	CardholderName *string `json:"cardholderName,omitempty"`
	ExpiryDate     *string `json:"expiryDate,omitempty"`
	CVV            *string `json:"cvv,omitempty"`
	BankName       *string `json:"bankName,omitempty"`
	Category       *string `json:"category,omitempty"`
	Notes          *string `json:"notes,omitempty"`
}

// PaymentCard is the decrypted public projection of a payment card.
//
// Each sensitive field is nil when it was never set or could not be
// decrypted. Last4Digits is stored in plaintext and is always available.
type PaymentCard struct {
	ID             string    `json:"id"`
	OwnerID        int64     `json:"ownerId"`
	CardNumber     *string   `json:"cardNumber"`
	CardholderName *string   `json:"cardholderName"`
	ExpiryDate     *string   `json:"expiryDate"`
	CVV            *string   `json:"cvv"`
	Last4Digits    string    `json:"last4Digits"`
	BankName       string    `json:"bankName,omitempty"`
	Category       string    `json:"category,omitempty"`
	Notes          string    `json:"notes,omitempty"`
	FieldErrors    []string  `json:"fieldErrors,omitempty"`
	HasError       bool      `json:"hasError"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}
