// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// CreateCredentialRequest carries the plaintext fields of a new credential
// entry. Password is the only field that is encrypted at rest.
type CreateCredentialRequest struct {
	OwnerID  int64  `json:"-"`
	Title    string `json:"title"`
	Username string `json:"username,omitempty"`
	Password string `json:"password"`
	URL      string `json:"url,omitempty"`
	Category string `json:"category,omitempty"`
	Notes    string `json:"notes,omitempty"`
}

// CredentialPatch is a partial update of a credential entry.
// Only non-nil fields are applied.
type CredentialPatch struct {
	Title    *string `json:"title,omitempty"`
	Username *string `json:"username,omitempty"`
	Password *string `json:"password,omitempty"`
	URL      *string `json:"url,omitempty"`
	Category *string `json:"category,omitempty"`
	Notes    *string `json:"notes,omitempty"`
}

// Credential is the decrypted public projection of a credential entry.
//
// Password is nil when it was never set or could not be decrypted; in the
// latter case its name is listed in FieldErrors and HasError is true.
type Credential struct {
	ID          string    `json:"id"`
	OwnerID     int64     `json:"ownerId"`
	Title       string    `json:"title"`
	Username    string    `json:"username,omitempty"`
	Password    *string   `json:"password"`
	URL         string    `json:"url,omitempty"`
	Category    string    `json:"category,omitempty"`
	Notes       string    `json:"notes,omitempty"`
	FieldErrors []string  `json:"fieldErrors,omitempty"`
	HasError    bool      `json:"hasError"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}
