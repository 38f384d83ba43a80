// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package codec

import "errors"

var (
	// ErrInvalidDescriptors is returned by [New] when the descriptor list is
	// empty, has a blank name or reuses a name or storage attribute.
	ErrInvalidDescriptors = errors.New("invalid field descriptors")

	// ErrUnknownField is returned by [Codec.EncodePatch] for a logical field
	// that is not declared for the entity.
	ErrUnknownField = errors.New("unknown sensitive field")

	// ErrEncodingField is returned by [Codec.EncodePatch] when a field could
	// not be encrypted. No partial patch is returned alongside it.
	ErrEncodingField = errors.New("error encoding sensitive field")
)
