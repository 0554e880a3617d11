// SPDX-FileCopyrightText: Copyright 2026 The wotengine Authors
// SPDX-License-Identifier: Apache-2.0

// Package ids defines the opaque, hashable value types that identify
// actors and artifacts in the web-of-trust graph: cryptographic
// identities, URLs, packages, package versions and digests.
//
// Every type here is a plain value object crossing the boundary to the
// ProofCodec collaborator (see the proof package) and is safe to use as a
// map key.
package ids

import (
	"encoding/hex"
	"fmt"

	"github.com/google/uuid"
)

// Id is an opaque cryptographic identity. It wraps a UUID-shaped 16-byte
// value so it is cheap to copy, hash and compare without pulling in a
// particular signature scheme — the scheme itself lives with the
// ProofCodec collaborator, outside this module.
type Id struct {
	raw uuid.UUID
}

// NewId builds an Id from 16 raw bytes. Callers (normally the
// ProofCodec collaborator) are responsible for deriving these bytes from
// the actual public key material; this module never interprets them.
func NewId(raw [16]byte) Id {
	return Id{raw: uuid.UUID(raw)}
}

// ParseId parses the hex or UUID-formatted string form of an Id.
func ParseId(s string) (Id, error) {
	u, err := uuid.Parse(s)
	if err != nil {
		if b, hexErr := hex.DecodeString(s); hexErr == nil && len(b) == 16 {
			var raw [16]byte
			copy(raw[:], b)
			return NewId(raw), nil
		}
		return Id{}, fmt.Errorf("parse id %q: %w", s, err)
	}
	return Id{raw: u}, nil
}

// String renders the Id in its canonical UUID form.
func (id Id) String() string {
	return id.raw.String()
}

// Bytes returns the underlying 16 raw bytes.
func (id Id) Bytes() [16]byte {
	return id.raw
}

// Compare gives Id a total order, used to break ties deterministically in
// the trust frontier.
func (id Id) Compare(other Id) int {
	for i := range id.raw {
		if id.raw[i] != other.raw[i] {
			if id.raw[i] < other.raw[i] {
				return -1
			}
			return 1
		}
	}
	return 0
}

// IsZero reports whether this is the zero-value Id.
func (id Id) IsZero() bool {
	return id.raw == uuid.UUID{}
}
