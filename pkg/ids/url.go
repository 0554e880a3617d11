// SPDX-FileCopyrightText: Copyright 2026 The wotengine Authors
// SPDX-License-Identifier: Apache-2.0

package ids

// URL is an opaque, value-compared repository/identity location. Unlike
// net/url.URL it carries no parsed structure: the engine only ever
// compares URLs for equality (to decide whether a proof was fetched from
// an identity's own declared location) and never dereferences them.
type URL string

// Equal reports whether two URLs refer to the same location.
func (u URL) Equal(other URL) bool {
	return u == other
}

// String implements fmt.Stringer.
func (u URL) String() string {
	return string(u)
}

// PublicID pairs an Id with the URL it self-claims, as carried on the
// `from` field of a proof and on the `to` list of a Trust proof.
type PublicID struct {
	ID  Id
	URL *URL // nil if the identity declared no URL
}
