// SPDX-FileCopyrightText: Copyright 2026 The wotengine Authors
// SPDX-License-Identifier: Apache-2.0

package ids

import (
	"fmt"

	hcversion "github.com/hashicorp/go-version"
)

// Version is a semver-comparable package version. It wraps
// hashicorp/go-version so the rest of the engine never depends on a
// particular semver library directly.
type Version struct {
	v *hcversion.Version
}

// ParseVersion parses a semver string into a Version.
func ParseVersion(s string) (Version, error) {
	v, err := hcversion.NewVersion(s)
	if err != nil {
		return Version{}, fmt.Errorf("parse version %q: %w", s, err)
	}
	return Version{v: v}, nil
}

// MustParseVersion is ParseVersion, panicking on error. Intended for
// constants and tests.
func MustParseVersion(s string) Version {
	v, err := ParseVersion(s)
	if err != nil {
		panic(err)
	}
	return v
}

// String renders the version in its original normalized form.
func (v Version) String() string {
	if v.v == nil {
		return ""
	}
	return v.v.String()
}

// Compare returns -1, 0 or 1 as v is less than, equal to, or greater than
// other, giving Version the total order required by the ordered
// Source→Name→Version tree.
func (v Version) Compare(other Version) int {
	if v.v == nil || other.v == nil {
		return 0
	}
	return v.v.Compare(other.v)
}

// LessThan reports whether v sorts before other.
func (v Version) LessThan(other Version) bool {
	return v.Compare(other) < 0
}

// LessOrEqual reports whether v sorts at or before other.
func (v Version) LessOrEqual(other Version) bool {
	return v.Compare(other) <= 0
}

// GreaterOrEqual reports whether v sorts at or after other.
func (v Version) GreaterOrEqual(other Version) bool {
	return v.Compare(other) >= 0
}

// segments returns the numeric major/minor/patch/... segments, used to
// bucket versions into release lines for VersionRange.
func (v Version) segments() []int64 {
	if v.v == nil {
		return nil
	}
	return v.v.Segments64()
}
