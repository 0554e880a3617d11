// SPDX-FileCopyrightText: Copyright 2026 The wotengine Authors
// SPDX-License-Identifier: Apache-2.0

package ids

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCoversIssueSelfInclusive(t *testing.T) {
	t.Parallel()

	r := AllVersions()
	v100 := MustParseVersion("1.0.0")
	v130 := MustParseVersion("1.3.0")

	// An issue reported against 1.0.0 affects 1.0.0 itself...
	assert.True(t, r.CoversIssue(v100, v100))
	// ...and every later version, since nothing has fixed it yet.
	assert.True(t, r.CoversIssue(v130, v100))
	// It never affects an earlier version either.
	v090 := MustParseVersion("0.9.0")
	assert.False(t, r.CoversIssue(v090, v100))
}

func TestCoversAdvisoryExcludesPublicationPoint(t *testing.T) {
	t.Parallel()

	r := AllVersions()
	v100 := MustParseVersion("1.0.0")
	v120 := MustParseVersion("1.2.0")

	// An advisory published at 1.2.0 covers everything strictly before it...
	assert.True(t, r.CoversAdvisory(v100, v120))
	// ...but not the version it was itself published at.
	assert.False(t, r.CoversAdvisory(v120, v120))
	// ...and never a later version.
	assert.False(t, r.CoversAdvisory(MustParseVersion("1.3.0"), v120))
}

func TestRangeScopeSameLine(t *testing.T) {
	t.Parallel()

	major := VersionRange{Scope: ScopeMajor}
	v100 := MustParseVersion("1.0.0")
	v299 := MustParseVersion("2.9.9")

	assert.True(t, major.CoversIssue(v100, v100))
	assert.False(t, major.CoversIssue(v100, v299), "different major line never matches")
}
