// SPDX-FileCopyrightText: Copyright 2026 The wotengine Authors
// SPDX-License-Identifier: Apache-2.0

package proof

import "github.com/revtrust/wotengine/pkg/ids"

// Issue is a statement attached to a PackageReview asserting that a named
// problem affects some range of versions.
type Issue struct {
	ID       string
	Severity ids.Severity
	Range    ids.VersionRange
}

// AppliesTo reports whether this issue, reported while reviewing
// reportVersion, is considered to affect queriedVersion.
func (i Issue) AppliesTo(queriedVersion, reportVersion ids.Version) bool {
	return i.Range.CoversIssue(queriedVersion, reportVersion)
}
