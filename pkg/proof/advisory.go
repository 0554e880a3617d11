// SPDX-FileCopyrightText: Copyright 2026 The wotengine Authors
// SPDX-License-Identifier: Apache-2.0

package proof

import "github.com/revtrust/wotengine/pkg/ids"

// Advisory is a statement attached to a PackageReview asserting that one
// or more named issues are fixed as of the version reviewed, across some
// range of earlier versions.
type Advisory struct {
	Ids      []string
	Severity ids.Severity
	Range    ids.VersionRange
}

// AppliesTo reports whether this advisory, published while reviewing
// reportVersion, is considered to cover queriedVersion.
func (a Advisory) AppliesTo(queriedVersion, reportVersion ids.Version) bool {
	return a.Range.CoversAdvisory(queriedVersion, reportVersion)
}
