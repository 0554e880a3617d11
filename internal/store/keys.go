// SPDX-FileCopyrightText: Copyright 2026 The wotengine Authors
// SPDX-License-Identifier: Apache-2.0

package store

import (
	"fmt"

	"github.com/revtrust/wotengine/pkg/proof"
)

// pkgVersionReviewKey renders a proof.PkgVersionReviewID into a string
// usable as a map key. Version wraps a pointer internally, so the struct
// itself is not a reliable comparable key across two independently parsed
// equal versions; its normalized String() form is.
func pkgVersionReviewKey(id proof.PkgVersionReviewID) string {
	return fmt.Sprintf("%s\x00%s\x00%s\x00%s",
		id.From.String(), id.PackageVersionID.Source, id.PackageVersionID.Name, id.PackageVersionID.Version.String())
}
