// SPDX-FileCopyrightText: Copyright 2026 The wotengine Authors
// SPDX-License-Identifier: Apache-2.0

package ids

// PackageID names a package within a source registry (e.g. "crates.io",
// "npm"); source and name are both opaque strings compared by value.
type PackageID struct {
	Source string
	Name   string
}

// PackageVersionID names a single published version of a package.
type PackageVersionID struct {
	PackageID
	Version Version
}

// Digest is the content hash of the artifact a PackageReview speaks about.
// It is compared and hashed by value, never interpreted.
type Digest string
