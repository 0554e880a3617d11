// SPDX-FileCopyrightText: Copyright 2026 The wotengine Authors
// SPDX-License-Identifier: Apache-2.0

package proof

import (
	"time"

	"github.com/revtrust/wotengine/pkg/ids"
)

// Flags is an opaque bag of package-level flags an author can attach to a
// review (e.g. "unmaintained", "unsound"). The engine never interprets
// its contents — only the last-write-wins merge rule applies to it — so
// it is modeled as a plain flag-name to bool map rather than a fixed schema.
type Flags map[string]bool

// Clone returns an independent copy of f.
func (f Flags) Clone() Flags {
	if f == nil {
		return nil
	}
	out := make(Flags, len(f))
	for k, v := range f {
		out[k] = v
	}
	return out
}

// PackageIdentity names the exact artifact a PackageReview speaks about.
type PackageIdentity struct {
	ID     ids.PackageVersionID
	Digest ids.Digest
}

// PackageReview is a review of one published package version: a rating,
// optional issue/advisory statements about version ranges, declared
// alternative packages, and package-level flags.
type PackageReview struct {
	From         ids.PublicID
	Date         time.Time
	Package      PackageIdentity
	Review       Review
	Flags        Flags
	Alternatives []ids.PackageID
	Issues       []Issue
	Advisories   []Advisory
}

// Review is the scalar rating an author gives a package version.
type Review struct {
	Thoroughness Rating
	Understanding Rating
	Rating        Rating
}

// Rating is a simple ordered quality rating, independent of TrustLevel and
// Severity.
type Rating int

// The rating scale, from least to most favorable.
const (
	RatingNegative Rating = iota
	RatingNeutral
	RatingPositive
	RatingStrong
)

// CodeReview is a review of specific files within a package version. The
// engine records its author's URL on ingestion but otherwise leaves
// file-level indexing unimplemented, preserving the hook for a future
// extension.
type CodeReview struct {
	From  ids.PublicID
	Date  time.Time
	Files []ReviewedFile
}

// ReviewedFile names one file covered by a CodeReview, by path and
// content digest.
type ReviewedFile struct {
	Path   string
	Digest ids.Digest
}

// PkgVersionReviewID uniquely names one author's review of one exact
// package version.
type PkgVersionReviewID struct {
	From             ids.Id
	PackageVersionID ids.PackageVersionID
}

// PkgVersionReviewIDFromReview derives a PkgVersionReviewID from a PackageReview.
func PkgVersionReviewIDFromReview(r *PackageReview) PkgVersionReviewID {
	return PkgVersionReviewID{
		From:             r.From.ID,
		PackageVersionID: r.Package.ID,
	}
}

// PkgReviewID uniquely names one author's reviews of one package,
// independent of which version. It supplements PkgVersionReviewID to
// answer "what has this author ever said about this package" without
// pinning a version.
type PkgReviewID struct {
	From      ids.Id
	PackageID ids.PackageID
}

// PkgReviewIDFromReview derives a PkgReviewID from a PackageReview.
func PkgReviewIDFromReview(r *PackageReview) PkgReviewID {
	return PkgReviewID{
		From:      r.From.ID,
		PackageID: r.Package.ID.PackageID,
	}
}
