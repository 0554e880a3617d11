// SPDX-FileCopyrightText: Copyright 2026 The wotengine Authors
// SPDX-License-Identifier: Apache-2.0

// Package issuesresolver answers, for a (source, name, queried version),
// which issues remain open: filed by a sufficiently trusted author,
// applicable to the queried version, and not since fixed by a later
// advisory.
package issuesresolver

import (
	"fmt"

	"github.com/revtrust/wotengine/pkg/ids"
	"github.com/revtrust/wotengine/pkg/proof"
)

// TrustLevelSource is the one thing the resolver needs from a TrustSet:
// an author's effective trust level. Kept narrow so tests can supply a
// handful of literal levels without building a real trust.TrustSet.
type TrustLevelSource interface {
	GetEffectiveTrustLevel(id ids.Id) ids.TrustLevel
}

// ReviewSource is the one thing the resolver needs from the proof store:
// every package review filed for (source, name), regardless of version, and
// the same filtered by version range for the audit-trail queries.
type ReviewSource interface {
	ReviewsForSource(source string) []*proof.PackageReview
	ReviewsForName(source, name string) []*proof.PackageReview
	ReviewsForVersion(source, name string, version ids.Version) []*proof.PackageReview
	ReviewsGTEVersion(source, name string, version ids.Version) []*proof.PackageReview
	ReviewsLTEVersion(source, name string, version ids.Version) []*proof.PackageReview
}

// Report is one still-open issue or advisory id, together with the
// reviews that currently report it.
type Report struct {
	ID         string
	ReportedBy map[string]proof.PkgVersionReviewID
}

// Resolver computes open-issue reports against a ReviewSource.
type Resolver struct {
	reviews ReviewSource
}

// New returns a Resolver reading reviews from reviews.
func New(reviews ReviewSource) *Resolver {
	return &Resolver{reviews: reviews}
}

func reviewKey(id proof.PkgVersionReviewID) string {
	return fmt.Sprintf("%s@%s/%s@%s", id.From.String(), id.PackageVersionID.Source, id.PackageVersionID.Name, id.PackageVersionID.Version.String())
}

// OpenIssuesForVersion filters to reviews whose author meets
// trustLevelRequired, records every issue and
// advisory-reported problem that applies to queriedVersion (step A, step
// B report), then removes any report a later advisory's fix range covers
// (step B cancel), returning only ids that remain reported.
func (r *Resolver) OpenIssuesForVersion(
	source, name string,
	queriedVersion ids.Version,
	trustSet TrustLevelSource,
	trustLevelRequired ids.TrustLevel,
) map[string]*Report {
	var trusted []*proof.PackageReview
	for _, rev := range r.reviews.ReviewsForName(source, name) {
		if trustSet.GetEffectiveTrustLevel(rev.From.ID) >= trustLevelRequired {
			trusted = append(trusted, rev)
		}
	}

	reports := map[string]*Report{}
	reportInto := func(id string, reviewID proof.PkgVersionReviewID) {
		rep, ok := reports[id]
		if !ok {
			rep = &Report{ID: id, ReportedBy: map[string]proof.PkgVersionReviewID{}}
			reports[id] = rep
		}
		rep.ReportedBy[reviewKey(reviewID)] = reviewID
	}

	// Step A: issues, only from reviews at or below the queried version.
	for _, rev := range trusted {
		reportVersion := rev.Package.ID.Version
		if !reportVersion.LessOrEqual(queriedVersion) {
			continue
		}
		reviewID := proof.PkgVersionReviewIDFromReview(rev)
		for _, issue := range rev.Issues {
			if issue.AppliesTo(queriedVersion, reportVersion) {
				reportInto(issue.ID, reviewID)
			}
		}
	}

	// Step B, report half: advisories from any trusted review, at any
	// version, that claim to cover the queried version.
	for _, rev := range trusted {
		reportVersion := rev.Package.ID.Version
		reviewID := proof.PkgVersionReviewIDFromReview(rev)
		for _, advisory := range rev.Advisories {
			if !advisory.AppliesTo(queriedVersion, reportVersion) {
				continue
			}
			for _, aid := range advisory.Ids {
				reportInto(aid, reviewID)
			}
		}
	}

	// Step B, cancel half: an advisory also retires any report whose own
	// report version falls within that same advisory's affects range.
	for _, rev := range trusted {
		advisoryReportVersion := rev.Package.ID.Version
		for _, advisory := range rev.Advisories {
			for _, aid := range advisory.Ids {
				rep, ok := reports[aid]
				if !ok {
					continue
				}
				for key, reportedID := range rep.ReportedBy {
					if advisory.AppliesTo(reportedID.PackageVersionID.Version, advisoryReportVersion) {
						delete(rep.ReportedBy, key)
					}
				}
			}
		}
	}

	out := map[string]*Report{}
	for id, rep := range reports {
		if len(rep.ReportedBy) > 0 {
			out[id] = rep
		}
	}
	return out
}

// withIssuesOrAdvisories filters reviews down to those carrying at least one
// issue or advisory statement, after the same trust filter
// OpenIssuesForVersion applies. It is the audit-trail counterpart to the
// resolved map OpenIssuesForVersion returns: every raw review a caller would
// need to read to understand why an id ended up reported.
func withIssuesOrAdvisories(reviews []*proof.PackageReview, trustSet TrustLevelSource, trustLevelRequired ids.TrustLevel) []*proof.PackageReview {
	var out []*proof.PackageReview
	for _, rev := range reviews {
		if trustSet.GetEffectiveTrustLevel(rev.From.ID) < trustLevelRequired {
			continue
		}
		if len(rev.Issues) == 0 && len(rev.Advisories) == 0 {
			continue
		}
		out = append(out, rev)
	}
	return out
}

// ReviewsWithIssuesForSource returns every trusted review across source
// that carries at least one issue or advisory statement, regardless of
// package name or version.
func (r *Resolver) ReviewsWithIssuesForSource(source string, trustSet TrustLevelSource, trustLevelRequired ids.TrustLevel) []*proof.PackageReview {
	return withIssuesOrAdvisories(r.reviews.ReviewsForSource(source), trustSet, trustLevelRequired)
}

// ReviewsWithIssuesForName returns every trusted review of (source, name),
// across all versions, that carries at least one issue or advisory
// statement.
func (r *Resolver) ReviewsWithIssuesForName(source, name string, trustSet TrustLevelSource, trustLevelRequired ids.TrustLevel) []*proof.PackageReview {
	return withIssuesOrAdvisories(r.reviews.ReviewsForName(source, name), trustSet, trustLevelRequired)
}

// ReviewsWithIssuesForVersion returns every trusted review at exactly
// version that carries at least one issue or advisory statement.
func (r *Resolver) ReviewsWithIssuesForVersion(source, name string, version ids.Version, trustSet TrustLevelSource, trustLevelRequired ids.TrustLevel) []*proof.PackageReview {
	return withIssuesOrAdvisories(r.reviews.ReviewsForVersion(source, name, version), trustSet, trustLevelRequired)
}
