// SPDX-FileCopyrightText: Copyright 2026 The wotengine Authors
// SPDX-License-Identifier: Apache-2.0

package store

import (
	"sort"

	"github.com/revtrust/wotengine/pkg/ids"
	"github.com/revtrust/wotengine/pkg/proof"
)

// resolve turns a list of PkgVersionReviewIds into the PackageReviews
// backing them, skipping any id whose review has since... never happens,
// since review_by_signature entries are immutable, but a defensive skip
// costs nothing and keeps this resilient to a caller holding a stale id.
func (s *Store) resolve(reviewIDs []proof.PkgVersionReviewID) []*proof.PackageReview {
	out := make([]*proof.PackageReview, 0, len(reviewIDs))
	for _, id := range reviewIDs {
		sigEntry, ok := s.signatureByPkgReviewID[pkgVersionReviewKey(id)]
		if !ok {
			continue
		}
		if r, ok := s.reviewBySignature[sigEntry.Value]; ok {
			out = append(out, r)
		}
	}
	return out
}

// ReviewsForSource returns every package review filed against source,
// across all names and versions.
func (s *Store) ReviewsForSource(source string) []*proof.PackageReview {
	s.mu.RLock()
	defer s.mu.RUnlock()

	byName, ok := s.reviewsByPkg[source]
	if !ok {
		return nil
	}
	var out []*proof.PackageReview
	for _, vi := range byName {
		out = append(out, s.resolve(vi.all())...)
	}
	return out
}

// ReviewsForName returns every package review for (source, name), across
// all versions.
func (s *Store) ReviewsForName(source, name string) []*proof.PackageReview {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.resolve(s.versionIndexFor(source, name).all())
}

// ReviewsForVersion returns every package review at exactly version.
func (s *Store) ReviewsForVersion(source, name string, version ids.Version) []*proof.PackageReview {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.resolve(s.versionIndexFor(source, name).exact(version))
}

// ReviewsGTEVersion returns every package review at version or later.
func (s *Store) ReviewsGTEVersion(source, name string, version ids.Version) []*proof.PackageReview {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.resolve(s.versionIndexFor(source, name).gte(version))
}

// ReviewsLTEVersion returns every package review at version or earlier.
func (s *Store) ReviewsLTEVersion(source, name string, version ids.Version) []*proof.PackageReview {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.resolve(s.versionIndexFor(source, name).lte(version))
}

// versionIndexFor returns the version index for (source, name), or an
// empty one if nothing has been indexed there yet. Callers must hold at
// least s.mu.RLock().
func (s *Store) versionIndexFor(source, name string) *versionIndex {
	byName, ok := s.reviewsByPkg[source]
	if !ok {
		return newVersionIndex()
	}
	vi, ok := byName[name]
	if !ok {
		return newVersionIndex()
	}
	return vi
}

// ReviewsForPackage is the general-shape query behind ReviewsForSource /
// ReviewsForName / ReviewsForVersion / ReviewsGTEVersion / ReviewsLTEVersion.
// The shape (name=nil, version=non-nil) is a precondition violation and
// panics rather than returning an empty result, so that a caller's bug can
// never be mistaken for "no reviews".
func (s *Store) ReviewsForPackage(source string, name *string, version *ids.Version, versionMode RangeMode) []*proof.PackageReview {
	if name == nil && version != nil {
		panic(ErrQueryShape)
	}
	if name == nil {
		return s.ReviewsForSource(source)
	}
	if version == nil {
		return s.ReviewsForName(source, *name)
	}
	switch versionMode {
	case RangeExact:
		return s.ReviewsForVersion(source, *name, *version)
	case RangeGTE:
		return s.ReviewsGTEVersion(source, *name, *version)
	case RangeLTE:
		return s.ReviewsLTEVersion(source, *name, *version)
	default:
		panic(ErrQueryShape)
	}
}

// RangeMode selects which version-range query ReviewsForPackage performs
// when a version filter is present.
type RangeMode int

// The three supported range modes.
const (
	RangeExact RangeMode = iota
	RangeGTE
	RangeLTE
)

// ReviewsForPackageSorted is ReviewsForPackage with results ordered by
// ascending package version, for callers that need a deterministic walk
// rather than the version index's natural (already-sorted, but
// name/source-merging) order.
func (s *Store) ReviewsForPackageSorted(source string, name *string, version *ids.Version, versionMode RangeMode) []*proof.PackageReview {
	out := s.ReviewsForPackage(source, name, version, versionMode)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Package.ID.Version.LessThan(out[j].Package.ID.Version)
	})
	return out
}

// ReviewsByDigest returns every review whose reviewed artifact has the
// given digest, regardless of which package or version it was filed
// under.
func (s *Store) ReviewsByDigest(digest ids.Digest) []*proof.PackageReview {
	s.mu.RLock()
	defer s.mu.RUnlock()

	byKey, ok := s.signaturesByDigest[digest]
	if !ok {
		return nil
	}
	out := make([]*proof.PackageReview, 0, len(byKey))
	for _, sigEntry := range byKey {
		if r, ok := s.reviewBySignature[sigEntry.Value]; ok {
			out = append(out, r)
		}
	}
	return out
}

// ReviewsByAuthorAndPackage returns the reviews author filed against
// (source, name), across all versions.
func (s *Store) ReviewsByAuthorAndPackage(author ids.Id, source, name string) []*proof.PackageReview {
	all := s.ReviewsForName(source, name)
	out := all[:0:0]
	for _, r := range all {
		if r.From.ID == author {
			out = append(out, r)
		}
	}
	return out
}

// AllKnownIDs returns the union of every Id this store has seen a URL
// for, self-declared or reported by others.
func (s *Store) AllKnownIDs() []ids.Id {
	s.mu.RLock()
	defer s.mu.RUnlock()

	seen := map[ids.Id]struct{}{}
	for id := range s.urlBySelf {
		seen[id] = struct{}{}
	}
	for id := range s.urlByOthers {
		seen[id] = struct{}{}
	}
	out := make([]ids.Id, 0, len(seen))
	for id := range seen {
		out = append(out, id)
	}
	return out
}

// AllAuthorIDs returns every Id that has authored at least one trust edge
// or package review, each counted once per distinct artifact it produced
// (outgoing trust edges plus authored package reviews).
func (s *Store) AllAuthorIDs() map[ids.Id]int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	counts := map[ids.Id]int{}
	for from, edges := range s.trustEdges {
		counts[from] += len(edges)
	}
	for _, sigEntry := range s.signatureByPkgReviewID {
		if r, ok := s.reviewBySignature[sigEntry.Value]; ok {
			counts[r.From.ID]++
		}
	}
	return counts
}

// FlagsByAuthor returns the flags author most recently reported for pkg,
// if any.
func (s *Store) FlagsByAuthor(author ids.Id, pkg ids.PackageID) (proof.Flags, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	byAuthor, ok := s.flagsByPkg[pkg]
	if !ok {
		return nil, false
	}
	entry, ok := byAuthor[author]
	if !ok {
		return nil, false
	}
	return entry.Value, true
}

// FlagsForPackage returns every author's most recently reported flags for
// pkg.
func (s *Store) FlagsForPackage(pkg ids.PackageID) map[ids.Id]proof.Flags {
	s.mu.RLock()
	defer s.mu.RUnlock()

	byAuthor, ok := s.flagsByPkg[pkg]
	if !ok {
		return nil
	}
	out := make(map[ids.Id]proof.Flags, len(byAuthor))
	for author, entry := range byAuthor {
		out[author] = entry.Value
	}
	return out
}

// UniquePackageReviewProofCount returns the number of distinct
// (author, package, version) package reviews this store has recorded,
// counting a re-review of the same package version under a new signature
// once rather than once per signature.
func (s *Store) UniquePackageReviewProofCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.signatureByPkgReviewID)
}

// UniqueTrustProofCount returns the number of distinct trust edges this
// store has recorded (one per (from, to) pair, regardless of how many
// Trust proofs contributed to it).
func (s *Store) UniqueTrustProofCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	count := 0
	for _, edges := range s.trustEdges {
		count += len(edges)
	}
	return count
}

// TrustEdgesFrom returns id's outgoing trust edges as a plain map, for the
// trust engine's traversal to walk without reaching into store internals.
func (s *Store) TrustEdgesFrom(id ids.Id) map[ids.Id]ids.TrustLevel {
	s.mu.RLock()
	defer s.mu.RUnlock()

	edges, ok := s.trustEdges[id]
	if !ok {
		return nil
	}
	out := make(map[ids.Id]ids.TrustLevel, len(edges))
	for to, entry := range edges {
		out[to] = entry.Value
	}
	return out
}

// ReviewByPkgReviewID returns the review uniquely named by id, if any.
func (s *Store) ReviewByPkgReviewID(id proof.PkgVersionReviewID) (*proof.PackageReview, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	sigEntry, ok := s.signatureByPkgReviewID[pkgVersionReviewKey(id)]
	if !ok {
		return nil, false
	}
	r, ok := s.reviewBySignature[sigEntry.Value]
	return r, ok
}
