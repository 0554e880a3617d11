// SPDX-FileCopyrightText: Copyright 2026 The wotengine Authors
// SPDX-License-Identifier: Apache-2.0

package store

import (
	"sort"

	"github.com/revtrust/wotengine/pkg/ids"
	"github.com/revtrust/wotengine/pkg/proof"
)

// versionBucket holds every review known for one exact version, keyed by
// author so a repeated ingestion of the same (author, version) pair
// overwrites rather than duplicates.
type versionBucket struct {
	version ids.Version
	byFrom  map[string]proof.PkgVersionReviewID
}

// versionIndex is an ordered-tree substitute for a Version→reviews index.
// Go has no built-in ordered map, so buckets are kept in a slice sorted
// ascending by version and located with binary search; this gives exact/
// GTE/LTE range queries O(log n) lookup, O(n) range scan.
type versionIndex struct {
	buckets []*versionBucket
}

func newVersionIndex() *versionIndex {
	return &versionIndex{}
}

// search returns the index of the first bucket whose version is >= v, and
// whether that bucket is an exact match.
func (vi *versionIndex) search(v ids.Version) (int, bool) {
	i := sort.Search(len(vi.buckets), func(i int) bool {
		return vi.buckets[i].version.GreaterOrEqual(v)
	})
	if i < len(vi.buckets) && vi.buckets[i].version.Compare(v) == 0 {
		return i, true
	}
	return i, false
}

// insert records id under version, creating the bucket if necessary.
func (vi *versionIndex) insert(version ids.Version, id proof.PkgVersionReviewID) {
	i, ok := vi.search(version)
	if !ok {
		b := &versionBucket{version: version, byFrom: map[string]proof.PkgVersionReviewID{}}
		vi.buckets = append(vi.buckets, nil)
		copy(vi.buckets[i+1:], vi.buckets[i:])
		vi.buckets[i] = b
	}
	vi.buckets[i].byFrom[id.From.String()] = id
}

// exact returns the ids recorded at exactly version.
func (vi *versionIndex) exact(version ids.Version) []proof.PkgVersionReviewID {
	i, ok := vi.search(version)
	if !ok {
		return nil
	}
	return bucketValues(vi.buckets[i])
}

// all returns every id in the index, ordered by ascending version.
func (vi *versionIndex) all() []proof.PkgVersionReviewID {
	var out []proof.PkgVersionReviewID
	for _, b := range vi.buckets {
		out = append(out, bucketValues(b)...)
	}
	return out
}

// gte returns every id at a version >= version, ordered ascending.
func (vi *versionIndex) gte(version ids.Version) []proof.PkgVersionReviewID {
	i, _ := vi.search(version)
	var out []proof.PkgVersionReviewID
	for ; i < len(vi.buckets); i++ {
		out = append(out, bucketValues(vi.buckets[i])...)
	}
	return out
}

// lte returns every id at a version <= version, ordered ascending.
func (vi *versionIndex) lte(version ids.Version) []proof.PkgVersionReviewID {
	i, ok := vi.search(version)
	if ok {
		i++
	}
	var out []proof.PkgVersionReviewID
	for j := 0; j < i; j++ {
		out = append(out, bucketValues(vi.buckets[j])...)
	}
	return out
}

func bucketValues(b *versionBucket) []proof.PkgVersionReviewID {
	out := make([]proof.PkgVersionReviewID, 0, len(b.byFrom))
	for _, id := range b.byFrom {
		out = append(out, id)
	}
	return out
}
