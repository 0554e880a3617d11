// SPDX-FileCopyrightText: Copyright 2026 The wotengine Authors
// SPDX-License-Identifier: Apache-2.0

// Package alternatives implements the derived, lazily-rebuilt symmetric
// alternatives index: which packages authors have declared as
// substitutes for one another. It is kept separate from the append-only
// proof store because, unlike every other index there, it is not
// maintained incrementally on ingestion — recomputing it from scratch is
// cheap and avoids the asymmetric-delete hazard of incremental
// maintenance.
package alternatives

import (
	"sync"

	"github.com/revtrust/wotengine/pkg/ids"
	"github.com/revtrust/wotengine/pkg/proof"
)

// Source is what Index needs from the proof store to rebuild itself: a
// snapshot of the raw, per-(package, author) alternatives declarations,
// the insertion counter that tells it when that snapshot has moved on,
// and a way to resolve a signature back to the review that carries the
// declared alternatives list.
type Source interface {
	InsertionCounter() uint64
	AlternativesRawSnapshot() map[ids.PackageID]map[ids.Id]proof.Signature
	ReviewBySignature(sig proof.Signature) (*proof.PackageReview, bool)
}

// entry names one alternative's reporters and the signature each reporter
// filed it under.
type entry struct {
	reportedBy map[ids.Id]proof.Signature
}

// Index is the derived, symmetric alternatives view. The zero value is
// not usable; construct with New.
type Index struct {
	source Source

	mu      sync.RWMutex
	counter uint64
	forPkg  map[ids.PackageID]map[ids.PackageID]*entry
}

// New returns an Index reading raw declarations from source.
func New(source Source) *Index {
	return &Index{source: source}
}

// ensureFresh rebuilds the derived index if the store's insertion counter
// has moved since the last rebuild. It takes the exclusive lock only when
// a rebuild is actually needed, so concurrent readers that find the index
// already fresh never block each other.
func (idx *Index) ensureFresh() {
	idx.mu.RLock()
	stale := idx.counter != idx.source.InsertionCounter()
	idx.mu.RUnlock()
	if !stale {
		return
	}

	idx.mu.Lock()
	defer idx.mu.Unlock()

	current := idx.source.InsertionCounter()
	if idx.counter == current {
		// Another goroutine raced us to the rebuild.
		return
	}

	rebuilt := map[ids.PackageID]map[ids.PackageID]*entry{}
	raw := idx.source.AlternativesRawSnapshot()
	for pkg, byAuthor := range raw {
		for author, sig := range byAuthor {
			review, ok := idx.source.ReviewBySignature(sig)
			if !ok {
				continue
			}
			for _, alt := range review.Alternatives {
				addSymmetricPair(rebuilt, pkg, alt, author, sig)
				addSymmetricPair(rebuilt, alt, pkg, author, sig)
			}
		}
	}

	idx.forPkg = rebuilt
	idx.counter = current
}

func addSymmetricPair(dst map[ids.PackageID]map[ids.PackageID]*entry, from, to ids.PackageID, author ids.Id, sig proof.Signature) {
	byOther, ok := dst[from]
	if !ok {
		byOther = map[ids.PackageID]*entry{}
		dst[from] = byOther
	}
	e, ok := byOther[to]
	if !ok {
		e = &entry{reportedBy: map[ids.Id]proof.Signature{}}
		byOther[to] = e
	}
	e.reportedBy[author] = sig
}

// AlternativesByAuthor returns the packages author declared as
// alternatives to pkg (or that declared pkg as their alternative —
// the relation is symmetric).
func (idx *Index) AlternativesByAuthor(author ids.Id, pkg ids.PackageID) []ids.PackageID {
	idx.ensureFresh()

	idx.mu.RLock()
	defer idx.mu.RUnlock()

	byOther, ok := idx.forPkg[pkg]
	if !ok {
		return nil
	}
	var out []ids.PackageID
	for other, e := range byOther {
		if _, ok := e.reportedBy[author]; ok {
			out = append(out, other)
		}
	}
	return out
}

// AlternativePair names one alternative package and who reported it.
type AlternativePair struct {
	Author  ids.Id
	Package ids.PackageID
}

// Alternatives returns every (author, alternative) pair declared for pkg,
// by any author.
func (idx *Index) Alternatives(pkg ids.PackageID) []AlternativePair {
	idx.ensureFresh()

	idx.mu.RLock()
	defer idx.mu.RUnlock()

	byOther, ok := idx.forPkg[pkg]
	if !ok {
		return nil
	}
	var out []AlternativePair
	for other, e := range byOther {
		for author := range e.reportedBy {
			out = append(out, AlternativePair{Author: author, Package: other})
		}
	}
	return out
}
