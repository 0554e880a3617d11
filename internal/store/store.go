// SPDX-FileCopyrightText: Copyright 2026 The wotengine Authors
// SPDX-License-Identifier: Apache-2.0

// Package store implements the in-memory, append-only ProofStore: the
// single point through which signed proofs are ingested and indexed, and
// against which every other package in this module queries. It never
// deletes anything; mutation is confined to the Timestamped merge rule.
package store

import (
	"context"
	"fmt"
	"sync"

	"github.com/rs/zerolog"

	"github.com/revtrust/wotengine/internal/timestamped"
	"github.com/revtrust/wotengine/pkg/ids"
	"github.com/revtrust/wotengine/pkg/proof"
)

type selfURL struct {
	ts       timestamped.Timestamped[ids.URL]
	verified bool
}

// Store is the append-only, indexed proof database. The zero value is not
// usable; construct with New. A *Store is safe for concurrent use once
// ingestion (single-writer phase) has finished: Add/ImportFrom take an
// exclusive lock, every query takes a shared one.
type Store struct {
	mu sync.RWMutex

	trustEdges map[ids.Id]map[ids.Id]timestamped.Timestamped[ids.TrustLevel]

	urlBySelf   map[ids.Id]*selfURL
	urlByOthers map[ids.Id]timestamped.Timestamped[ids.URL]

	reviewBySignature map[proof.Signature]*proof.PackageReview

	signatureByPkgReviewID map[string]timestamped.Timestamped[proof.Signature]
	signaturesByDigest     map[ids.Digest]map[string]timestamped.Timestamped[proof.Signature]

	// source -> name -> ordered version index of PkgVersionReviewID
	reviewsByPkg map[string]map[string]*versionIndex

	alternativesRaw map[ids.PackageID]map[ids.Id]timestamped.Timestamped[proof.Signature]

	flagsByPkg map[ids.PackageID]map[ids.Id]timestamped.Timestamped[proof.Flags]

	insertionCounter uint64
}

// New returns an empty Store.
func New() *Store {
	return &Store{
		trustEdges:             map[ids.Id]map[ids.Id]timestamped.Timestamped[ids.TrustLevel]{},
		urlBySelf:              map[ids.Id]*selfURL{},
		urlByOthers:            map[ids.Id]timestamped.Timestamped[ids.URL]{},
		reviewBySignature:      map[proof.Signature]*proof.PackageReview{},
		signatureByPkgReviewID: map[string]timestamped.Timestamped[proof.Signature]{},
		signaturesByDigest:     map[ids.Digest]map[string]timestamped.Timestamped[proof.Signature]{},
		reviewsByPkg:           map[string]map[string]*versionIndex{},
		alternativesRaw:        map[ids.PackageID]map[ids.Id]timestamped.Timestamped[proof.Signature]{},
		flagsByPkg:             map[ids.PackageID]map[ids.Id]timestamped.Timestamped[proof.Flags]{},
	}
}

// Add ingests one already-verified proof. It returns ErrUnknownProofKind
// for an unrecognized kind and ErrMalformedContent when the content for
// the proof's kind is missing; callers doing bulk ingestion should
// prefer ImportFrom, which recovers from per-proof failures itself.
func (s *Store) Add(ctx context.Context, p proof.Proof, fetchedFrom proof.FetchSource) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	switch p.Kind {
	case proof.KindCodeReview:
		if p.Code == nil {
			return fmt.Errorf("%w: code-review proof missing content", ErrMalformedContent)
		}
		s.recordURLFromFromFieldLocked(p.Code.Date, p.Code.From, fetchedFrom)
		// No file-level indexing yet; the entry point is preserved so it
		// can be added later without touching ingestion callers.
		return nil
	case proof.KindTrust:
		if p.Trust == nil {
			return fmt.Errorf("%w: trust proof missing content", ErrMalformedContent)
		}
		s.addTrustLocked(p.Trust, fetchedFrom)
		return nil
	case proof.KindPackageReview:
		if p.Package == nil {
			return fmt.Errorf("%w: package-review proof missing content", ErrMalformedContent)
		}
		s.addPackageReviewLocked(p.Signature, p.Package, fetchedFrom)
		return nil
	default:
		return fmt.Errorf("%w: %q", ErrUnknownProofKind, p.Kind)
	}
}

// ImportFrom ingests every proof in proofs, logging and continuing past
// any individual failure rather than aborting the batch.
func (s *Store) ImportFrom(ctx context.Context, proofs []proof.Proof, fetchedFrom proof.FetchSource) {
	log := zerolog.Ctx(ctx)
	for _, p := range proofs {
		if err := s.Add(ctx, p, fetchedFrom); err != nil {
			log.Debug().Err(err).Str("kind", string(p.Kind)).Msg("skipping proof during import")
		}
	}
}

func (s *Store) addTrustLocked(t *proof.TrustProof, fetchedFrom proof.FetchSource) {
	s.recordURLFromFromFieldLocked(t.Date, t.From, fetchedFrom)

	edges, ok := s.trustEdges[t.From.ID]
	if !ok {
		edges = map[ids.Id]timestamped.Timestamped[ids.TrustLevel]{}
		s.trustEdges[t.From.ID] = edges
	}
	for _, to := range t.Ids {
		entry := edges[to.ID]
		entry.MergeFrom(timestamped.Of(t.Date, t.Trust))
		edges[to.ID] = entry

		s.recordURLFromToFieldLocked(t.Date, to)
	}
}

func (s *Store) addPackageReviewLocked(sig proof.Signature, r *proof.PackageReview, fetchedFrom proof.FetchSource) {
	s.insertionCounter++

	s.recordURLFromFromFieldLocked(r.Date, r.From, fetchedFrom)

	if _, exists := s.reviewBySignature[sig]; !exists {
		s.reviewBySignature[sig] = r
	}

	reviewID := proof.PkgVersionReviewIDFromReview(r)
	key := pkgVersionReviewKey(reviewID)

	sigEntry := s.signatureByPkgReviewID[key]
	sigEntry.MergeFrom(timestamped.Of(r.Date, sig))
	s.signatureByPkgReviewID[key] = sigEntry

	byDigest, ok := s.signaturesByDigest[r.Package.Digest]
	if !ok {
		byDigest = map[string]timestamped.Timestamped[proof.Signature]{}
		s.signaturesByDigest[r.Package.Digest] = byDigest
	}
	digestEntry := byDigest[key]
	digestEntry.MergeFrom(timestamped.Of(r.Date, sig))
	byDigest[key] = digestEntry

	source, name := r.Package.ID.Source, r.Package.ID.Name
	byName, ok := s.reviewsByPkg[source]
	if !ok {
		byName = map[string]*versionIndex{}
		s.reviewsByPkg[source] = byName
	}
	vi, ok := byName[name]
	if !ok {
		vi = newVersionIndex()
		byName[name] = vi
	}
	vi.insert(r.Package.ID.Version, reviewID)

	if len(r.Alternatives) > 0 {
		pkgID := r.Package.ID.PackageID
		byAuthor, ok := s.alternativesRaw[pkgID]
		if !ok {
			byAuthor = map[ids.Id]timestamped.Timestamped[proof.Signature]{}
			s.alternativesRaw[pkgID] = byAuthor
		}
		entry := byAuthor[r.From.ID]
		entry.MergeFrom(timestamped.Of(r.Date, sig))
		byAuthor[r.From.ID] = entry
	}

	pkgID := r.Package.ID.PackageID
	byAuthorFlags, ok := s.flagsByPkg[pkgID]
	if !ok {
		byAuthorFlags = map[ids.Id]timestamped.Timestamped[proof.Flags]{}
		s.flagsByPkg[pkgID] = byAuthorFlags
	}
	flagsEntry := byAuthorFlags[r.From.ID]
	flagsEntry.MergeFrom(timestamped.Of(r.Date, r.Flags))
	byAuthorFlags[r.From.ID] = flagsEntry
}

// InsertionCounter returns the number of successful PackageReview
// ingestions so far. The alternatives package uses this to tell whether
// its derived view is stale.
func (s *Store) InsertionCounter() uint64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.insertionCounter
}

// ReviewBySignature looks up the canonical, immutable review stored under
// a signature.
func (s *Store) ReviewBySignature(sig proof.Signature) (*proof.PackageReview, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	r, ok := s.reviewBySignature[sig]
	return r, ok
}

// AlternativesRawSnapshot returns a shallow copy of alternatives_raw,
// suitable for the alternatives package to iterate while rebuilding its
// derived view without holding the store's lock for the whole rebuild.
func (s *Store) AlternativesRawSnapshot() map[ids.PackageID]map[ids.Id]proof.Signature {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make(map[ids.PackageID]map[ids.Id]proof.Signature, len(s.alternativesRaw))
	for pkg, byAuthor := range s.alternativesRaw {
		inner := make(map[ids.Id]proof.Signature, len(byAuthor))
		for author, entry := range byAuthor {
			inner[author] = entry.Value
		}
		out[pkg] = inner
	}
	return out
}
