// SPDX-FileCopyrightText: Copyright 2026 The wotengine Authors
// SPDX-License-Identifier: Apache-2.0

// Package wotengine is the public facade over the proof store, trust
// engine, alternatives index and issue resolver: everything an embedder
// needs to ingest proofs and answer web-of-trust queries.
package wotengine

import (
	"context"

	"github.com/revtrust/wotengine/internal/alternatives"
	"github.com/revtrust/wotengine/internal/issuesresolver"
	"github.com/revtrust/wotengine/internal/store"
	"github.com/revtrust/wotengine/internal/trust"
	"github.com/revtrust/wotengine/pkg/ids"
	"github.com/revtrust/wotengine/pkg/proof"
)

// DB is an in-memory proof database and web-of-trust engine. The zero
// value is not usable; construct with New. A *DB is safe to share across
// goroutines once ingestion has finished.
type DB struct {
	store         *store.Store
	trustEngine   *trust.Engine
	alternatives  *alternatives.Index
	issueResolver *issuesresolver.Resolver
}

// New returns an empty DB.
func New() *DB {
	s := store.New()
	return &DB{
		store:         s,
		trustEngine:   trust.NewEngine(s),
		alternatives:  alternatives.New(s),
		issueResolver: issuesresolver.New(s),
	}
}

// AddProof ingests one already-verified proof. It returns
// store.ErrUnknownProofKind or store.ErrMalformedContent; bulk ingestion
// should prefer ImportFrom.
func (db *DB) AddProof(ctx context.Context, p proof.Proof, fetchedFrom proof.FetchSource) error {
	return db.store.Add(ctx, p, fetchedFrom)
}

// ImportFrom ingests every proof in proofs, logging and continuing past
// any individual failure.
func (db *DB) ImportFrom(ctx context.Context, proofs []proof.Proof, fetchedFrom proof.FetchSource) {
	db.store.ImportFrom(ctx, proofs, fetchedFrom)
}

// CalculateTrustSet computes the set of identities trusted from root
// under params.
func (db *DB) CalculateTrustSet(ctx context.Context, root ids.Id, params trust.TrustDistanceParams) *trust.TrustSet {
	return db.trustEngine.Calculate(ctx, root, params)
}

// LookupURL returns the best-known URL for id.
func (db *DB) LookupURL(id ids.Id) store.URLLookup {
	return db.store.LookupURL(id)
}

// ReviewsForSource returns every package review filed against source.
func (db *DB) ReviewsForSource(source string) []*proof.PackageReview {
	return db.store.ReviewsForSource(source)
}

// ReviewsForName returns every package review for (source, name).
func (db *DB) ReviewsForName(source, name string) []*proof.PackageReview {
	return db.store.ReviewsForName(source, name)
}

// ReviewsForVersion returns every package review at exactly version.
func (db *DB) ReviewsForVersion(source, name string, version ids.Version) []*proof.PackageReview {
	return db.store.ReviewsForVersion(source, name, version)
}

// ReviewsGTEVersion returns every package review at version or later.
func (db *DB) ReviewsGTEVersion(source, name string, version ids.Version) []*proof.PackageReview {
	return db.store.ReviewsGTEVersion(source, name, version)
}

// ReviewsLTEVersion returns every package review at version or earlier.
func (db *DB) ReviewsLTEVersion(source, name string, version ids.Version) []*proof.PackageReview {
	return db.store.ReviewsLTEVersion(source, name, version)
}

// ReviewsByDigest returns every review whose reviewed artifact has digest.
func (db *DB) ReviewsByDigest(digest ids.Digest) []*proof.PackageReview {
	return db.store.ReviewsByDigest(digest)
}

// ReviewByPkgReviewID returns the review uniquely named by id, if any.
func (db *DB) ReviewByPkgReviewID(id proof.PkgVersionReviewID) (*proof.PackageReview, bool) {
	return db.store.ReviewByPkgReviewID(id)
}

// AllKnownIDs returns the union of every Id a URL has been seen for.
func (db *DB) AllKnownIDs() []ids.Id {
	return db.store.AllKnownIDs()
}

// AllAuthorIDs returns every Id that authored a trust edge or package
// review, mapped to how many such artifacts it produced.
func (db *DB) AllAuthorIDs() map[ids.Id]int {
	return db.store.AllAuthorIDs()
}

// FlagsByAuthor returns the flags author most recently reported for pkg.
func (db *DB) FlagsByAuthor(author ids.Id, pkg ids.PackageID) (proof.Flags, bool) {
	return db.store.FlagsByAuthor(author, pkg)
}

// FlagsForPackage returns every author's most recently reported flags for
// pkg.
func (db *DB) FlagsForPackage(pkg ids.PackageID) map[ids.Id]proof.Flags {
	return db.store.FlagsForPackage(pkg)
}

// AlternativesByAuthor returns the packages author declared alternative
// to pkg.
func (db *DB) AlternativesByAuthor(author ids.Id, pkg ids.PackageID) []ids.PackageID {
	return db.alternatives.AlternativesByAuthor(author, pkg)
}

// Alternatives returns every (author, alternative) pair declared for pkg.
func (db *DB) Alternatives(pkg ids.PackageID) []alternatives.AlternativePair {
	return db.alternatives.Alternatives(pkg)
}

// GetOpenIssuesForVersion resolves which issues remain open for (source,
// name, queriedVersion) given trustSet and the minimum trust level an
// author must hold to be considered.
func (db *DB) GetOpenIssuesForVersion(
	source, name string,
	queriedVersion ids.Version,
	trustSet *trust.TrustSet,
	minLevel ids.TrustLevel,
) map[string]*issuesresolver.Report {
	return db.issueResolver.OpenIssuesForVersion(source, name, queriedVersion, trustSet, minLevel)
}

// ReviewsWithIssuesForSource returns every trusted review across source
// that carries at least one issue or advisory statement, for building an
// audit trail of what's been reported.
func (db *DB) ReviewsWithIssuesForSource(source string, trustSet *trust.TrustSet, minLevel ids.TrustLevel) []*proof.PackageReview {
	return db.issueResolver.ReviewsWithIssuesForSource(source, trustSet, minLevel)
}

// ReviewsWithIssuesForName returns every trusted review of (source, name)
// that carries at least one issue or advisory statement.
func (db *DB) ReviewsWithIssuesForName(source, name string, trustSet *trust.TrustSet, minLevel ids.TrustLevel) []*proof.PackageReview {
	return db.issueResolver.ReviewsWithIssuesForName(source, name, trustSet, minLevel)
}

// ReviewsWithIssuesForVersion returns every trusted review at exactly
// version that carries at least one issue or advisory statement.
func (db *DB) ReviewsWithIssuesForVersion(source, name string, version ids.Version, trustSet *trust.TrustSet, minLevel ids.TrustLevel) []*proof.PackageReview {
	return db.issueResolver.ReviewsWithIssuesForVersion(source, name, version, trustSet, minLevel)
}

// UniquePackageReviewProofCount returns the number of distinct
// (author, package, version) package reviews recorded; a re-review under a
// new signature counts once.
func (db *DB) UniquePackageReviewProofCount() int {
	return db.store.UniquePackageReviewProofCount()
}

// UniqueTrustProofCount returns the number of distinct trust edges
// recorded.
func (db *DB) UniqueTrustProofCount() int {
	return db.store.UniqueTrustProofCount()
}

// sendSyncWitness documents a concurrency contract: a *DB holds no
// unsynchronized mutable state reachable after construction, so once
// ingestion has finished it may be shared and read from many goroutines at
// once. Go has no Send/Sync marker traits to check this at compile time, so
// this type exists only to give that contract a name to attach the doc
// comment to; TestConcurrentReadersWhileAlternativesIndexIsStale exercises
// it at runtime.
type sendSyncWitness struct{ db *DB }

var _ = sendSyncWitness{}
