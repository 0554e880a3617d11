// SPDX-FileCopyrightText: Copyright 2026 The wotengine Authors
// SPDX-License-Identifier: Apache-2.0

package store

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/revtrust/wotengine/pkg/ids"
	"github.com/revtrust/wotengine/pkg/proof"
)

func testID(n byte) ids.Id {
	return ids.NewId([16]byte{n})
}

func publicID(n byte) ids.PublicID {
	return ids.PublicID{ID: testID(n)}
}

func publicIDWithURL(n byte, url ids.URL) ids.PublicID {
	return ids.PublicID{ID: testID(n), URL: &url}
}

func trustProof(date time.Time, from ids.PublicID, level ids.TrustLevel, to ...ids.PublicID) proof.Proof {
	return proof.Proof{
		Kind:      proof.KindTrust,
		Signature: "sig-" + from.ID.String() + date.String(),
		Trust: &proof.TrustProof{
			From:  from,
			Date:  date,
			Trust: level,
			Ids:   to,
		},
	}
}

func packageReviewProof(sig string, date time.Time, from ids.PublicID, source, name, version string, opts ...func(*proof.PackageReview)) proof.Proof {
	r := &proof.PackageReview{
		From: from,
		Date: date,
		Package: proof.PackageIdentity{
			ID: ids.PackageVersionID{
				PackageID: ids.PackageID{Source: source, Name: name},
				Version:   ids.MustParseVersion(version),
			},
		},
	}
	for _, opt := range opts {
		opt(r)
	}
	return proof.Proof{Kind: proof.KindPackageReview, Signature: sig, Package: r}
}

func TestAddTrustProofMergesByTimestamp(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	s := New()
	a, b := testID(1), testID(2)

	t0 := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	t1 := t0.Add(time.Hour)

	require.NoError(t, s.Add(ctx, trustProof(t0, publicID(1), ids.Low, publicID(2)), proof.LocalUser()))
	require.NoError(t, s.Add(ctx, trustProof(t1, publicID(1), ids.High, publicID(2)), proof.LocalUser()))

	edges := s.TrustEdgesFrom(a)
	assert.Equal(t, ids.High, edges[b])
}

func TestAddTrustProofStaleUpdateIgnored(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	s := New()
	a, b := testID(1), testID(2)

	t0 := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	t1 := t0.Add(time.Hour)

	require.NoError(t, s.Add(ctx, trustProof(t1, publicID(1), ids.High, publicID(2)), proof.LocalUser()))
	require.NoError(t, s.Add(ctx, trustProof(t0, publicID(1), ids.Low, publicID(2)), proof.LocalUser()))

	edges := s.TrustEdgesFrom(a)
	assert.Equal(t, ids.High, edges[b])
}

func TestAddUnknownKindFails(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	s := New()
	err := s.Add(ctx, proof.Proof{Kind: "bogus"}, proof.LocalUser())
	require.ErrorIs(t, err, ErrUnknownProofKind)
}

func TestImportFromRecoversPerProofFailure(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	s := New()
	good := trustProof(time.Now().UTC(), publicID(1), ids.Low, publicID(2))
	bad := proof.Proof{Kind: "bogus"}

	s.ImportFrom(ctx, []proof.Proof{bad, good}, proof.LocalUser())

	edges := s.TrustEdgesFrom(testID(1))
	assert.Equal(t, ids.Low, edges[testID(2)])
}

func TestPackageReviewIndexingAndVersionQueries(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	s := New()
	from := publicID(1)

	require.NoError(t, s.Add(ctx, packageReviewProof("s1", time.Now(), from, "crates", "x", "1.0.0"), proof.LocalUser()))
	require.NoError(t, s.Add(ctx, packageReviewProof("s2", time.Now(), from, "crates", "x", "1.2.0"), proof.LocalUser()))
	require.NoError(t, s.Add(ctx, packageReviewProof("s3", time.Now(), from, "crates", "x", "2.0.0"), proof.LocalUser()))

	assert.Len(t, s.ReviewsForName("crates", "x"), 3)
	assert.Len(t, s.ReviewsForVersion("crates", "x", ids.MustParseVersion("1.2.0")), 1)
	assert.Len(t, s.ReviewsGTEVersion("crates", "x", ids.MustParseVersion("1.2.0")), 2)
	assert.Len(t, s.ReviewsLTEVersion("crates", "x", ids.MustParseVersion("1.2.0")), 2)
	assert.Equal(t, 3, s.UniquePackageReviewProofCount())
}

func TestUniquePackageReviewProofCountDedupesReReviewUnderNewSignature(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	s := New()
	from := publicID(1)

	require.NoError(t, s.Add(ctx, packageReviewProof("s1", time.Now(), from, "crates", "x", "1.0.0"), proof.LocalUser()))
	require.NoError(t, s.Add(ctx, packageReviewProof("s1-again", time.Now(), from, "crates", "x", "1.0.0"), proof.LocalUser()))

	assert.Equal(t, 1, s.UniquePackageReviewProofCount(), "a re-review of the same (author, package, version) under a new signature counts once")
	assert.Equal(t, 1, s.AllAuthorIDs()[from.ID], "AllAuthorIDs must count the re-review once too")
}

func TestReviewsForPackageQueryShapePanics(t *testing.T) {
	t.Parallel()

	s := New()
	v := ids.MustParseVersion("1.0.0")
	assert.PanicsWithValue(t, ErrQueryShape, func() {
		s.ReviewsForPackage("crates", nil, &v, RangeExact)
	})
}

func TestLookupURLPriority(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	s := New()
	selfURLVal := ids.URL("https://a.example")

	// S6: self-declared, fetched from the same URL, is verified.
	p := trustProof(time.Now(), publicIDWithURL(1, selfURLVal), ids.Low, publicID(2))
	require.NoError(t, s.Add(ctx, p, proof.FromURL(selfURLVal)))

	got := s.LookupURL(testID(1))
	assert.Equal(t, URLFromSelfVerified, got.Provenance)
	assert.Equal(t, selfURLVal, got.URL)

	// A second proof, from someone else, declaring a different URL for
	// the same id, must not override the verified self-declaration.
	other := trustProof(time.Now(), publicID(3), ids.Low, publicIDWithURL(1, "https://other.example"))
	require.NoError(t, s.Add(ctx, other, proof.LocalUser()))

	got = s.LookupURL(testID(1))
	assert.Equal(t, URLFromSelfVerified, got.Provenance)
	assert.Equal(t, selfURLVal, got.URL)
}

func TestLookupURLFromOthersOnly(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	s := New()

	p := trustProof(time.Now(), publicID(3), ids.Low, publicIDWithURL(1, "https://reported.example"))
	require.NoError(t, s.Add(ctx, p, proof.LocalUser()))

	got := s.LookupURL(testID(1))
	assert.Equal(t, URLFromOthers, got.Provenance)
	assert.Equal(t, ids.URL("https://reported.example"), got.URL)
	assert.False(t, got.Verified())
	assert.False(t, got.FromSelf())
	assert.True(t, got.AnyUnverified())
}

func TestURLLookupProjections(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	s := New()
	selfURLVal := ids.URL("https://a.example")

	verified := trustProof(time.Now(), publicIDWithURL(1, selfURLVal), ids.Low, publicID(2))
	require.NoError(t, s.Add(ctx, verified, proof.FromURL(selfURLVal)))
	got := s.LookupURL(testID(1))
	assert.True(t, got.Verified())
	assert.True(t, got.FromSelf())
	assert.False(t, got.AnyUnverified())

	unverified := trustProof(time.Now(), publicIDWithURL(3, "https://b.example"), ids.Low, publicID(2))
	require.NoError(t, s.Add(ctx, unverified, proof.FromURL("https://not-b.example")))
	got = s.LookupURL(testID(3))
	assert.False(t, got.Verified())
	assert.True(t, got.FromSelf())
	assert.True(t, got.AnyUnverified())

	unknown := s.LookupURL(testID(99))
	assert.Equal(t, URLUnknown, unknown.Provenance)
	assert.False(t, unknown.Verified())
	assert.False(t, unknown.FromSelf())
	assert.False(t, unknown.AnyUnverified())
}

func TestFlagsLastWriteWins(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	s := New()
	from := publicID(1)
	pkg := ids.PackageID{Source: "crates", Name: "x"}

	t0 := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	t1 := t0.Add(time.Hour)

	withFlags := func(f proof.Flags) func(*proof.PackageReview) {
		return func(r *proof.PackageReview) { r.Flags = f }
	}

	require.NoError(t, s.Add(ctx, packageReviewProof("f1", t0, from, "crates", "x", "1.0.0", withFlags(proof.Flags{"unmaintained": true})), proof.LocalUser()))
	require.NoError(t, s.Add(ctx, packageReviewProof("f2", t1, from, "crates", "x", "1.0.0", withFlags(proof.Flags{"unmaintained": false})), proof.LocalUser()))

	flags, ok := s.FlagsByAuthor(testID(1), pkg)
	require.True(t, ok)
	assert.False(t, flags["unmaintained"])
}

func TestInsertionCounterIncrementsOnlyOnPackageReview(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	s := New()
	require.NoError(t, s.Add(ctx, trustProof(time.Now(), publicID(1), ids.Low, publicID(2)), proof.LocalUser()))
	assert.Equal(t, uint64(0), s.InsertionCounter())

	require.NoError(t, s.Add(ctx, packageReviewProof("s1", time.Now(), publicID(1), "crates", "x", "1.0.0"), proof.LocalUser()))
	assert.Equal(t, uint64(1), s.InsertionCounter())
}
