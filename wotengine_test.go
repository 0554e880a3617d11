// SPDX-FileCopyrightText: Copyright 2026 The wotengine Authors
// SPDX-License-Identifier: Apache-2.0

package wotengine

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/revtrust/wotengine/internal/store"
	"github.com/revtrust/wotengine/internal/trust"
	"github.com/revtrust/wotengine/pkg/ids"
	"github.com/revtrust/wotengine/pkg/proof"
)

func TestS6URLProvenance(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	db := New()

	a := ids.NewId([16]byte{1})
	aURL := ids.URL("https://a.example")
	aPublic := ids.PublicID{ID: a, URL: &aURL}

	selfProof := proof.Proof{
		Kind:      proof.KindTrust,
		Signature: "sig-a",
		Trust: &proof.TrustProof{
			From:  aPublic,
			Date:  time.Now(),
			Trust: ids.Low,
			Ids:   []ids.PublicID{{ID: ids.NewId([16]byte{2})}},
		},
	}
	require.NoError(t, db.AddProof(ctx, selfProof, proof.FromURL(aURL)))

	lookup := db.LookupURL(a)
	assert.Equal(t, store.URLFromSelfVerified, lookup.Provenance)
	assert.Equal(t, aURL, lookup.URL)

	otherURL := ids.URL("https://other.example")
	reportedProof := proof.Proof{
		Kind:      proof.KindTrust,
		Signature: "sig-b",
		Trust: &proof.TrustProof{
			From:  ids.PublicID{ID: ids.NewId([16]byte{3})},
			Date:  time.Now(),
			Trust: ids.Low,
			Ids:   []ids.PublicID{{ID: a, URL: &otherURL}},
		},
	}
	require.NoError(t, db.AddProof(ctx, reportedProof, proof.LocalUser()))

	lookup = db.LookupURL(a)
	assert.Equal(t, store.URLFromSelfVerified, lookup.Provenance, "a verified self-declaration must not be overridden by another author's report")
	assert.Equal(t, aURL, lookup.URL)
}

func TestEndToEndTrustAndIssueResolution(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	db := New()

	reviewer := ids.PublicID{ID: ids.NewId([16]byte{5})}
	root := ids.NewId([16]byte{1})

	require.NoError(t, db.AddProof(ctx, proof.Proof{
		Kind:      proof.KindTrust,
		Signature: "trust-1",
		Trust: &proof.TrustProof{
			From:  ids.PublicID{ID: root},
			Date:  time.Now(),
			Trust: ids.High,
			Ids:   []ids.PublicID{reviewer},
		},
	}, proof.LocalUser()))

	v100 := ids.MustParseVersion("1.0.0")
	require.NoError(t, db.AddProof(ctx, proof.Proof{
		Kind:      proof.KindPackageReview,
		Signature: "review-1",
		Package: &proof.PackageReview{
			From: reviewer,
			Date: time.Now(),
			Package: proof.PackageIdentity{
				ID: ids.PackageVersionID{PackageID: ids.PackageID{Source: "crates", Name: "x"}, Version: v100},
			},
			Issues: []proof.Issue{{ID: "CVE-9", Range: ids.AllVersions()}},
		},
	}, proof.LocalUser()))

	ts := db.CalculateTrustSet(ctx, root, trust.DefaultTrustDistanceParams())
	require.True(t, ts.IsTrusted(reviewer.ID))

	open := db.GetOpenIssuesForVersion("crates", "x", v100, ts, ids.Low)
	assert.Contains(t, open, "CVE-9")
}

func TestConcurrentReadersWhileAlternativesIndexIsStale(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	db := New()

	author := ids.PublicID{ID: ids.NewId([16]byte{8})}
	p1 := ids.PackageID{Source: "crates", Name: "p1"}
	p2 := ids.PackageID{Source: "crates", Name: "p2"}

	require.NoError(t, db.AddProof(ctx, proof.Proof{
		Kind:      proof.KindPackageReview,
		Signature: "alt-1",
		Package: &proof.PackageReview{
			From: author,
			Date: time.Now(),
			Package: proof.PackageIdentity{
				ID: ids.PackageVersionID{PackageID: p1, Version: ids.MustParseVersion("1.0.0")},
			},
			Alternatives: []ids.PackageID{p2},
		},
	}, proof.LocalUser()))

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = db.Alternatives(p1)
			_ = db.ReviewsForName("crates", "p1")
			_ = db.LookupURL(author.ID)
		}()
	}
	wg.Wait()

	pairs := db.Alternatives(p1)
	found := false
	for _, pair := range pairs {
		if pair.Package == p2 {
			found = true
		}
	}
	assert.True(t, found, "alternatives declared before the concurrent reads must still be visible after them")
}
