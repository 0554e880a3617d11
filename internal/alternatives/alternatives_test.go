// SPDX-FileCopyrightText: Copyright 2026 The wotengine Authors
// SPDX-License-Identifier: Apache-2.0

package alternatives

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/revtrust/wotengine/internal/store"
	"github.com/revtrust/wotengine/pkg/ids"
	"github.com/revtrust/wotengine/pkg/proof"
)

func TestAlternativesSymmetry(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	s := store.New()
	u := ids.NewId([16]byte{9})
	p1 := ids.PackageID{Source: "crates", Name: "p1"}
	p2 := ids.PackageID{Source: "crates", Name: "p2"}

	review := &proof.PackageReview{
		From: ids.PublicID{ID: u},
		Date: time.Now(),
		Package: proof.PackageIdentity{
			ID: ids.PackageVersionID{PackageID: p1, Version: ids.MustParseVersion("1.0.0")},
		},
		Alternatives: []ids.PackageID{p2},
	}
	require.NoError(t, s.Add(ctx, proof.Proof{Kind: proof.KindPackageReview, Signature: "sig1", Package: review}, proof.LocalUser()))

	idx := New(s)

	forward := idx.AlternativesByAuthor(u, p1)
	assert.Contains(t, forward, p2)

	backward := idx.AlternativesByAuthor(u, p2)
	assert.Contains(t, backward, p1)
}

func TestAlternativesIndexRebuildsOnNewIngestion(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	s := store.New()
	idx := New(s)

	u := ids.NewId([16]byte{9})
	p1 := ids.PackageID{Source: "crates", Name: "p1"}
	p2 := ids.PackageID{Source: "crates", Name: "p2"}

	assert.Empty(t, idx.AlternativesByAuthor(u, p1))

	review := &proof.PackageReview{
		From: ids.PublicID{ID: u},
		Date: time.Now(),
		Package: proof.PackageIdentity{
			ID: ids.PackageVersionID{PackageID: p1, Version: ids.MustParseVersion("1.0.0")},
		},
		Alternatives: []ids.PackageID{p2},
	}
	require.NoError(t, s.Add(ctx, proof.Proof{Kind: proof.KindPackageReview, Signature: "sig1", Package: review}, proof.LocalUser()))

	assert.Contains(t, idx.AlternativesByAuthor(u, p1), p2)
}
