// SPDX-FileCopyrightText: Copyright 2026 The wotengine Authors
// SPDX-License-Identifier: Apache-2.0

// Package trust implements the web-of-trust graph traversal: given a root
// identity and a set of distance parameters, it walks the trust edges
// recorded in the proof store and produces a TrustSet describing who is
// trusted, at what level and distance, and who has been banned.
package trust

import "github.com/revtrust/wotengine/pkg/ids"

// TrustDistanceParams bounds how far trust is allowed to propagate, and
// how much distance each trust level costs to cross.
type TrustDistanceParams struct {
	MaxDistance         uint64
	HighTrustDistance   uint64
	MediumTrustDistance uint64
	LowTrustDistance    uint64
}

// DefaultTrustDistanceParams returns the conventional defaults: high-trust
// edges cost nothing to cross, medium costs 1, low costs 5, and no path may
// exceed a total distance of 10.
func DefaultTrustDistanceParams() TrustDistanceParams {
	return TrustDistanceParams{
		MaxDistance:         10,
		HighTrustDistance:   0,
		MediumTrustDistance: 1,
		LowTrustDistance:    5,
	}
}

// NewNoWoT returns params under which no edge can ever be crossed: every
// trust level costs more distance than MaxDistance allows, so Calculate
// can only ever conclude the root itself. Setting every per-level distance
// to zero would not do this, since a zero-cost hop at distance 0 is a
// perfectly ordinary, traversable result: MaxDistance must be paired with
// per-level costs that exceed it, not with an all-zero struct.
func NewNoWoT() TrustDistanceParams {
	return TrustDistanceParams{
		MaxDistance:         0,
		HighTrustDistance:   1,
		MediumTrustDistance: 1,
		LowTrustDistance:    1,
	}
}

// distanceFor returns the distance cost of crossing an edge at level, and
// whether that level is traversable at all. Distrust and None are never
// traversable.
func (p TrustDistanceParams) distanceFor(level ids.TrustLevel) (uint64, bool) {
	switch level {
	case ids.Low:
		return p.LowTrustDistance, true
	case ids.Medium:
		return p.MediumTrustDistance, true
	case ids.High:
		return p.HighTrustDistance, true
	default:
		return 0, false
	}
}
