// SPDX-FileCopyrightText: Copyright 2026 The wotengine Authors
// SPDX-License-Identifier: Apache-2.0

package trust

import "github.com/revtrust/wotengine/pkg/ids"

// TrustedEntry is what the engine knows about one trusted identity: the
// shortest distance found so far, the highest effective trust level found
// so far, and which neighbors vouched for it at what level.
type TrustedEntry struct {
	Distance            uint64
	EffectiveTrustLevel ids.TrustLevel
	ReportedBy          map[ids.Id]ids.TrustLevel
}

// DistrustedEntry records who banned an identity.
type DistrustedEntry struct {
	ReportedBy map[ids.Id]struct{}
}

// TrustSet is the output of a trust calculation: a plain, self-contained
// snapshot owned by the caller. It references no store state, so it is
// cheap to retain across queries and to hand to the issue resolver.
type TrustSet struct {
	Trusted    map[ids.Id]*TrustedEntry
	Distrusted map[ids.Id]*DistrustedEntry
}

// newTrustSet returns an empty TrustSet.
func newTrustSet() *TrustSet {
	return &TrustSet{
		Trusted:    map[ids.Id]*TrustedEntry{},
		Distrusted: map[ids.Id]*DistrustedEntry{},
	}
}

// IsTrusted reports whether id is in the trusted set.
func (ts *TrustSet) IsTrusted(id ids.Id) bool {
	_, ok := ts.Trusted[id]
	return ok
}

// IsDistrusted reports whether id has been banned.
func (ts *TrustSet) IsDistrusted(id ids.Id) bool {
	_, ok := ts.Distrusted[id]
	return ok
}

// GetEffectiveTrustLevel returns id's stored trusted level if present,
// Distrust if it has been banned, and TrustNone otherwise.
func (ts *TrustSet) GetEffectiveTrustLevel(id ids.Id) ids.TrustLevel {
	if e, ok := ts.Trusted[id]; ok {
		return e.EffectiveTrustLevel
	}
	if ts.IsDistrusted(id) {
		return ids.Distrust
	}
	return ids.TrustNone
}

// recordTrustedID merges a newly-found (distance, level) pair for id,
// reported by reporter, into the trusted set. If id is already present,
// distance is kept at its minimum and level at its maximum, and
// reportedBy[reporter] is upgraded to the higher of its existing value (if
// any) and level. Returns true if anything changed, which tells the
// traversal whether to push a new frontier visit.
func (ts *TrustSet) recordTrustedID(id ids.Id, reporter ids.Id, distance uint64, level ids.TrustLevel) bool {
	entry, ok := ts.Trusted[id]
	if !ok {
		ts.Trusted[id] = &TrustedEntry{
			Distance:            distance,
			EffectiveTrustLevel: level,
			ReportedBy:          map[ids.Id]ids.TrustLevel{reporter: level},
		}
		return true
	}

	changed := false
	if distance < entry.Distance {
		entry.Distance = distance
		changed = true
	}
	if level > entry.EffectiveTrustLevel {
		entry.EffectiveTrustLevel = level
		changed = true
	}
	if existing, ok := entry.ReportedBy[reporter]; !ok || level > existing {
		entry.ReportedBy[reporter] = level
		changed = true
	}
	return changed
}

// recordDistrustedID bans id, recording reporter among those who banned
// it, and removes id from the trusted set if it was there. Returns true
// if id was newly banned (i.e. this is the first time any reporter banned
// it), which the traversal uses to detect new distrust for the restart
// check.
func (ts *TrustSet) recordDistrustedID(id ids.Id, reporter ids.Id) bool {
	delete(ts.Trusted, id)

	entry, ok := ts.Distrusted[id]
	if !ok {
		ts.Distrusted[id] = &DistrustedEntry{ReportedBy: map[ids.Id]struct{}{reporter: {}}}
		return true
	}
	if _, already := entry.ReportedBy[reporter]; !already {
		entry.ReportedBy[reporter] = struct{}{}
	}
	return false
}
