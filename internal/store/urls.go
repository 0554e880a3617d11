// SPDX-FileCopyrightText: Copyright 2026 The wotengine Authors
// SPDX-License-Identifier: Apache-2.0

package store

import (
	"time"

	"github.com/revtrust/wotengine/internal/timestamped"
	"github.com/revtrust/wotengine/pkg/ids"
	"github.com/revtrust/wotengine/pkg/proof"
)

// URLProvenance names where a lookup_url result came from, in the
// priority order LookupURL returns them.
type URLProvenance int

const (
	// URLUnknown means the store has never seen a URL for this Id.
	URLUnknown URLProvenance = iota
	// URLFromOthers means the URL was only ever seen in another author's
	// trust-proof subject list, never self-declared.
	URLFromOthers
	// URLFromSelf means the author declared the URL themselves, but no
	// proof carrying that declaration was fetched from that same URL or
	// from the local user's repository.
	URLFromSelf
	// URLFromSelfVerified means the author declared the URL and a proof
	// carrying that declaration was fetched from it, or from the local
	// user's repository.
	URLFromSelfVerified
)

// URLLookup is the result of LookupURL.
type URLLookup struct {
	Provenance URLProvenance
	URL        ids.URL
}

// Verified reports whether this lookup's URL was both self-declared and
// fetched from that same location (or from the local user's repository).
func (l URLLookup) Verified() bool {
	return l.Provenance == URLFromSelfVerified
}

// FromSelf reports whether this lookup's URL was self-declared, verified
// or not.
func (l URLLookup) FromSelf() bool {
	return l.Provenance == URLFromSelfVerified || l.Provenance == URLFromSelf
}

// AnyUnverified reports whether a URL is known for this id at all, but was
// never confirmed by fetching from it.
func (l URLLookup) AnyUnverified() bool {
	return l.Provenance == URLFromSelf || l.Provenance == URLFromOthers
}

// recordURLFromFromFieldLocked stores the URL an author declares about
// themselves (the proof's `from` field). Once verified, the verified flag
// is sticky: a later unverified observation never clears it.
func (s *Store) recordURLFromFromFieldLocked(date time.Time, from ids.PublicID, fetchedFrom proof.FetchSource) {
	if from.URL == nil {
		return
	}
	verifiedNow := fetchedFrom.IsLocalUser()
	if !verifiedNow {
		if u, ok := fetchedFrom.URL(); ok {
			verifiedNow = u.Equal(*from.URL)
		}
	}

	existing, ok := s.urlBySelf[from.ID]
	if !ok {
		existing = &selfURL{}
		s.urlBySelf[from.ID] = existing
	}
	existing.ts.MergeFrom(timestamped.Of(date, *from.URL))
	existing.verified = existing.verified || verifiedNow
}

// recordURLFromToFieldLocked stores a URL some other author attributed to
// subject; it is never treated as authoritative.
func (s *Store) recordURLFromToFieldLocked(date time.Time, subject ids.PublicID) {
	if subject.URL == nil {
		return
	}
	entry := s.urlByOthers[subject.ID]
	entry.MergeFrom(timestamped.Of(date, *subject.URL))
	s.urlByOthers[subject.ID] = entry
}

// LookupURL returns the best-known URL for id, preferring a
// self-declared-and-verified URL, then a self-declared one, then one only
// reported by others.
func (s *Store) LookupURL(id ids.Id) URLLookup {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if self, ok := s.urlBySelf[id]; ok {
		if self.verified {
			return URLLookup{Provenance: URLFromSelfVerified, URL: self.ts.Value}
		}
		return URLLookup{Provenance: URLFromSelf, URL: self.ts.Value}
	}
	if other, ok := s.urlByOthers[id]; ok {
		return URLLookup{Provenance: URLFromOthers, URL: other.Value}
	}
	return URLLookup{Provenance: URLUnknown}
}
