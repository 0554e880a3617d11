// SPDX-FileCopyrightText: Copyright 2026 The wotengine Authors
// SPDX-License-Identifier: Apache-2.0

// Package timestamped implements the one merge rule every index in the
// proof store is built on: keep whichever value carries the newer date,
// and on an exact tie keep the most recently ingested one.
package timestamped

import "time"

// Timestamped pairs a value with the UTC date of the proof it came from.
type Timestamped[T any] struct {
	Date  time.Time
	Value T
}

// Of constructs a Timestamped pair.
func Of[T any](date time.Time, value T) Timestamped[T] {
	return Timestamped[T]{Date: date.UTC(), Value: value}
}

// MergeFrom overwrites t's date and value with other's iff other is not
// older. The comparison is deliberately >=, not >: on equal timestamps the
// later-ingested proof wins. This is the one place tie-breaking is
// decided, and every index relies on it for deterministic, order-sensitive
// (but not order-*dependent* in outcome) ingestion.
//
// Returns true if t was changed.
func (t *Timestamped[T]) MergeFrom(other Timestamped[T]) bool {
	if !other.Date.Before(t.Date) {
		t.Date = other.Date
		t.Value = other.Value
		return true
	}
	return false
}
