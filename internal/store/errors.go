// SPDX-FileCopyrightText: Copyright 2026 The wotengine Authors
// SPDX-License-Identifier: Apache-2.0

package store

import "errors"

// ErrUnknownProofKind is returned by Add when the proof's kind is not one
// this store knows how to index. Callers doing bulk ingestion should treat
// it as recoverable: log and move on to the next proof.
var ErrUnknownProofKind = errors.New("unknown proof kind")

// ErrMalformedContent wraps a failure surfaced by the collaborator codec
// while decoding a proof's content. Also recoverable.
var ErrMalformedContent = errors.New("malformed proof content")

// ErrQueryShape is panicked, not returned, when a caller asks for a query
// shape the store considers a programmer error rather than a data
// condition — currently the only such shape is a version filter with no
// name filter. Queries never fail on missing data; this is the one
// exception, and it is deliberately not recoverable via error return so
// it cannot be silently swallowed into an empty result set.
var ErrQueryShape = errors.New("unsupported query shape")
