// SPDX-FileCopyrightText: Copyright 2026 The wotengine Authors
// SPDX-License-Identifier: Apache-2.0

// Package proof defines the signed statements ("proofs") the web-of-trust
// engine ingests, and the FetchSource/Codec collaborator boundary.
//
// Everything here is a plain value type. Cryptographic verification and
// wire-format parsing are the Codec collaborator's responsibility; by the
// time a Proof reaches ProofStore.Add it is assumed already verified.
package proof

import "github.com/revtrust/wotengine/pkg/ids"

// Signature is an opaque digital signature, used only as a map key.
type Signature = string

// Kind identifies which of the three recognized proof shapes a Proof
// carries.
type Kind string

// The three proof kinds the store knows how to ingest. Any other kind
// reported by a Codec causes ProofStore.Add to fail with
// ErrUnknownProofKind.
const (
	KindCodeReview    Kind = "code-review"
	KindPackageReview Kind = "package-review"
	KindTrust         Kind = "trust"
)

// Proof is an already-verified, already-parsed statement signed by some
// Id. Exactly one of Trust, Package or Code is set, matching Kind.
type Proof struct {
	Kind      Kind
	Signature Signature
	Trust     *TrustProof
	Package   *PackageReview
	Code      *CodeReview
}

// FetchSource records where a proof was obtained from: the local user's
// own repository (trusted by construction) or some remote URL.
type FetchSource struct {
	local bool
	url   ids.URL
}

// LocalUser is the FetchSource for proofs out of the local user's own
// repository.
func LocalUser() FetchSource {
	return FetchSource{local: true}
}

// FromURL is the FetchSource for proofs fetched from a remote repository
// at url.
func FromURL(url ids.URL) FetchSource {
	return FetchSource{url: url}
}

// IsLocalUser reports whether this source is the local user's own
// repository.
func (f FetchSource) IsLocalUser() bool {
	return f.local
}

// URL returns the remote URL this proof was fetched from, and whether one
// is set (false for LocalUser).
func (f FetchSource) URL() (ids.URL, bool) {
	if f.local {
		return "", false
	}
	return f.url, true
}
