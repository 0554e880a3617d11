// SPDX-FileCopyrightText: Copyright 2026 The wotengine Authors
// SPDX-License-Identifier: Apache-2.0

package proof

// Codec is the external collaborator responsible for cryptographic
// verification and wire-format parsing of proofs. It is never implemented
// or called inside this module: proof repository layout, signature schemes
// and content encoding are deliberately out of scope. It is declared here
// only to document the contract a caller's codec must satisfy before
// handing a Proof to ProofStore.Add.
type Codec interface {
	// Verify checks the cryptographic signature of raw proof bytes.
	Verify(raw []byte) error
	// Kind reports which of the recognized proof kinds raw bytes encode,
	// or an error for anything else.
	Kind(raw []byte) (Kind, error)
	// ParseContent decodes raw bytes of the given kind into a Proof.
	ParseContent(raw []byte, kind Kind) (Proof, error)
}
