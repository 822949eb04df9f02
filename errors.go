// Package bch implements a runtime-configurable binary Bose-Chaudhuri-
// Hocquenghem (BCH) error-correcting code engine: construction of GF(2^m),
// generator-polynomial synthesis, fast table-driven encoding, and syndrome
// plus Berlekamp-Massey/BTZ decoding.
package bch

import "errors"

var (
	// ErrInvalidArg is returned for invalid construction or call parameters:
	// m/t out of range, a reducible primitive polynomial, a data length
	// exceeding code capacity, or missing inputs for the chosen decode mode.
	ErrInvalidArg = errors.New("bch: invalid argument")

	// ErrBadMessage is returned when a received codeword is uncorrectable:
	// more than t errors, an inconsistent error-locator degree, a root
	// count mismatch, or a root mapping to an out-of-range bit position.
	ErrBadMessage = errors.New("bch: bad message")

	// ErrInternal is returned if init cannot build the degree-2 trace base;
	// this should never happen for a valid m.
	ErrInternal = errors.New("bch: internal failure")
)
