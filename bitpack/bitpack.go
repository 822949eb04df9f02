// Package bitpack implements the bit-granularity facade over the
// byte-granular bch codec (spec.md 4.11). Callers supply one byte per
// input or ecc bit -- only the low bit of each byte is consulted, so
// ASCII '0'/'1' work as well as 0/1 -- and get back error locations
// already adjusted for the front padding the byte-alignment step
// introduces. Grounded on encodebits_bch / decodebits_bch / correctbits_bch
// in the original C implementation.
package bitpack

import (
	"fmt"

	"github.com/go-bch/bch"
)

// packBits packs one-byte-per-bit values MSB-first into a byte slice,
// preceded by padFront zero bits so the total length lands on a byte
// boundary.
func packBits(values []byte, padFront int) []byte {
	out := make([]byte, (padFront+len(values)+7)/8)
	for i, v := range values {
		if v&1 == 0 {
			continue
		}
		bi := padFront + i
		out[bi>>3] |= 1 << uint(7-(bi&7))
	}
	return out
}

// EncodeBits computes the ecc parity of a one-byte-per-bit data buffer of
// length c.N()-c.ECCBits(), returning the parity as a one-byte-per-bit
// buffer of length c.ECCBits(). Grounded on encodebits_bch.
func EncodeBits(c *bch.Control, dataBits []byte) ([]byte, error) {
	k := c.N() - c.ECCBits()
	if len(dataBits) != k {
		return nil, fmt.Errorf("bitpack: dataBits must have length %d (n-ecc_bits), got %d", k, len(dataBits))
	}

	ndatabytes := (k + 7) / 8
	nPad := ndatabytes*8 - k

	dataBytes := packBits(dataBits, nPad)

	eccBuf := make([]byte, c.ECCBytes())
	if err := c.Encode(dataBytes, eccBuf); err != nil {
		return nil, err
	}

	eccBits := make([]byte, c.ECCBits())
	for k := 0; k < c.ECCBits(); k++ {
		if eccBuf[k>>3]&(1<<uint(7-(k&7))) != 0 {
			eccBits[k] = 1
		}
	}
	return eccBits, nil
}

// DecodeBits decodes a one-byte-per-bit received codeword split into
// dataBits (length c.N()-c.ECCBits()) and recvEccBits (length
// c.ECCBits()), writing bit-index error locations into errlocOut (whose
// capacity must be at least c.T()). Returned locations less than
// c.N()-c.ECCBits() index dataBits directly; locations at or above that
// are in the ecc field. Grounded on decodebits_bch.
func DecodeBits(c *bch.Control, dataBits, recvEccBits []byte, errlocOut []int) (int, error) {
	k := c.N() - c.ECCBits()
	if len(dataBits) != k {
		return 0, fmt.Errorf("bitpack: dataBits must have length %d (n-ecc_bits), got %d", k, len(dataBits))
	}
	if len(recvEccBits) != c.ECCBits() {
		return 0, fmt.Errorf("bitpack: recvEccBits must have length %d, got %d", c.ECCBits(), len(recvEccBits))
	}

	ndatabytes := (k + 7) / 8
	nPad := ndatabytes*8 - k

	dataBytes := packBits(dataBits, nPad)
	eccBytes := packBits(recvEccBits, 0)

	nerr, err := c.Decode(bch.DataRecvECC(ndatabytes, dataBytes, eccBytes), errlocOut)
	if err != nil {
		return 0, err
	}
	for i := 0; i < nerr; i++ {
		p := errlocOut[i]
		p = (p &^ 7) | (7 - (p & 7))
		errlocOut[i] = p - nPad
	}
	return nerr, nil
}

// CorrectBits flips the bits named by errloc (as returned by DecodeBits)
// in a one-byte-per-bit data buffer. Positions outside databits are
// skipped, mirroring correctbits_bch's ecc-location handling.
func CorrectBits(databits []byte, errloc []int) {
	for _, bi := range errloc {
		if bi >= 0 && bi < len(databits) {
			databits[bi] ^= 1
		}
	}
}
