package bch

import "fmt"

// DecodeInput selects exactly one of the four calling conventions
// decode_bch documents in the original C implementation, in place of five
// positional nilable pointer parameters: Data+RecvECC, CalcECC+RecvECC,
// CalcECC alone (already XORed with the received ecc), or Syndromes
// directly. Len is the data length in bytes and must always be set,
// regardless of which other fields are provided.
type DecodeInput struct {
	Len       int
	Data      []byte
	RecvECC   []byte
	CalcECC   []byte
	Syndromes []uint32
}

// DataRecvECC builds the decode_bch(data, recv_ecc) calling convention:
// the decoder computes the ecc of data itself and XORs it with recvECC.
func DataRecvECC(length int, data, recvECC []byte) DecodeInput {
	return DecodeInput{Len: length, Data: data, RecvECC: recvECC}
}

// CalcRecvECC builds the decode_bch(calc_ecc, recv_ecc) calling
// convention, for callers who already computed the ecc of the data
// themselves (e.g. via hardware).
func CalcRecvECC(length int, calcECC, recvECC []byte) DecodeInput {
	return DecodeInput{Len: length, CalcECC: calcECC, RecvECC: recvECC}
}

// XoredECC builds the decode_bch(ecc) calling convention, for callers
// who already XORed the received and calculated ecc themselves.
func XoredECC(length int, ecc []byte) DecodeInput {
	return DecodeInput{Len: length, CalcECC: ecc}
}

// SyndromeInput builds the decode_bch(syn) calling convention, for
// callers with hardware-computed syndromes (skips the syndrome stage
// entirely).
func SyndromeInput(length int, syn []uint32) DecodeInput {
	return DecodeInput{Len: length, Syndromes: syn}
}

// Decode locates bit errors in a received codeword. errlocOut must have
// capacity at least c.T(); on a positive return, its first n entries hold
// distinct bit positions in the codeword (data || ecc), with position p
// correctable by data[p/8] ^= 1<<(p%8) when p < 8*in.Len. A zero return
// means no errors were detected. Grounded on decode_bch in the original C
// implementation.
func (c *Control) Decode(in DecodeInput, errlocOut []int) (int, error) {
	if len(errlocOut) < c.t {
		return 0, fmt.Errorf("%w: errlocOut needs capacity >= t=%d, got %d", ErrInvalidArg, c.t, len(errlocOut))
	}

	maxLen := (c.n - c.eccBits + 7) / 8
	if in.Len > maxLen {
		return 0, fmt.Errorf("%w: len=%d exceeds code capacity of %d bytes", ErrInvalidArg, in.Len, maxLen)
	}

	syn := in.Syndromes
	if syn == nil {
		if in.CalcECC == nil {
			if in.Data == nil || in.RecvECC == nil {
				return 0, fmt.Errorf("%w: data+recv_ecc decode mode requires both", ErrInvalidArg)
			}
			computeECC(c, in.Data[:in.Len])
		} else {
			loadECC8(c, c.eccBuf, in.CalcECC)
		}
		if in.RecvECC != nil {
			loadECC8(c, c.eccBuf2, in.RecvECC)
			var sum uint32
			for i := range c.eccBuf {
				c.eccBuf[i] ^= c.eccBuf2[i]
				sum |= c.eccBuf[i]
			}
			if sum == 0 {
				return 0, nil
			}
		}
		computeSyndromes(c, c.eccBuf, c.syn)
		syn = c.syn
	}

	deg, err := berlekampMassey(c, syn)
	if err != nil {
		return 0, err
	}
	if deg == 0 {
		return 0, nil
	}

	nroots := findRoots(c, 1, c.elp, errlocOut)
	if nroots != deg {
		return 0, ErrBadMessage
	}

	nbits := in.Len*8 + c.eccBits
	for i := 0; i < deg; i++ {
		e := errlocOut[i]
		if e >= nbits {
			return 0, ErrBadMessage
		}
		p := nbits - 1 - e
		errlocOut[i] = (p &^ 7) | (7 - (p & 7))
	}
	return deg, nil
}
