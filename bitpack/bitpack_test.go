package bitpack

import (
	"math/rand"
	"testing"

	"github.com/go-bch/bch"
)

func toBits(data []byte, nbits int) []byte {
	out := make([]byte, nbits)
	for i := 0; i < nbits; i++ {
		if data[i>>3]&(1<<uint(7-(i&7))) != 0 {
			out[i] = 1
		}
	}
	return out
}

func TestEncodeBitsMatchesByteEncode(t *testing.T) {
	c, err := bch.Init(8, 4, 0)
	if err != nil {
		t.Fatalf("Init: %v", err)
	}
	k := c.N() - c.ECCBits()
	ndatabytes := (k + 7) / 8
	data := make([]byte, ndatabytes)
	rand.New(rand.NewSource(1)).Read(data)

	ecc := make([]byte, c.ECCBytes())
	if err := c.Encode(data, ecc); err != nil {
		t.Fatalf("Encode: %v", err)
	}

	nPad := ndatabytes*8 - k
	dataBits := toBits(data, ndatabytes*8)[nPad:]
	eccBits, err := EncodeBits(c, dataBits)
	if err != nil {
		t.Fatalf("EncodeBits: %v", err)
	}
	wantEccBits := toBits(ecc, c.ECCBits())
	for i := range wantEccBits {
		if eccBits[i] != wantEccBits[i] {
			t.Fatalf("eccBits[%d] = %d, want %d", i, eccBits[i], wantEccBits[i])
		}
	}
}

func TestDecodeBitsFindsInjectedError(t *testing.T) {
	c, err := bch.Init(8, 4, 0)
	if err != nil {
		t.Fatalf("Init: %v", err)
	}
	k := c.N() - c.ECCBits()
	ndatabytes := (k + 7) / 8
	data := make([]byte, ndatabytes)
	rand.New(rand.NewSource(2)).Read(data)
	ecc := make([]byte, c.ECCBytes())
	if err := c.Encode(data, ecc); err != nil {
		t.Fatalf("Encode: %v", err)
	}

	nPad := ndatabytes*8 - k
	dataBits := toBits(data, ndatabytes*8)[nPad:]
	eccBits := toBits(ecc, c.ECCBits())

	corruptBits := append([]byte(nil), dataBits...)
	flipIdx := 5
	corruptBits[flipIdx] ^= 1

	errloc := make([]int, c.T())
	n, err := DecodeBits(c, corruptBits, eccBits, errloc)
	if err != nil {
		t.Fatalf("DecodeBits: %v", err)
	}
	if n != 1 {
		t.Fatalf("DecodeBits returned %d errors, want 1", n)
	}
	if errloc[0] != flipIdx {
		t.Fatalf("errloc[0] = %d, want %d", errloc[0], flipIdx)
	}

	CorrectBits(corruptBits, errloc[:n])
	for i := range dataBits {
		if corruptBits[i] != dataBits[i] {
			t.Fatalf("bit %d not restored after CorrectBits", i)
		}
	}
}

func TestDecodeBitsNoErrorsReturnsZero(t *testing.T) {
	c, err := bch.Init(5, 2, 0)
	if err != nil {
		t.Fatalf("Init: %v", err)
	}
	k := c.N() - c.ECCBits()
	dataBits := make([]byte, k)
	eccBits, err := EncodeBits(c, dataBits)
	if err != nil {
		t.Fatalf("EncodeBits: %v", err)
	}
	errloc := make([]int, c.T())
	n, err := DecodeBits(c, dataBits, eccBits, errloc)
	if err != nil {
		t.Fatalf("DecodeBits: %v", err)
	}
	if n != 0 {
		t.Fatalf("DecodeBits returned %d, want 0", n)
	}
}

func TestEncodeBitsRejectsWrongLength(t *testing.T) {
	c, err := bch.Init(8, 4, 0)
	if err != nil {
		t.Fatalf("Init: %v", err)
	}
	k := c.N() - c.ECCBits()
	if _, err := EncodeBits(c, make([]byte, k+1)); err == nil {
		t.Fatal("wrong-length dataBits should be rejected")
	}
}
