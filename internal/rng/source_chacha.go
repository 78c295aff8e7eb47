package rng

import (
	"encoding/binary"
	"math/bits"

	"golang.org/x/crypto/chacha20"
)

// blocksPerNonce keeps the 32-bit block counter of a single cipher far from
// wrapping.
const blocksPerNonce = 1 << 30

// nonce implements a 12-byte little endian counter suitable for use as an
// incrementing ChaCha20 nonce.
type nonce [chacha20.NonceSize]byte

func (n *nonce) inc() {
	n0 := binary.LittleEndian.Uint32(n[0:4])
	n1 := binary.LittleEndian.Uint32(n[4:8])
	n2 := binary.LittleEndian.Uint32(n[8:12])

	var carry uint32
	n0, carry = bits.Add32(n0, 1, carry)
	n1, carry = bits.Add32(n1, 0, carry)
	n2, _ = bits.Add32(n2, 0, carry)

	binary.LittleEndian.PutUint32(n[0:4], n0)
	binary.LittleEndian.PutUint32(n[4:8], n1)
	binary.LittleEndian.PutUint32(n[8:12], n2)
}

// chachaSource reads 64-bit words from a ChaCha20 keystream one block at a
// time.  The key never changes, so the stream is fully determined by it.
type chachaSource struct {
	key    [chacha20.KeySize]byte
	nonce  nonce
	cipher *chacha20.Cipher
	buf    [64]byte
	pos    int
	blocks int
}

func newChaChaSource(key [chacha20.KeySize]byte) *chachaSource {
	s := &chachaSource{key: key}
	s.rekey()
	return s
}

func (s *chachaSource) rekey() {
	// never errors with correct key and nonce sizes
	s.cipher, _ = chacha20.NewUnauthenticatedCipher(s.key[:], s.nonce[:])
	s.nonce.inc()
	s.blocks = 0
	s.pos = len(s.buf)
}

func (s *chachaSource) refill() {
	if s.blocks == blocksPerNonce {
		s.rekey()
	}
	clear(s.buf[:])
	s.cipher.XORKeyStream(s.buf[:], s.buf[:])
	s.blocks++
	s.pos = 0
}

func (s *chachaSource) Uint64() uint64 {
	if s.pos == len(s.buf) {
		s.refill()
	}
	v := binary.LittleEndian.Uint64(s.buf[s.pos:])
	s.pos += 8
	return v
}
