// Package fingerprint derives a stable content hash over a token
// stream, so callers (an editor's incremental-highlight cache, a CI
// diff tool) can tell whether retokenizing a buffer actually changed
// anything without comparing every token field by field.
package fingerprint

import (
	"encoding/binary"
	"fmt"

	"golang.org/x/crypto/blake2b"

	"github.com/fish-tools/fishtok/token"
)

// Size is the digest length in bytes: 32, the BLAKE2b-256 output size.
const Size = blake2b.Size256

// Digest is the accumulated fingerprint of a token stream.
type Digest [Size]byte

// String renders the digest as lowercase hex.
func (d Digest) String() string {
	return fmt.Sprintf("%x", d[:])
}

// Stream hashes a complete slice of tokens. Two streams with the same
// kinds, error kinds, texts, offsets, and lengths -- in the same order -- always
// fingerprint identically, regardless of how they were produced.
func Stream(tokens []token.Token) (Digest, error) {
	h, err := blake2b.New256(nil)
	if err != nil {
		return Digest{}, fmt.Errorf("creating hash state: %w", err)
	}

	var buf [8]byte
	for _, tok := range tokens {
		binary.LittleEndian.PutUint32(buf[0:4], uint32(tok.Kind))
		binary.LittleEndian.PutUint32(buf[4:8], uint32(tok.ErrorKind))
		h.Write(buf[:])

		binary.LittleEndian.PutUint64(buf[:8], uint64(uint32(tok.Offset)))
		h.Write(buf[:8])
		binary.LittleEndian.PutUint64(buf[:8], uint64(uint32(tok.Length)))
		h.Write(buf[:8])

		h.Write([]byte(tok.Text))
		h.Write([]byte{0}) // separator, guards against text concatenation collisions
	}

	var out Digest
	copy(out[:], h.Sum(nil))
	return out, nil
}
