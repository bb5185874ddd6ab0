package crypto

import (
	"encoding/hex"
	"math/bits"

	"github.com/lukechampine/fastxor"
	"github.com/pkg/errors"
)

// KeySize and BlockSize are fixed by AES-128.
const (
	KeySize   = 16
	BlockSize = 16
)

var (
	ErrInvalidInputLength = errors.New("invalid input length")
	ErrLengthMismatch     = errors.New("buffers have different length")
)

// Key is an AES-128 key. It holds raw bytes; any text it was built from
// carries no meaning beyond documentation.
type Key [KeySize]byte

func NewKey(b []byte) (Key, error) {
	var k Key
	if len(b) != KeySize {
		return k, errors.Wrapf(ErrInvalidInputLength, "key: len = %d, want %d", len(b), KeySize)
	}
	copy(k[:], b)
	return k, nil
}

// Block is a single 16-byte plaintext or ciphertext block.
type Block [BlockSize]byte

func NewBlock(b []byte) (Block, error) {
	var blk Block
	if len(b) != BlockSize {
		return blk, errors.Wrapf(ErrInvalidInputLength, "block: len = %d, want %d", len(b), BlockSize)
	}
	copy(blk[:], b)
	return blk, nil
}

func (b Block) String() string {
	return hex.EncodeToString(b[:])
}

// HammingDistance returns the number of bits that differ between x and y,
// which must have the same length.
func HammingDistance(x, y []byte) (int, error) {
	if len(x) != len(y) {
		return 0, errors.Wrapf(ErrLengthMismatch, "len(x) = %d, len(y) = %d", len(x), len(y))
	}
	diff := make([]byte, len(x))
	fastxor.Bytes(diff, x, y)
	n := 0
	for _, b := range diff {
		n += bits.OnesCount8(b)
	}
	return n, nil
}
