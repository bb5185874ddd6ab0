package crypto

import (
	"crypto/aes"
	"crypto/cipher"

	"github.com/andreburgaud/crypt2go/ecb"
	"github.com/pkg/errors"
)

// Encrypter encrypts single blocks with AES-128 in ECB mode. There is no IV
// and no chaining, so equal plaintext blocks always give equal ciphertext.
type Encrypter struct {
	mode cipher.BlockMode
}

func NewEncrypter(key Key) (*Encrypter, error) {
	c, err := aes.NewCipher(key[:])
	if err != nil {
		return nil, errors.Wrap(err, "creating AES cipher")
	}
	return &Encrypter{mode: ecb.NewECBEncrypter(c)}, nil
}

func (e *Encrypter) Encrypt(pt Block) Block {
	var ct Block
	e.mode.CryptBlocks(ct[:], pt[:])
	return ct
}

// EncryptBlock encrypts one 16-byte plaintext under a 16-byte key. Both
// lengths are checked before the cipher is created.
func EncryptBlock(key, pt []byte) ([]byte, error) {
	k, err := NewKey(key)
	if err != nil {
		return nil, err
	}
	blk, err := NewBlock(pt)
	if err != nil {
		return nil, err
	}
	enc, err := NewEncrypter(k)
	if err != nil {
		return nil, err
	}
	ct := enc.Encrypt(blk)
	return ct[:], nil
}
