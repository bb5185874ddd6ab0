// Command ecbdistance encrypts four near-identical plaintext blocks with
// AES-128-ECB under one fixed key and prints how many bits the first
// ciphertext differs from each of the others.
package main

import (
	"encoding/hex"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"stavenzobairi.com/ecbdistance/crypto"
)

// key is 16 raw bytes; it only happens to be readable as ASCII.
const key = "StavenZobairi___"

// Plaintexts r1..r4 ("2 Pillen Aspirin" .. "5 Pillen Aspirin") differ only
// in their first byte.
var plaintexts = [...]string{
	"32 20 50 69 6C 6C 65 6E 20 41 73 70 69 72 69 6E",
	"33 20 50 69 6C 6C 65 6E 20 41 73 70 69 72 69 6E",
	"34 20 50 69 6C 6C 65 6E 20 41 73 70 69 72 69 6E",
	"35 20 50 69 6C 6C 65 6E 20 41 73 70 69 72 69 6E",
}

func main() {
	logger, err := zap.NewDevelopment()
	if err != nil {
		log.Fatal(err)
	}
	defer logger.Sync()

	if err := run(os.Stdout); err != nil {
		logger.Fatal("run failed", zap.Error(err))
	}
}

func run(w io.Writer) error {
	k, err := crypto.NewKey([]byte(key))
	if err != nil {
		return err
	}
	enc, err := crypto.NewEncrypter(k)
	if err != nil {
		return err
	}

	cts := make([]crypto.Block, len(plaintexts))
	for i, s := range plaintexts {
		pt, err := decodeBlock(s)
		if err != nil {
			return errors.Wrapf(err, "decoding r%d", i+1)
		}
		cts[i] = enc.Encrypt(pt)
	}

	fmt.Fprintf(w, "%q %q\n", cts[0][:], cts[1][:])
	for i, ct := range cts {
		fmt.Fprintf(w, "Ciphertext%d: %s\n", i+1, ct)
	}
	for i := 1; i < len(cts); i++ {
		d, err := crypto.HammingDistance(cts[0][:], cts[i][:])
		if err != nil {
			return errors.Wrapf(err, "comparing c1 and c%d", i+1)
		}
		fmt.Fprintf(w, "Hamming distance c1 vs c%d: %d\n", i+1, d)
	}
	return nil
}

// decodeBlock parses space-separated hex bytes into a block.
func decodeBlock(s string) (crypto.Block, error) {
	b, err := hex.DecodeString(strings.Join(strings.Fields(s), ""))
	if err != nil {
		return crypto.Block{}, err
	}
	return crypto.NewBlock(b)
}
