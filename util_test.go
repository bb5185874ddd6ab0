package main

import (
	"encoding/hex"
	"io/ioutil"
	"testing"
)

func readFile(t *testing.T, path string) []byte {
	t.Helper()
	data, err := ioutil.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	return data
}

func readHexFile(t *testing.T, path string) []byte {
	t.Helper()
	hdata := readFile(t, path)
	data := make([]byte, hex.DecodedLen(len(hdata)))
	if _, err := hex.Decode(data, hdata); err != nil {
		t.Fatalf("decoding hex %s: %v", path, err)
	}
	return data
}
