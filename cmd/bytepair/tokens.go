package main

import (
	"bufio"
	"encoding/binary"
	"io"

	"github.com/bytepair/internal/codec"
)

// writeTokens serializes a token sequence as little-endian u16 values,
// the simplest wire format that round-trips through encode/decode
// without pulling in the merges.bin/vocab.bin schema those commands
// don't need.
func writeTokens(w io.Writer, tokens []codec.TokenID) error {
	bw := bufio.NewWriter(w)
	var buf [2]byte
	for _, id := range tokens {
		binary.LittleEndian.PutUint16(buf[:], id)
		if _, err := bw.Write(buf[:]); err != nil {
			return err
		}
	}
	return bw.Flush()
}

func readTokens(r io.Reader) ([]codec.TokenID, error) {
	br := bufio.NewReader(r)
	var tokens []codec.TokenID
	var buf [2]byte
	for {
		_, err := io.ReadFull(br, buf[:])
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		tokens = append(tokens, binary.LittleEndian.Uint16(buf[:]))
	}
	return tokens, nil
}
