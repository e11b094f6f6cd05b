// Package artifact implements the on-disk schema for trained BPE
// artifacts: merges.bin, a little-endian sequence of (left, right) u16
// pairs in allocation order, and vocab.bin, a sequence of (id, len, bytes)
// records for every learned token.
package artifact

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/bytepair/internal/codec"
)

// WriteMerges writes merges to w as little-endian (left u16, right u16)
// records, in order. The new id for record i is implicitly
// codec.FirstLearnedID + i; it is not stored.
func WriteMerges(w io.Writer, merges []codec.MergeRule) error {
	bw := bufio.NewWriter(w)
	var buf [4]byte
	for _, m := range merges {
		binary.LittleEndian.PutUint16(buf[0:2], m.Pair.Left)
		binary.LittleEndian.PutUint16(buf[2:4], m.Pair.Right)
		if _, err := bw.Write(buf[:]); err != nil {
			return fmt.Errorf("artifact: write merge record: %w", err)
		}
	}
	return bw.Flush()
}

// WriteMergesFile writes merges to the file at path, creating or
// truncating it.
func WriteMergesFile(path string, merges []codec.MergeRule) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("artifact: create %s: %w", path, err)
	}
	defer f.Close()
	return WriteMerges(f, merges)
}

// ReadMerges parses merges.bin, allocating new ids in order starting at
// codec.FirstLearnedID.
func ReadMerges(r io.Reader) ([]codec.MergeRule, error) {
	br := bufio.NewReader(r)
	var merges []codec.MergeRule
	nextID := codec.FirstLearnedID

	var buf [4]byte
	for {
		_, err := io.ReadFull(br, buf[:])
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("artifact: read merge record: %w", err)
		}
		left := binary.LittleEndian.Uint16(buf[0:2])
		right := binary.LittleEndian.Uint16(buf[2:4])
		merges = append(merges, codec.MergeRule{
			Pair: codec.Pair{Left: left, Right: right},
			New:  nextID,
		})
		nextID++
	}
	return merges, nil
}

// ReadMergesFile reads merges.bin from path.
func ReadMergesFile(path string) ([]codec.MergeRule, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("artifact: open %s: %w", path, err)
	}
	defer f.Close()
	return ReadMerges(f)
}

// WriteVocab writes vocab to w as (id u16, len u16, bytes) records. Ids
// below codec.FirstLearnedID are implicit and never written. Records are
// emitted in ascending id order so ids are strictly increasing on disk.
func WriteVocab(w io.Writer, vocab codec.Vocab) error {
	bw := bufio.NewWriter(w)

	ids := make([]codec.TokenID, 0, len(vocab))
	for id := range vocab {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	var header [4]byte
	for _, id := range ids {
		b := vocab[id]
		if len(b) > 0xFFFF {
			return fmt.Errorf("artifact: vocab entry %d is %d bytes, exceeds u16 length field", id, len(b))
		}
		binary.LittleEndian.PutUint16(header[0:2], id)
		binary.LittleEndian.PutUint16(header[2:4], uint16(len(b)))
		if _, err := bw.Write(header[:]); err != nil {
			return fmt.Errorf("artifact: write vocab header: %w", err)
		}
		if _, err := bw.Write(b); err != nil {
			return fmt.Errorf("artifact: write vocab bytes: %w", err)
		}
	}
	return bw.Flush()
}

// WriteVocabFile writes vocab to the file at path.
func WriteVocabFile(path string, vocab codec.Vocab) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("artifact: create %s: %w", path, err)
	}
	defer f.Close()
	return WriteVocab(f, vocab)
}

// ReadVocab parses vocab.bin.
func ReadVocab(r io.Reader) (codec.Vocab, error) {
	br := bufio.NewReader(r)
	vocab := make(codec.Vocab)

	var header [4]byte
	var lastID int32 = -1
	for {
		_, err := io.ReadFull(br, header[:])
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("artifact: read vocab header: %w", err)
		}
		id := binary.LittleEndian.Uint16(header[0:2])
		length := binary.LittleEndian.Uint16(header[2:4])

		if id < codec.FirstLearnedID {
			return nil, fmt.Errorf("artifact: vocab id %d is below the learned id floor %d", id, codec.FirstLearnedID)
		}
		if int32(id) <= lastID {
			return nil, fmt.Errorf("artifact: vocab ids must be strictly increasing, got %d after %d", id, lastID)
		}
		lastID = int32(id)

		b := make([]byte, length)
		if _, err := io.ReadFull(br, b); err != nil {
			return nil, fmt.Errorf("artifact: read vocab bytes for id %d: %w", id, err)
		}
		vocab[id] = b
	}
	return vocab, nil
}

// ReadVocabFile reads vocab.bin from path.
func ReadVocabFile(path string) (codec.Vocab, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("artifact: open %s: %w", path, err)
	}
	defer f.Close()
	return ReadVocab(f)
}
