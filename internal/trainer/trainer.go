// Package trainer implements the incremental BPE trainer: merge selection,
// the incremental corpus rewriter, and the artifact builder. It is the hot
// path the rest of the repo exists to serve.
package trainer

import (
	"context"
	"log/slog"
	"os"

	"github.com/bytepair/internal/codec"
	"github.com/bytepair/internal/corpus"
	"github.com/bytepair/internal/pairindex"
)

// Options configures a training run. The zero value trains with the
// default split byte (ASCII space) and no logger.
type Options struct {
	// SplitByte is the pre-tokenizer's word separator. Set it to a byte
	// that never occurs in the corpus to learn merges spanning what would
	// otherwise be word boundaries.
	SplitByte byte

	// Logger receives per-merge debug telemetry and an info line per
	// training run. A nil Logger disables logging (slog.DiscardHandler
	// semantics).
	Logger *slog.Logger
}

func (o Options) splitByte() byte {
	if o.SplitByte == 0 {
		return corpus.DefaultSplitByte
	}
	return o.SplitByte
}

func (o Options) logger() *slog.Logger {
	if o.Logger != nil {
		return o.Logger
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError + 1}))
}

// Train learns nMerges BPE merge rules from b and returns the merge list
// and the vocabulary they imply. An empty input returns empty artifacts,
// not an error.
func Train(ctx context.Context, b []byte, nMerges int, opts Options) (codec.Artifacts, error) {
	if nMerges > codec.MaxMerges {
		return codec.Artifacts{}, &codec.BudgetExhaustedError{Requested: nMerges}
	}

	log := opts.logger()

	if len(b) == 0 {
		log.Info("train: empty input, returning empty artifacts")
		return codec.Artifacts{Vocab: codec.Vocab{}}, nil
	}

	splitWords := corpus.Split(b, opts.splitByte())
	words := corpus.ToTokenWords(splitWords, corpus.IdentityByteToToken())

	idx := pairindex.New()
	sel := newSelector()
	touch := func(p codec.Pair, count uint32) { sel.Touch(p, count) }

	fillIndex(words, idx, touch)

	vocab := make(codec.Vocab, nMerges)
	merges := make([]codec.MergeRule, 0, nMerges)

	nextID := codec.FirstLearnedID
	applied := 0

	for applied < nMerges {
		if err := ctx.Err(); err != nil {
			log.Info("train: cancelled", "merges_applied", applied)
			break
		}

		batch := sel.NextBatch()
		if len(batch) == 0 {
			break
		}

		for _, q := range batch {
			if applied >= nMerges {
				break
			}
			if ctx.Err() != nil {
				break
			}

			newID := nextID
			nextID++

			left, _ := expand(vocab, q.Left)
			right, _ := expand(vocab, q.Right)
			bytes := append(append([]byte(nil), left...), right...)
			vocab[newID] = bytes

			merges = append(merges, codec.MergeRule{Pair: q, New: newID})
			applied++

			wordsBefore := idx.Len()
			wordsTouched := idx.Words(q).Len()
			applyMerge(words, idx, touch, q, newID)

			log.Debug("train: merge applied",
				"left", q.Left, "right", q.Right, "new_id", newID, "words_touched", wordsTouched,
				"pair_index_size_before", wordsBefore, "pair_index_size_after", idx.Len())
		}
	}

	log.Info("train: finished", "merges_applied", applied, "requested", nMerges, "distinct_words", len(words))

	return codec.Artifacts{Merges: merges, Vocab: vocab}, nil
}

// TrainFile reads the whole file at path and trains on its bytes.
func TrainFile(ctx context.Context, path string, nMerges int, opts Options) (codec.Artifacts, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return codec.Artifacts{}, err
	}
	return Train(ctx, b, nMerges, opts)
}

func expand(vocab codec.Vocab, id codec.TokenID) ([]byte, bool) {
	return vocab.Bytes(id)
}
