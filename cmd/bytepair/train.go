package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bytepair/internal/artifact"
	"github.com/bytepair/internal/runid"
	"github.com/bytepair/internal/trainer"
)

func newTrainCmd() *cobra.Command {
	var (
		inputPath  string
		mergesPath string
		outPath    string
		nMerges    int
		splitByte  string
		debug      bool
	)

	cmd := &cobra.Command{
		Use:   "train",
		Short: "Learn a BPE merge list and vocabulary from a corpus",
		RunE: func(cmd *cobra.Command, args []string) error {
			if inputPath == "" {
				return argError(fmt.Errorf("train: --input is required"))
			}
			if nMerges < 0 {
				return argError(fmt.Errorf("train: --n-merges must be >= 0, got %d", nMerges))
			}
			sb, err := splitByteFlag(splitByte)
			if err != nil {
				return argError(err)
			}

			id := runid.New()
			log := newLogger(debug).With("run_id", id, "cmd", "train")

			prog := newProgress()
			prog.Printf("bytepair train: learning up to %d merges from %s\n", nMerges, inputPath)

			art, err := trainer.TrainFile(cmd.Context(), inputPath, nMerges, trainer.Options{
				SplitByte: sb,
				Logger:    log,
			})
			if err != nil {
				return err
			}

			if err := artifact.WriteMergesFile(mergesPath, art.Merges); err != nil {
				return ioError(fmt.Errorf("train: write merges: %w", err))
			}
			if err := artifact.WriteVocabFile(outPath, art.Vocab); err != nil {
				return ioError(fmt.Errorf("train: write vocab: %w", err))
			}

			prog.Printf("bytepair train: learned %d merges, %d vocab entries\n", len(art.Merges), len(art.Vocab))
			log.Info("train: artifacts written", "merges_path", mergesPath, "vocab_path", outPath)
			return nil
		},
	}

	cmd.Flags().StringVar(&inputPath, "input", "", "path to the training corpus (required)")
	cmd.Flags().StringVar(&mergesPath, "merges", "merges.bin", "path to write the learned merge list")
	cmd.Flags().StringVar(&outPath, "out", "vocab.bin", "path to write the learned vocabulary")
	cmd.Flags().IntVar(&nMerges, "n-merges", 1000, "number of merge rules to learn")
	cmd.Flags().StringVar(&splitByte, "split-byte", " ", "pre-tokenizer word separator; a single ASCII character (a lone digit is taken as that character) or a numeric byte value 0-255 (0 selects the default, space)")
	cmd.Flags().BoolVar(&debug, "debug", false, "log per-merge detail")

	return cmd
}

// splitByteFlag accepts either a single ASCII character (the common
// case, " "; a lone digit is that character, not a number) or a numeric
// byte value, so a caller wanting cross-boundary merges can pass a byte
// that never occurs in the corpus. A numeric 0 is returned as 0, which the
// trainer treats as its default separator, ASCII space.
func splitByteFlag(s string) (byte, error) {
	if len(s) == 1 {
		return s[0], nil
	}
	var n int
	if _, err := fmt.Sscanf(s, "%d", &n); err != nil || n < 0 || n > 255 {
		return 0, fmt.Errorf("invalid --split-byte %q: want a single character or a byte value 0-255", s)
	}
	return byte(n), nil
}
