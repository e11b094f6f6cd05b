package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/bytepair/internal/artifact"
	"github.com/bytepair/internal/codec"
	"github.com/bytepair/internal/tokenizer/core"
	"github.com/bytepair/internal/tokenizer/trie"
)

func newEncodeCmd() *cobra.Command {
	var (
		vocabPath  string
		mergesPath string
		inputPath  string
		outPath    string
	)

	cmd := &cobra.Command{
		Use:   "encode",
		Short: "Tokenize input against a trained vocabulary",
		RunE: func(cmd *cobra.Command, args []string) error {
			if vocabPath == "" {
				return argError(fmt.Errorf("encode: --vocab is required"))
			}

			vocab, err := artifact.ReadVocabFile(vocabPath)
			if err != nil {
				return ioError(fmt.Errorf("encode: read vocab: %w", err))
			}

			in, err := openInput(inputPath)
			if err != nil {
				return ioError(fmt.Errorf("encode: open input: %w", err))
			}
			defer in.Close()
			input, err := io.ReadAll(in)
			if err != nil {
				return ioError(fmt.Errorf("encode: read input: %w", err))
			}

			var tokens []uint16
			if mergesPath != "" {
				// --merges opts into the reference encoder: replay the merge
				// list in rank order instead of longest match.
				merges, err := artifact.ReadMergesFile(mergesPath)
				if err != nil {
					return ioError(fmt.Errorf("encode: read merges: %w", err))
				}
				tok := core.New(codec.Artifacts{Merges: merges, Vocab: vocab})
				tokens = tok.EncodeReference(input)
			} else {
				tr, err := trie.Build(vocab)
				if err != nil {
					return err
				}
				tokens = tr.Encode(input)
			}

			out, err := createOutput(outPath)
			if err != nil {
				return ioError(fmt.Errorf("encode: open output: %w", err))
			}
			defer out.Close()
			if err := writeTokens(out, tokens); err != nil {
				return ioError(fmt.Errorf("encode: write tokens: %w", err))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&vocabPath, "vocab", "", "path to a trained vocabulary (required)")
	cmd.Flags().StringVar(&mergesPath, "merges", "", "path to a trained merge list; when set, uses the reference encoder instead of the trie")
	cmd.Flags().StringVar(&inputPath, "input", "-", "path to the text to encode, or - for stdin")
	cmd.Flags().StringVar(&outPath, "out", "-", "path to write the token stream, or - for stdout")

	return cmd
}
