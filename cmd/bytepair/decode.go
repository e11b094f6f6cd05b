package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bytepair/internal/artifact"
	"github.com/bytepair/internal/codec"
	"github.com/bytepair/internal/tokenizer/core"
)

func newDecodeCmd() *cobra.Command {
	var (
		vocabPath string
		inputPath string
		outPath   string
		utf8      bool
	)

	cmd := &cobra.Command{
		Use:   "decode",
		Short: "Expand a token stream back to bytes",
		RunE: func(cmd *cobra.Command, args []string) error {
			if vocabPath == "" {
				return argError(fmt.Errorf("decode: --vocab is required"))
			}

			vocab, err := artifact.ReadVocabFile(vocabPath)
			if err != nil {
				return ioError(fmt.Errorf("decode: read vocab: %w", err))
			}

			in, err := openInput(inputPath)
			if err != nil {
				return ioError(fmt.Errorf("decode: open input: %w", err))
			}
			defer in.Close()
			tokens, err := readTokens(in)
			if err != nil {
				return ioError(fmt.Errorf("decode: read tokens: %w", err))
			}

			tok := core.New(codec.Artifacts{Vocab: vocab})

			out, err := createOutput(outPath)
			if err != nil {
				return ioError(fmt.Errorf("decode: open output: %w", err))
			}
			defer out.Close()

			if utf8 {
				s, err := tok.DecodeUTF8(tokens)
				if err != nil {
					return err
				}
				_, err = out.Write([]byte(s))
				return err
			}

			b, err := tok.Decode(tokens)
			if err != nil {
				return err
			}
			_, err = out.Write(b)
			return err
		},
	}

	cmd.Flags().StringVar(&vocabPath, "vocab", "", "path to a trained vocabulary (required)")
	cmd.Flags().StringVar(&inputPath, "input", "-", "path to a token stream, or - for stdin")
	cmd.Flags().StringVar(&outPath, "out", "-", "path to write the decoded bytes, or - for stdout")
	cmd.Flags().BoolVar(&utf8, "utf8", false, "validate decoded output as UTF-8 text")

	return cmd
}
