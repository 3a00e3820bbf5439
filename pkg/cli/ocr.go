// Copyright (c) 2025, NVIDIA CORPORATION.  All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/NVIDIA/tdd-katas/pkg/bankocr"
	"github.com/NVIDIA/tdd-katas/pkg/defaults"
)

type ocrEntry struct {
	Entry   int    `json:"entry" yaml:"entry"`
	Account string `json:"account" yaml:"account"`
	Legible bool   `json:"legible" yaml:"legible"`
}

func ocrCmd() *cli.Command {
	return &cli.Command{
		Name:  "ocr",
		Usage: "Read account numbers from a bank OCR scan",
		Description: fmt.Sprintf(`Each entry is 3 lines of 27 characters drawn with pipes and underscores,
followed by a blank line. Digits that do not match a glyph read as %q.

Examples:
  katas ocr --file scan.txt
  katas ocr render 123456789 | katas ocr -t table`, string(bankocr.Illegible)),
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "file",
				Aliases: []string{"f"},
				Usage:   "Scan file to read (default: stdin)",
			},
			outputFlag(),
			formatFlag(),
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			in, closeIn, err := openInput(cmd.String("file"), cmd.Root().Reader)
			if err != nil {
				return err
			}
			defer closeIn()

			ctx, cancel := context.WithTimeout(ctx, defaults.CLICommandTimeout)
			defer cancel()

			accounts, err := bankocr.Parse(ctx, in)
			if err != nil {
				return fmt.Errorf("failed to read scan: %w", err)
			}

			entries := make([]ocrEntry, 0, len(accounts))
			for i, a := range accounts {
				entries = append(entries, ocrEntry{Entry: i + 1, Account: a, Legible: bankocr.IsLegible(a)})
			}
			return writeResult(ctx, cmd, entries)
		},
		Commands: []*cli.Command{
			ocrRenderCmd(),
		},
	}
}

func ocrRenderCmd() *cli.Command {
	return &cli.Command{
		Name:      "render",
		Usage:     "Draw account numbers as a scan",
		ArgsUsage: "<account...>",
		Action: func(_ context.Context, cmd *cli.Command) error {
			w := cmd.Root().Writer
			if w == nil {
				w = os.Stdout
			}
			for _, a := range cmd.Args().Slice() {
				d, err := bankocr.Render(a)
				if err != nil {
					return fmt.Errorf("failed to render %q: %w", a, err)
				}
				if _, err := fmt.Fprintln(w, d.String()); err != nil {
					return err
				}
			}
			return nil
		},
	}
}

// openInput opens path, or falls back to stdin when path is empty.
func openInput(path string, stdin io.Reader) (io.Reader, func(), error) {
	if path == "" {
		if stdin == nil {
			stdin = os.Stdin
		}
		return stdin, func() {}, nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open %q: %w", path, err)
	}
	return f, func() {
		if err := f.Close(); err != nil {
			slog.Warn("failed to close input", "path", path, "error", err)
		}
	}, nil
}
