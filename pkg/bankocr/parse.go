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

package bankocr

import (
	"bufio"
	"context"
	stderrors "errors"
	"io"
	"log/slog"
	"strings"

	"github.com/NVIDIA/tdd-katas/pkg/defaults"
	"github.com/NVIDIA/tdd-katas/pkg/errors"
)

// Parse reads every entry from r and returns the account numbers in order.
// Each entry is three glyph lines followed by a blank line; the separator
// after the last entry is optional. Extra blank lines before an entry or at
// the end of the input are ignored.
func Parse(ctx context.Context, r io.Reader) ([]string, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 128), defaults.MaxOCRLineLength)

	var (
		accounts []string
		block    Display
		filled   int
		lineNo   int
	)

	flush := func() error {
		account, err := ParseDisplay(block)
		if err != nil {
			return errors.WrapWithContext(errors.ErrCodeInvalidRequest, "invalid entry", err,
				map[string]any{"line": lineNo - filled + 1})
		}
		if len(accounts) >= defaults.MaxOCREntries {
			return errors.NewWithContext(errors.ErrCodeInvalidRequest, "too many entries",
				map[string]any{"max": defaults.MaxOCREntries})
		}
		accounts = append(accounts, account)
		block = Display{}
		filled = 0
		return nil
	}

	for sc.Scan() {
		if err := ctx.Err(); err != nil {
			return nil, errors.Wrap(errors.ErrCodeTimeout, "entry parsing canceled", err)
		}
		line := strings.TrimRight(sc.Text(), "\r")

		if filled == LinesPerEntry {
			if strings.TrimSpace(line) != "" {
				return nil, errors.NewWithContext(errors.ErrCodeInvalidRequest, "expected blank line between entries",
					map[string]any{"line": lineNo + 1})
			}
			if err := flush(); err != nil {
				return nil, err
			}
			lineNo++
			continue
		}

		lineNo++
		// Blank lines before an entry are skipped. A full-width blank line is
		// still a glyph row: the top row of an entry of ones and fours.
		if filled == 0 && len(line) < LineWidth && strings.TrimSpace(line) == "" {
			continue
		}
		block[filled] = line
		filled++
	}
	if err := sc.Err(); err != nil {
		if stderrors.Is(err, bufio.ErrTooLong) {
			return nil, errors.WrapWithContext(errors.ErrCodeInvalidRequest, "entry line too long", err,
				map[string]any{"line": lineNo + 1, "max": defaults.MaxOCRLineLength})
		}
		return nil, errors.Wrap(errors.ErrCodeInternal, "failed to read entries", err)
	}

	switch {
	case filled == LinesPerEntry:
		if err := flush(); err != nil {
			return nil, err
		}
	case filled > 0 && !isBlank(block[:filled]):
		return nil, errors.NewWithContext(errors.ErrCodeInvalidRequest, "incomplete entry at end of input",
			map[string]any{"line": lineNo - filled + 1, "lines": filled})
	}

	slog.Debug("parsed ocr entries", "entries", len(accounts), "lines", lineNo)
	return accounts, nil
}

func isBlank(lines []string) bool {
	for _, l := range lines {
		if strings.TrimSpace(l) != "" {
			return false
		}
	}
	return true
}
