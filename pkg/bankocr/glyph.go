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
	"strings"

	"github.com/NVIDIA/tdd-katas/pkg/errors"
)

const (
	// DigitWidth is the number of columns in one glyph.
	DigitWidth = 3
	// DigitsPerEntry is the number of digits in an account number.
	DigitsPerEntry = 9
	// LineWidth is the number of columns in an entry line.
	LineWidth = DigitWidth * DigitsPerEntry
	// LinesPerEntry is the number of glyph lines in an entry.
	LinesPerEntry = 3

	// Illegible marks a glyph that matches no digit.
	Illegible = '~'
)

// Digit is one glyph: three lines of three columns.
type Digit [LinesPerEntry]string

// Display is one entry: three lines of LineWidth columns.
type Display [LinesPerEntry]string

// Glyphs holds the reference glyph for every digit, indexed by value.
var Glyphs = [10]Digit{
	{" _ ", "| |", "|_|"},
	{"   ", "  |", "  |"},
	{" _ ", " _|", "|_ "},
	{" _ ", " _|", " _|"},
	{"   ", "|_|", "  |"},
	{" _ ", "|_ ", " _|"},
	{" _ ", "|_ ", "|_|"},
	{" _ ", "  |", "  |"},
	{" _ ", "|_|", "|_|"},
	{" _ ", "|_|", " _|"},
}

// MapDigit returns the character for d, or Illegible.
func MapDigit(d Digit) rune {
	for v, g := range Glyphs {
		if g == d {
			return rune('0' + v)
		}
	}
	return Illegible
}

// MapEntry maps every digit and joins the result.
func MapEntry(digits []Digit) string {
	var b strings.Builder
	b.Grow(len(digits))
	for _, d := range digits {
		b.WriteRune(MapDigit(d))
	}
	return b.String()
}

// SplitDisplay cuts an entry into its nine glyphs. Short lines are padded
// with spaces, since scanners often drop trailing blanks.
func SplitDisplay(display Display) ([]Digit, error) {
	var lines Display
	for i, l := range display {
		if len(l) > LineWidth {
			return nil, errors.NewWithContext(errors.ErrCodeInvalidRequest, "entry line too long",
				map[string]any{"line": i, "length": len(l), "max": LineWidth})
		}
		lines[i] = l + strings.Repeat(" ", LineWidth-len(l))
	}

	digits := make([]Digit, 0, DigitsPerEntry)
	for col := 0; col < LineWidth; col += DigitWidth {
		digits = append(digits, Digit{
			lines[0][col : col+DigitWidth],
			lines[1][col : col+DigitWidth],
			lines[2][col : col+DigitWidth],
		})
	}
	return digits, nil
}

// ParseDisplay maps an entry to its account number.
func ParseDisplay(display Display) (string, error) {
	digits, err := SplitDisplay(display)
	if err != nil {
		return "", err
	}
	return MapEntry(digits), nil
}

// IsLegible reports whether every digit of account was recognized.
func IsLegible(account string) bool {
	return !strings.ContainsRune(account, Illegible)
}

// Render draws a nine-digit account number as an entry.
func Render(account string) (Display, error) {
	var out Display
	if len(account) != DigitsPerEntry {
		return out, errors.NewWithContext(errors.ErrCodeInvalidRequest, "account must have nine digits",
			map[string]any{"account": account})
	}

	var lines [LinesPerEntry]strings.Builder
	for i := 0; i < len(account); i++ {
		c := account[i]
		if c < '0' || c > '9' {
			return out, errors.NewWithContext(errors.ErrCodeInvalidRequest, "account must be numeric",
				map[string]any{"account": account, "index": i})
		}
		g := Glyphs[c-'0']
		for row := range lines {
			lines[row].WriteString(g[row])
		}
	}
	for row := range lines {
		out[row] = lines[row].String()
	}
	return out, nil
}

// String renders the display as three newline-terminated lines.
func (d Display) String() string {
	return d[0] + "\n" + d[1] + "\n" + d[2] + "\n"
}
