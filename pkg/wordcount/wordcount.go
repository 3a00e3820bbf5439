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

// Package wordcount counts the occurrences of each word in a phrase.
package wordcount

import (
	"sort"
	"strings"
	"unicode"

	"golang.org/x/text/cases"
)

// Entry is one word and how often it occurs.
type Entry struct {
	Word  string `json:"word" yaml:"word"`
	Count int    `json:"count" yaml:"count"`
}

type options struct {
	fold bool
}

// Option configures Count.
type Option func(*options)

// WithCaseFolding counts "Olly" and "olly" as the same word.
func WithCaseFolding() Option {
	return func(o *options) {
		o.fold = true
	}
}

// Split extracts the words of phrase in order. A word is a run of letters and
// digits; an apostrophe between two such characters stays inside the word.
// Whitespace and punctuation separate words.
func Split(phrase string) []string {
	words := []string{}
	runes := []rune(phrase)

	var cur strings.Builder
	flush := func() {
		if cur.Len() > 0 {
			words = append(words, cur.String())
			cur.Reset()
		}
	}

	for i, r := range runes {
		switch {
		case isWordRune(r):
			cur.WriteRune(r)
		case r == '\'' && cur.Len() > 0 && i+1 < len(runes) && isWordRune(runes[i+1]):
			cur.WriteRune(r)
		default:
			flush()
		}
	}
	flush()
	return words
}

func isWordRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r)
}

// Count returns how many times each word occurs in phrase.
func Count(phrase string, opts ...Option) map[string]int {
	o := &options{}
	for _, opt := range opts {
		opt(o)
	}

	var fold cases.Caser
	if o.fold {
		fold = cases.Fold()
	}

	counts := make(map[string]int)
	for _, w := range Split(phrase) {
		if o.fold {
			w = fold.String(w)
		}
		counts[w]++
	}
	return counts
}

// Tally orders counts by descending count, then by word.
func Tally(counts map[string]int) []Entry {
	out := make([]Entry, 0, len(counts))
	for w, c := range counts {
		out = append(out, Entry{Word: w, Count: c})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Word < out[j].Word
	})
	return out
}
