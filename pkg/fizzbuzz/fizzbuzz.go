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

// Package fizzbuzz implements the FizzBuzz counting game.
package fizzbuzz

import (
	"github.com/NVIDIA/tdd-katas/pkg/defaults"
	"github.com/NVIDIA/tdd-katas/pkg/errors"
)

const (
	fizz = "Fizz"
	buzz = "Buzz"
)

// FizzBuzz returns "Fizz" for multiples of 3, "Buzz" for multiples of 5,
// "FizzBuzz" for multiples of both, and "" for anything else.
func FizzBuzz(n int) string {
	var out string
	if n%3 == 0 {
		out += fizz
	}
	if n%5 == 0 {
		out += buzz
	}
	return out
}

// Line is one number with its answer.
type Line struct {
	Number int    `json:"number" yaml:"number"`
	Answer string `json:"answer,omitempty" yaml:"answer,omitempty"`
}

// Sequence returns the answers for every number in [from, to].
func Sequence(from, to int) ([]Line, error) {
	if from > to {
		return nil, errors.NewWithContext(errors.ErrCodeInvalidRequest, "range start is after range end",
			map[string]any{"from": from, "to": to})
	}
	// uint64 subtraction is exact for from <= to, even across the whole int range.
	span := uint64(to) - uint64(from)
	if span >= defaults.MaxFizzBuzzRange {
		return nil, errors.NewWithContext(errors.ErrCodeInvalidRequest, "range too large",
			map[string]any{"from": from, "to": to, "max": defaults.MaxFizzBuzzRange})
	}

	n := int(span) + 1
	lines := make([]Line, 0, n)
	for i := 0; i < n; i++ {
		v := from + i
		lines = append(lines, Line{Number: v, Answer: FizzBuzz(v)})
	}
	return lines, nil
}
