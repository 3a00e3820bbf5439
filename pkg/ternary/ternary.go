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

// Package ternary converts base-3 strings to decimal from first principles.
package ternary

import (
	"math"

	"github.com/NVIDIA/tdd-katas/pkg/errors"
)

// IsTernary reports whether s is a canonical ternary number: "0", or a
// non-empty run of the digits 0, 1 and 2 with no leading zero.
func IsTernary(s string) bool {
	if s == "" {
		return false
	}
	if s == "0" {
		return true
	}
	if s[0] == '0' {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '2' {
			return false
		}
	}
	return true
}

// Parse converts a ternary string to its decimal value.
// Each place is worth three times the place to its right.
func Parse(s string) (int64, error) {
	if !IsTernary(s) {
		return 0, errors.NewWithContext(errors.ErrCodeInvalidRequest, "invalid ternary number",
			map[string]any{"input": s})
	}

	var v int64
	for i := 0; i < len(s); i++ {
		d := int64(s[i] - '0')
		if v > (math.MaxInt64-d)/3 {
			return 0, errors.NewWithContext(errors.ErrCodeInvalidRequest, "ternary number overflows int64",
				map[string]any{"input": s})
		}
		v = v*3 + d
	}
	return v, nil
}

// ToDecimal is Parse with invalid input treated as 0.
func ToDecimal(s string) int64 {
	v, err := Parse(s)
	if err != nil {
		return 0
	}
	return v
}
