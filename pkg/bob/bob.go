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

// Package bob answers remarks the way a lackadaisical teenager would.
package bob

import "strings"

// Answers Bob gives.
const (
	AnswerSure     = "Sure."
	AnswerChillOut = "Whoa, chill out!"
	AnswerFine     = "Fine. Be that way!"
	AnswerWhatever = "Whatever."
)

// Respond returns Bob's answer to remark.
//
// Saying nothing (or only whitespace) gets AnswerFine, yelling (a trailing '!')
// gets AnswerChillOut, a question (a trailing '?') gets AnswerSure and anything
// else gets AnswerWhatever. Trailing whitespace is ignored.
func Respond(remark string) string {
	r := strings.TrimSpace(remark)
	if r == "" {
		return AnswerFine
	}

	switch r[len(r)-1] {
	case '!':
		return AnswerChillOut
	case '?':
		return AnswerSure
	default:
		return AnswerWhatever
	}
}
