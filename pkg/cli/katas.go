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
	"strconv"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/NVIDIA/tdd-katas/pkg/bob"
	"github.com/NVIDIA/tdd-katas/pkg/defaults"
	"github.com/NVIDIA/tdd-katas/pkg/errors"
	"github.com/NVIDIA/tdd-katas/pkg/fizzbuzz"
	"github.com/NVIDIA/tdd-katas/pkg/leapyear"
	"github.com/NVIDIA/tdd-katas/pkg/ternary"
	"github.com/NVIDIA/tdd-katas/pkg/wordcount"
)

type bobReply struct {
	Remark string `json:"remark" yaml:"remark"`
	Answer string `json:"answer" yaml:"answer"`
}

func bobCmd() *cli.Command {
	return &cli.Command{
		Name:      "bob",
		Usage:     "Ask Bob something",
		ArgsUsage: "<remark...>",
		Flags: []cli.Flag{
			outputFlag(),
			formatFlag(),
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			remark := strings.Join(cmd.Args().Slice(), " ")
			return writeResult(ctx, cmd, bobReply{Remark: remark, Answer: bob.Respond(remark)})
		},
	}
}

type fizzbuzzLines []fizzbuzz.Line

func (l fizzbuzzLines) TableHeader() []string { return []string{"NUMBER", "ANSWER"} }

func (l fizzbuzzLines) TableRows() [][]string {
	rows := make([][]string, 0, len(l))
	for _, line := range l {
		rows = append(rows, []string{strconv.Itoa(line.Number), line.Answer})
	}
	return rows
}

func fizzbuzzCmd() *cli.Command {
	return &cli.Command{
		Name:  "fizzbuzz",
		Usage: "Play FizzBuzz over a range of numbers",
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:  "from",
				Value: 1,
				Usage: "First number",
			},
			&cli.IntFlag{
				Name:  "to",
				Value: 100,
				Usage: fmt.Sprintf("Last number, inclusive (at most %d numbers)", defaults.MaxFizzBuzzRange),
			},
			outputFlag(),
			formatFlag(),
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			lines, err := fizzbuzz.Sequence(cmd.Int("from"), cmd.Int("to"))
			if err != nil {
				return err
			}
			return writeResult(ctx, cmd, fizzbuzzLines(lines))
		},
	}
}

type wordTally []wordcount.Entry

func (w wordTally) TableHeader() []string { return []string{"WORD", "COUNT"} }

func (w wordTally) TableRows() [][]string {
	rows := make([][]string, 0, len(w))
	for _, e := range w {
		rows = append(rows, []string{e.Word, strconv.Itoa(e.Count)})
	}
	return rows
}

func wordcountCmd() *cli.Command {
	return &cli.Command{
		Name:      "wordcount",
		Usage:     "Count word occurrences in a phrase",
		ArgsUsage: "<phrase...>",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "fold",
				Usage: "Count words case-insensitively",
			},
			outputFlag(),
			formatFlag(),
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			phrase := strings.Join(cmd.Args().Slice(), " ")
			if len(phrase) > defaults.MaxPhraseBytes {
				return errors.NewWithContext(errors.ErrCodeInvalidRequest, "phrase too long",
					map[string]any{"bytes": len(phrase), "max": defaults.MaxPhraseBytes})
			}
			var opts []wordcount.Option
			if cmd.Bool("fold") {
				opts = append(opts, wordcount.WithCaseFolding())
			}
			return writeResult(ctx, cmd, wordTally(wordcount.Tally(wordcount.Count(phrase, opts...))))
		},
	}
}

type leapAnswer struct {
	Year int  `json:"year" yaml:"year"`
	Leap bool `json:"leap" yaml:"leap"`
}

func leapCmd() *cli.Command {
	return &cli.Command{
		Name:      "leap",
		Usage:     "Tell whether years are leap years",
		ArgsUsage: "<year...>",
		Flags: []cli.Flag{
			outputFlag(),
			formatFlag(),
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			args := cmd.Args().Slice()
			if len(args) == 0 {
				return errors.New(errors.ErrCodeInvalidRequest, "at least one year is required")
			}
			answers := make([]leapAnswer, 0, len(args))
			for _, a := range args {
				year, err := strconv.Atoi(a)
				if err != nil {
					return errors.WrapWithContext(errors.ErrCodeInvalidRequest, "invalid year", err,
						map[string]any{"year": a})
				}
				answers = append(answers, leapAnswer{Year: year, Leap: leapyear.IsLeap(year)})
			}
			return writeResult(ctx, cmd, answers)
		},
	}
}

type ternaryAnswer struct {
	Input   string `json:"input" yaml:"input"`
	Decimal int64  `json:"decimal" yaml:"decimal"`
	Valid   bool   `json:"valid" yaml:"valid"`
}

func ternaryCmd() *cli.Command {
	return &cli.Command{
		Name:      "ternary",
		Usage:     "Convert ternary numbers to decimal",
		ArgsUsage: "<number...>",
		Description: `Invalid input converts to 0 and is reported with valid: false.

Example:
  katas ternary 102012 asdasd123`,
		Flags: []cli.Flag{
			outputFlag(),
			formatFlag(),
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			args := cmd.Args().Slice()
			answers := make([]ternaryAnswer, 0, len(args))
			for _, a := range args {
				n, err := ternary.Parse(a)
				answers = append(answers, ternaryAnswer{Input: a, Decimal: n, Valid: err == nil})
			}
			return writeResult(ctx, cmd, answers)
		},
	}
}
