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

// Package cli implements the katas command-line interface.
//
// # Overview
//
// Every kata is exposed as a subcommand. Results are printed through
// pkg/serializer, so each command accepts the same output flags.
//
// # Commands
//
//	katas coffee --drink latte --size big     make a drink, print the receipt
//	katas coffee menu                         list drinks and quantities
//	katas bob How are you?                    ask Bob
//	katas fizzbuzz --from 1 --to 15           play FizzBuzz
//	katas wordcount [--fold] <phrase...>      count words
//	katas leap 1996 1900 2000                 check leap years
//	katas ternary 102012                      convert ternary to decimal
//	katas ocr --file scan.txt                 read account numbers from a scan
//	katas ocr render 123456789                draw a scan
//	katas weather --date 31.08.2018           summarize a day of weather
//
// # Output Flags
//
//	--output, -o   Output file path (default: stdout)
//	--format, -t   Output format: yaml, json, table (default: yaml)
//
// # Environment Variables
//
//	LOG_LEVEL           Logging verbosity (debug, info, warn, error)
//	KATAS_FORMAT        Default for --format
//	KATAS_OUTPUT        Default for --output
//	KATAS_WEATHER_DATA  Default for weather --data
//
// # Exit Codes
//
//	0  Success
//	1  General error (invalid arguments, execution failure)
//	2  Context canceled or timeout
//
// Version information is embedded at build time using ldflags:
//
//	go build -ldflags="-X 'github.com/NVIDIA/tdd-katas/pkg/cli.version=1.0.0'"
package cli
