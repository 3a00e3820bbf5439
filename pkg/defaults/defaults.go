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

package defaults

import "time"

// CLI timeouts.
const (
	// CLICommandTimeout bounds a single CLI command.
	CLICommandTimeout = 30 * time.Second
)

// Weather timeouts.
const (
	// WeatherQueryTimeout bounds the four requests needed for one date.
	// Respect the parent context deadline when it is shorter.
	WeatherQueryTimeout = 5 * time.Second
)

// Input limits.
const (
	// MaxFizzBuzzRange is the largest number of lines Sequence will produce.
	MaxFizzBuzzRange = 100_000

	// MaxOCREntries caps the number of entries parsed from one OCR file.
	// A normal file holds around 500.
	MaxOCREntries = 10_000

	// MaxOCRLineLength is the longest OCR line accepted before parsing stops.
	MaxOCRLineLength = 1 << 10

	// MaxPhraseBytes caps the phrase accepted by word count.
	MaxPhraseBytes = 1 << 20
)
