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

// Package defaults provides centralized limits and timeouts for the katas.
//
// Centralizing these values keeps the CLI and the library packages in agreement
// about how much input a command accepts and how long a command may run.
//
// # Categories
//
//   - CLI timeouts: upper bound for a single command
//   - Weather timeouts: fake server queries
//   - Input limits: FizzBuzz ranges, OCR files, word-count phrases
//
// # Usage
//
//	import "github.com/NVIDIA/tdd-katas/pkg/defaults"
//
//	ctx, cancel := context.WithTimeout(ctx, defaults.WeatherQueryTimeout)
//	defer cancel()
package defaults
