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

// Package bankocr parses account numbers drawn with pipes and underscores.
//
// # Format
//
// A scanner produces entries of three lines, 27 columns each, followed by a
// blank separator line. Every entry holds nine digits, three columns wide:
//
//	    _  _     _  _  _  _  _
//	  | _| _||_||_ |_   ||_||_|
//	  ||_  _|  | _||_|  ||_| _|
//
//	=> 123456789
//
// # Usage
//
//	accounts, err := bankocr.Parse(ctx, file)
//	if err != nil {
//	    return err
//	}
//	for _, a := range accounts {
//	    fmt.Println(a, bankocr.IsLegible(a))
//	}
//
// Unknown glyphs map to Illegible ('~').
package bankocr
