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

// Package serializer encodes kata results for output and decodes data files.
//
// # Formats
//
// JSON:
//   - Indented, machine-parseable
//   - encoding/json
//
// YAML:
//   - Human-readable, the CLI default
//   - gopkg.in/yaml.v3
//
// Table:
//   - Terminal view built on text/tabwriter
//   - Values implementing Tabular render as columns; anything else is
//     flattened to dotted FIELD/VALUE rows
//   - Write-only
//
// # Writing
//
//	w, err := serializer.NewFileWriterOrStdout(serializer.FormatTable, path)
//	if err != nil {
//	    return err
//	}
//	defer w.Close()
//	if err := w.Serialize(ctx, receipt); err != nil {
//	    return err
//	}
//
// An empty path or "-" writes to stdout.
//
// # Reading
//
// FromFile detects the format from the extension (.json, .yaml, .yml) and
// rejects unknown fields:
//
//	ds, err := serializer.FromFile[weather.Dataset]("responses.yaml")
//
// NewReader decodes from any io.Reader; pass WithStrictFields to reject
// unknown fields there too.
//
// # Errors
//
// Decode failures and unusable formats carry errors.ErrCodeInvalidRequest;
// a missing input file carries errors.ErrCodeNotFound.
package serializer
