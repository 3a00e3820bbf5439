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

package serializer

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/NVIDIA/tdd-katas/pkg/errors"
)

// Test data structures
type testConfig struct {
	Name  string `json:"name" yaml:"name"`
	Value int    `json:"value" yaml:"value"`
}

type dataset struct {
	Responses map[string]string `json:"responses" yaml:"responses"`
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}
	return path
}

func TestFormatFromPath(t *testing.T) {
	tests := []struct {
		path string
		want Format
	}{
		{"data.json", FormatJSON},
		{"DATA.JSON", FormatJSON},
		{"data.yaml", FormatYAML},
		{"data.yml", FormatYAML},
		{"/tmp/dir.json/data.yml", FormatYAML},
		{"data", FormatYAML},
		{"data.txt", FormatYAML},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			if got := FormatFromPath(tt.path); got != tt.want {
				t.Errorf("FormatFromPath(%q) = %q, want %q", tt.path, got, tt.want)
			}
		})
	}
}

func TestNewReader(t *testing.T) {
	tests := []struct {
		name    string
		format  Format
		wantErr bool
	}{
		{"json", FormatJSON, false},
		{"yaml", FormatYAML, false},
		{"table", FormatTable, true},
		{"unknown", Format("xml"), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, err := NewReader(tt.format, strings.NewReader(""))
			if (err != nil) != tt.wantErr {
				t.Fatalf("NewReader() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				if !errors.IsCode(err, errors.ErrCodeInvalidRequest) {
					t.Errorf("Expected INVALID_REQUEST, got %v", err)
				}
				return
			}
			if r == nil {
				t.Fatal("Expected non-nil reader")
			}
		})
	}
}

func TestReader_Deserialize(t *testing.T) {
	tests := []struct {
		name   string
		format Format
		input  string
	}{
		{"json", FormatJSON, `{"name":"test1","value":7}`},
		{"yaml", FormatYAML, "name: test1\nvalue: 7\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, err := NewReader(tt.format, strings.NewReader(tt.input))
			if err != nil {
				t.Fatalf("NewReader failed: %v", err)
			}
			var got testConfig
			if err := r.Deserialize(&got); err != nil {
				t.Fatalf("Deserialize failed: %v", err)
			}
			if got.Name != test1Name || got.Value != 7 {
				t.Errorf("Unexpected data: %+v", got)
			}
		})
	}
}

func TestReader_StrictFields(t *testing.T) {
	tests := []struct {
		name   string
		format Format
		input  string
	}{
		{"json", FormatJSON, `{"name":"a","extra":1}`},
		{"yaml", FormatYAML, "name: a\nextra: 1\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lenient, err := NewReader(tt.format, strings.NewReader(tt.input))
			if err != nil {
				t.Fatalf("NewReader failed: %v", err)
			}
			var got testConfig
			if err := lenient.Deserialize(&got); err != nil {
				t.Fatalf("lenient Deserialize failed: %v", err)
			}

			strict, err := NewReader(tt.format, strings.NewReader(tt.input), WithStrictFields())
			if err != nil {
				t.Fatalf("NewReader failed: %v", err)
			}
			err = strict.Deserialize(&got)
			if !errors.IsCode(err, errors.ErrCodeInvalidRequest) {
				t.Errorf("Expected INVALID_REQUEST for unknown field, got %v", err)
			}
		})
	}
}

func TestReader_DeserializeNilChecks(t *testing.T) {
	var nilReader *Reader
	if err := nilReader.Deserialize(&testConfig{}); err == nil {
		t.Error("Expected error for nil reader")
	}
	if err := nilReader.Close(); err != nil {
		t.Errorf("Close on nil reader should be a no-op: %v", err)
	}

	r, err := NewReader(FormatJSON, nil)
	if err != nil {
		t.Fatalf("NewReader failed: %v", err)
	}
	if err := r.Deserialize(&testConfig{}); err == nil {
		t.Error("Expected error for nil input")
	}
}

func TestNewFileReader(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		_, err := NewFileReader(FormatYAML, filepath.Join(t.TempDir(), "nope.yaml"))
		if !errors.IsCode(err, errors.ErrCodeNotFound) {
			t.Fatalf("Expected NOT_FOUND, got %v", err)
		}
	})

	t.Run("close twice", func(t *testing.T) {
		path := writeFile(t, "c.yaml", "name: x\n")
		r, err := NewFileReader(FormatYAML, path)
		if err != nil {
			t.Fatalf("NewFileReader failed: %v", err)
		}
		if err := r.Close(); err != nil {
			t.Fatalf("Close failed: %v", err)
		}
		if err := r.Close(); err != nil {
			t.Errorf("second Close should be a no-op: %v", err)
		}
	})
}

func TestFromFile(t *testing.T) {
	t.Run("yaml", func(t *testing.T) {
		path := writeFile(t, "d.yaml", "responses:\n  \"31.08.2018;03:00\": \"20;181;5.1\"\n")
		ds, err := FromFile[dataset](path)
		if err != nil {
			t.Fatalf("FromFile failed: %v", err)
		}
		if ds.Responses["31.08.2018;03:00"] != "20;181;5.1" {
			t.Errorf("Unexpected data: %+v", ds)
		}
	})

	t.Run("json", func(t *testing.T) {
		path := writeFile(t, "d.json", `{"responses":{"a":"b"}}`)
		ds, err := FromFile[dataset](path)
		if err != nil {
			t.Fatalf("FromFile failed: %v", err)
		}
		if ds.Responses["a"] != "b" {
			t.Errorf("Unexpected data: %+v", ds)
		}
	})

	t.Run("unknown field", func(t *testing.T) {
		path := writeFile(t, "d.yaml", "response:\n  a: b\n")
		_, err := FromFile[dataset](path)
		if !errors.IsCode(err, errors.ErrCodeInvalidRequest) {
			t.Fatalf("Expected INVALID_REQUEST, got %v", err)
		}
	})

	t.Run("missing", func(t *testing.T) {
		_, err := FromFile[dataset](filepath.Join(t.TempDir(), "none.yaml"))
		if !errors.IsCode(err, errors.ErrCodeNotFound) {
			t.Fatalf("Expected NOT_FOUND, got %v", err)
		}
	})
}

func TestReader_RoundTrip(t *testing.T) {
	for _, format := range []Format{FormatJSON, FormatYAML} {
		t.Run(string(format), func(t *testing.T) {
			want := testConfig{Name: "round", Value: 42}
			var sb strings.Builder
			if err := NewWriter(format, &sb).Serialize(context.Background(), want); err != nil {
				t.Fatalf("Serialize failed: %v", err)
			}
			r, err := NewReader(format, strings.NewReader(sb.String()), WithStrictFields())
			if err != nil {
				t.Fatalf("NewReader failed: %v", err)
			}
			var got testConfig
			if err := r.Deserialize(&got); err != nil {
				t.Fatalf("Deserialize failed: %v", err)
			}
			if got != want {
				t.Errorf("got %+v, want %+v", got, want)
			}
		})
	}
}
