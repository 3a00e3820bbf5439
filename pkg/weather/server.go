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

package weather

import (
	"bytes"
	"context"
	_ "embed"
	"fmt"
	"log/slog"

	"gopkg.in/yaml.v3"

	"github.com/NVIDIA/tdd-katas/pkg/errors"
	"github.com/NVIDIA/tdd-katas/pkg/serializer"
)

//go:embed data/responses.yaml
var responsesYAML []byte

// Server returns the raw weather for a "<date>;<time>" request.
// Unknown or malformed requests get an empty response, not an error;
// errors are reserved for failing to reach the server at all.
type Server interface {
	GetWeather(ctx context.Context, request string) (string, error)
}

// Dataset is a set of recorded request/response pairs.
type Dataset struct {
	Responses map[string]string `json:"responses" yaml:"responses"`
}

// FakeServer answers from a Dataset.
type FakeServer struct {
	responses map[string]string
}

// NewFakeServer returns a FakeServer backed by the embedded recordings.
func NewFakeServer() *FakeServer {
	var ds Dataset
	if err := yaml.NewDecoder(bytes.NewReader(responsesYAML)).Decode(&ds); err != nil {
		// The recordings are compiled in; failing to decode them is a build defect.
		panic(fmt.Sprintf("weather: invalid embedded recordings: %v", err))
	}
	return NewFakeServerFromDataset(&ds)
}

// NewFakeServerFromDataset returns a FakeServer that answers from ds.
func NewFakeServerFromDataset(ds *Dataset) *FakeServer {
	responses := make(map[string]string)
	if ds != nil {
		for k, v := range ds.Responses {
			responses[k] = v
		}
	}
	return &FakeServer{responses: responses}
}

// NewFakeServerFromFile loads a YAML or JSON dataset from path.
func NewFakeServerFromFile(path string) (*FakeServer, error) {
	ds, err := serializer.FromFile[Dataset](path)
	if err != nil {
		return nil, errors.WrapWithContext(errors.ErrCodeInvalidRequest, "failed to load weather dataset", err,
			map[string]any{"path": path})
	}
	for req, resp := range ds.Responses {
		if _, err := ParseResponse(resp); err != nil {
			return nil, errors.WrapWithContext(errors.ErrCodeInvalidRequest, "invalid recorded response", err,
				map[string]any{"path": path, "request": req})
		}
	}
	slog.Debug("weather dataset loaded", "path", path, "responses", len(ds.Responses))
	return NewFakeServerFromDataset(ds), nil
}

// GetWeather implements Server.
func (s *FakeServer) GetWeather(ctx context.Context, request string) (string, error) {
	if err := ctx.Err(); err != nil {
		requestsTotal.WithLabelValues(resultError).Inc()
		return "", errors.Wrap(errors.ErrCodeTimeout, "weather request canceled", err)
	}
	resp := s.responses[request]
	if resp == "" {
		requestsTotal.WithLabelValues(resultEmpty).Inc()
		return "", nil
	}
	requestsTotal.WithLabelValues(resultOK).Inc()
	return resp, nil
}
