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
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/NVIDIA/tdd-katas/pkg/errors"
)

// DateLayout is the request date format, for example "31.08.2018".
const DateLayout = "02.01.2006"

// Slots are the times of day the server records, in request order.
var Slots = []string{"03:00", "09:00", "15:00", "21:00"}

// Info is one parsed server response.
type Info struct {
	Temperature   int     `json:"temperature" yaml:"temperature"`
	WindDirection int     `json:"windDirection" yaml:"windDirection"`
	WindSpeed     float64 `json:"windSpeed" yaml:"windSpeed"`
}

// ParseResponse parses "<temperature>;<wind direction>;<wind speed>".
func ParseResponse(resp string) (Info, error) {
	fields := strings.Split(strings.TrimSpace(resp), ";")
	if len(fields) != 3 {
		return Info{}, errors.NewWithContext(errors.ErrCodeInvalidRequest, "response must have three fields",
			map[string]any{"response": resp})
	}

	temp, err := strconv.Atoi(fields[0])
	if err != nil {
		return Info{}, errors.WrapWithContext(errors.ErrCodeInvalidRequest, "invalid temperature", err,
			map[string]any{"response": resp})
	}
	dir, err := strconv.Atoi(fields[1])
	if err != nil || dir < 0 || dir > 359 {
		return Info{}, errors.NewWithContext(errors.ErrCodeInvalidRequest, "wind direction must be 0..359",
			map[string]any{"response": resp})
	}
	speed, err := strconv.ParseFloat(fields[2], 64)
	if err != nil || speed < 0 {
		return Info{}, errors.NewWithContext(errors.ErrCodeInvalidRequest, "invalid wind speed",
			map[string]any{"response": resp})
	}

	return Info{Temperature: temp, WindDirection: dir, WindSpeed: speed}, nil
}

// Request builds the server request for a date and slot.
func Request(date, slot string) string {
	return date + ";" + slot
}

// ValidateDate checks that date is a real calendar date in DateLayout.
func ValidateDate(date string) error {
	if _, err := time.Parse(DateLayout, date); err != nil {
		return errors.WrapWithContext(errors.ErrCodeInvalidRequest, "invalid date, expected DD.MM.YYYY", err,
			map[string]any{"date": date})
	}
	return nil
}

// Summary holds every statistic for one day.
type Summary struct {
	Date                 string  `json:"date" yaml:"date"`
	AverageTemperature   float64 `json:"averageTemperature" yaml:"averageTemperature"`
	MinimumTemperature   int     `json:"minimumTemperature" yaml:"minimumTemperature"`
	MaximumTemperature   int     `json:"maximumTemperature" yaml:"maximumTemperature"`
	AverageWindDirection float64 `json:"averageWindDirection" yaml:"averageWindDirection"`
	MaximumWindSpeed     float64 `json:"maximumWindSpeed" yaml:"maximumWindSpeed"`
}

// Client queries a Server and computes daily statistics.
type Client struct {
	timeout time.Duration
}

// Option configures a Client.
type Option func(*Client)

// WithTimeout bounds each ForDate call. Zero disables the bound.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		c.timeout = d
	}
}

// NewClient returns a Client.
func NewClient(opts ...Option) *Client {
	c := &Client{}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// ForDate fetches every slot of date in order.
func (c *Client) ForDate(ctx context.Context, server Server, date string) ([]Info, error) {
	if err := ValidateDate(date); err != nil {
		return nil, err
	}
	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	infos := make([]Info, 0, len(Slots))
	for _, slot := range Slots {
		req := Request(date, slot)
		resp, err := server.GetWeather(ctx, req)
		if err != nil {
			return nil, fmt.Errorf("request %q: %w", req, err)
		}
		if resp == "" {
			return nil, errors.NewWithContext(errors.ErrCodeNotFound, "no weather recorded",
				map[string]any{"request": req})
		}
		info, err := ParseResponse(resp)
		if err != nil {
			return nil, fmt.Errorf("request %q: %w", req, err)
		}
		infos = append(infos, info)
	}

	slog.Debug("weather fetched", "date", date, "slots", len(infos))
	return infos, nil
}

// AverageTemperature returns the mean temperature of date.
func (c *Client) AverageTemperature(ctx context.Context, server Server, date string) (float64, error) {
	s, err := c.Summarize(ctx, server, date)
	return s.AverageTemperature, err
}

// MinimumTemperature returns the lowest temperature of date.
func (c *Client) MinimumTemperature(ctx context.Context, server Server, date string) (int, error) {
	s, err := c.Summarize(ctx, server, date)
	return s.MinimumTemperature, err
}

// MaximumTemperature returns the highest temperature of date.
func (c *Client) MaximumTemperature(ctx context.Context, server Server, date string) (int, error) {
	s, err := c.Summarize(ctx, server, date)
	return s.MaximumTemperature, err
}

// AverageWindDirection returns the arithmetic mean of the wind directions of
// date. It is not a circular mean: 350 and 10 average to 180.
func (c *Client) AverageWindDirection(ctx context.Context, server Server, date string) (float64, error) {
	s, err := c.Summarize(ctx, server, date)
	return s.AverageWindDirection, err
}

// MaximumWindSpeed returns the highest wind speed of date.
func (c *Client) MaximumWindSpeed(ctx context.Context, server Server, date string) (float64, error) {
	s, err := c.Summarize(ctx, server, date)
	return s.MaximumWindSpeed, err
}

// Summarize fetches date once and computes every statistic.
func (c *Client) Summarize(ctx context.Context, server Server, date string) (Summary, error) {
	infos, err := c.ForDate(ctx, server, date)
	if err != nil {
		return Summary{}, err
	}
	s := Summarize(infos)
	s.Date = date
	return s, nil
}

// Summarize computes statistics over infos. An empty slice yields a zero Summary.
func Summarize(infos []Info) Summary {
	var s Summary
	if len(infos) == 0 {
		return s
	}

	s.MinimumTemperature = infos[0].Temperature
	s.MaximumTemperature = infos[0].Temperature
	var tempSum, dirSum int
	for _, in := range infos {
		tempSum += in.Temperature
		dirSum += in.WindDirection
		s.MinimumTemperature = min(s.MinimumTemperature, in.Temperature)
		s.MaximumTemperature = max(s.MaximumTemperature, in.Temperature)
		s.MaximumWindSpeed = max(s.MaximumWindSpeed, in.WindSpeed)
	}
	n := float64(len(infos))
	s.AverageTemperature = float64(tempSum) / n
	s.AverageWindDirection = float64(dirSum) / n
	return s
}
