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

	"github.com/urfave/cli/v3"

	"github.com/NVIDIA/tdd-katas/pkg/defaults"
	"github.com/NVIDIA/tdd-katas/pkg/weather"
)

func weatherCmd() *cli.Command {
	return &cli.Command{
		Name:  "weather",
		Usage: "Summarize the weather of one day",
		Description: `Queries the fake weather server for the 03:00, 09:00, 15:00 and 21:00
readings of a day and prints temperature and wind statistics.

Recorded days in the built-in data: 31.08.2018, 01.09.2018, 02.09.2018.

Example:
  katas weather --date 31.08.2018 -t table`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "date",
				Required: true,
				Usage:    "Day to summarize (DD.MM.YYYY)",
			},
			&cli.StringFlag{
				Name:    "data",
				Usage:   "YAML or JSON file of recorded responses (default: built-in data)",
				Sources: cli.EnvVars("KATAS_WEATHER_DATA"),
			},
			outputFlag(),
			formatFlag(),
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			var server weather.Server = weather.NewFakeServer()
			if path := cmd.String("data"); path != "" {
				s, err := weather.NewFakeServerFromFile(path)
				if err != nil {
					return err
				}
				server = s
			}

			client := weather.NewClient(weather.WithTimeout(defaults.WeatherQueryTimeout))
			summary, err := client.Summarize(ctx, server, cmd.String("date"))
			if err != nil {
				return fmt.Errorf("failed to summarize weather: %w", err)
			}
			return writeResult(ctx, cmd, summary)
		},
	}
}
