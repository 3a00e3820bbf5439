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

// Package weather computes daily weather statistics from a weather server.
//
// # Protocol
//
// The server takes requests of the form "<date>;<time>", for example
// "31.08.2018;03:00", and answers "<temperature>;<wind direction>;<wind speed>",
// for example "20;181;5.1". Temperature is in Celsius and may be negative, wind
// direction is 0..359 degrees. An invalid request is answered with "".
//
// The server only stores the slots 03:00, 09:00, 15:00 and 21:00.
//
// # Usage
//
//	server := weather.NewFakeServer()
//	client := weather.NewClient()
//	avg, err := client.AverageTemperature(ctx, server, "31.08.2018")
//
// FakeServer replays recorded responses; no network is involved.
//
// # Metrics
//
//   - katas_weather_requests_total{result}: ok, empty, error
package weather
