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

package coffee

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	drinksTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "katas_coffee_drinks_total",
			Help: "Total number of drinks made by drink type and cup size",
		},
		[]string{"drink", "size"},
	)

	// Temperature is summed too; it only makes sense per kind.
	dispensedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "katas_coffee_dispensed_total",
			Help: "Total quantity dispensed by ingredient kind",
		},
		[]string{"kind"},
	)
)
