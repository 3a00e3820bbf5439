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
	"time"

	"github.com/google/uuid"
)

// Receipt summarizes one order and what was dispensed for it.
type Receipt struct {
	ID        string       `json:"id" yaml:"id"`
	Drink     DrinkType    `json:"drink" yaml:"drink"`
	Size      CupSize      `json:"size" yaml:"size"`
	MadeAt    time.Time    `json:"madeAt" yaml:"madeAt"`
	Dispensed []Ingredient `json:"dispensed" yaml:"dispensed"`
}

// NewReceipt builds a receipt from everything rec has recorded.
func NewReceipt(drink DrinkType, size CupSize, rec *Recorder) *Receipt {
	return &Receipt{
		ID:        uuid.NewString(),
		Drink:     drink,
		Size:      size,
		MadeAt:    time.Now().UTC(),
		Dispensed: rec.Dispensed(),
	}
}

// Quantity returns the total reported for kind, or 0.
func (r *Receipt) Quantity(kind Kind) int {
	total := 0
	for _, i := range r.Dispensed {
		if i.Kind == kind {
			total += i.Quantity
		}
	}
	return total
}
