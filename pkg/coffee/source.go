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

import "log/slog"

// Recorder is a Source that keeps every reported ingredient in call order.
// It is not safe for concurrent use.
type Recorder struct {
	dispensed []Ingredient
}

// NewRecorder returns an empty Recorder.
func NewRecorder() *Recorder {
	return &Recorder{}
}

func (r *Recorder) record(k Kind, qty int) {
	r.dispensed = append(r.dispensed, Ingredient{Kind: k, Quantity: qty})
}

// Water records water.
func (r *Recorder) Water(grams int) { r.record(KindWater, grams) }

// Coffee records coffee.
func (r *Recorder) Coffee(grams int) { r.record(KindCoffee, grams) }

// Milk records milk.
func (r *Recorder) Milk(grams int) { r.record(KindMilk, grams) }

// MilkFoam records milk foam.
func (r *Recorder) MilkFoam(grams int) { r.record(KindMilkFoam, grams) }

// Chocolate records chocolate.
func (r *Recorder) Chocolate(grams int) { r.record(KindChocolate, grams) }

// Sugar records sugar.
func (r *Recorder) Sugar(grams int) { r.record(KindSugar, grams) }

// Cream records cream.
func (r *Recorder) Cream(grams int) { r.record(KindCream, grams) }

// Temperature records the serving temperature.
func (r *Recorder) Temperature(degrees int) { r.record(KindTemperature, degrees) }

// Dispensed returns a copy of everything recorded so far.
func (r *Recorder) Dispensed() []Ingredient {
	out := make([]Ingredient, len(r.dispensed))
	copy(out, r.dispensed)
	return out
}

// Reset forgets everything recorded so far.
func (r *Recorder) Reset() {
	r.dispensed = r.dispensed[:0]
}

// LoggingSource forwards every call to Next and logs it at debug level.
type LoggingSource struct {
	Next   Source
	Logger *slog.Logger
}

// NewLoggingSource wraps next. A nil logger uses slog.Default().
func NewLoggingSource(next Source, logger *slog.Logger) *LoggingSource {
	if logger == nil {
		logger = slog.Default()
	}
	return &LoggingSource{Next: next, Logger: logger}
}

func (l *LoggingSource) log(k Kind, qty int) {
	l.Logger.Debug("dispensing ingredient", "kind", k, "quantity", qty)
}

// Water logs and forwards water.
func (l *LoggingSource) Water(grams int) { l.log(KindWater, grams); l.Next.Water(grams) }

// Coffee logs and forwards coffee.
func (l *LoggingSource) Coffee(grams int) { l.log(KindCoffee, grams); l.Next.Coffee(grams) }

// Milk logs and forwards milk.
func (l *LoggingSource) Milk(grams int) { l.log(KindMilk, grams); l.Next.Milk(grams) }

// MilkFoam logs and forwards milk foam.
func (l *LoggingSource) MilkFoam(grams int) { l.log(KindMilkFoam, grams); l.Next.MilkFoam(grams) }

// Chocolate logs and forwards chocolate.
func (l *LoggingSource) Chocolate(grams int) { l.log(KindChocolate, grams); l.Next.Chocolate(grams) }

// Sugar logs and forwards sugar.
func (l *LoggingSource) Sugar(grams int) { l.log(KindSugar, grams); l.Next.Sugar(grams) }

// Cream logs and forwards cream.
func (l *LoggingSource) Cream(grams int) { l.log(KindCream, grams); l.Next.Cream(grams) }

// Temperature logs and forwards the serving temperature.
func (l *LoggingSource) Temperature(degrees int) {
	l.log(KindTemperature, degrees)
	l.Next.Temperature(degrees)
}
