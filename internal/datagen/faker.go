//-------------------------------------------------------------------------
//
// martgen - Marketing Data Mart Generator
//
// Copyright (c) 2025 - 2026, Sparkline Data
// This software is released under the MIT License
//
//-------------------------------------------------------------------------

// Package datagen provides the random draw primitives used by the
// metric synthesizer.
package datagen

import (
	"time"

	"github.com/brianvoe/gofakeit/v7"
)

// Faker provides random value generation using gofakeit.
type Faker struct {
	faker *gofakeit.Faker
}

// NewFaker creates a new Faker seeded from the current time.
func NewFaker() *Faker {
	return &Faker{
		faker: gofakeit.New(uint64(time.Now().UnixNano())),
	}
}

// NewFakerWithSeed creates a new Faker with a specific seed for
// reproducible output.
func NewFakerWithSeed(seed uint64) *Faker {
	return &Faker{
		faker: gofakeit.New(seed),
	}
}

// IntN generates a random integer in the half-open interval [min, max).
func (f *Faker) IntN(min, max int) int {
	if max <= min {
		return min
	}
	return f.faker.IntRange(min, max-1)
}

// Float64 generates a random float64 between min and max.
func (f *Faker) Float64(min, max float64) float64 {
	return f.faker.Float64Range(min, max)
}

// Price generates a random monetary amount between min and max,
// rounded to cents.
func (f *Faker) Price(min, max float64) float64 {
	return f.faker.Price(min, max)
}

// Choose returns a random element from the given slice.
func Choose[T any](f *Faker, items []T) T {
	if len(items) == 0 {
		var zero T
		return zero
	}
	return items[f.IntN(0, len(items))]
}
