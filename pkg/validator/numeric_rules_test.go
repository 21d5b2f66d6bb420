package validator_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/fieldkit/valid/pkg/validator"
)

func TestMin(t *testing.T) {
	t.Run("passes at and above the minimum", func(t *testing.T) {
		assert.True(t, validator.Min(18).Evaluate(18).Valid)
		assert.True(t, validator.Min(18).Evaluate(19).Valid)
	})

	t.Run("fails below the minimum", func(t *testing.T) {
		res := validator.Min(18).Evaluate(17)
		assert.False(t, res.Valid)
		assert.Equal(t, "must be at least 18", res.Message)
	})

	t.Run("works with floats", func(t *testing.T) {
		assert.True(t, validator.Min(0.5).Evaluate(0.75).Valid)
		assert.False(t, validator.Min(0.5).Evaluate(0.25).Valid)
	})

	t.Run("works with negative bounds", func(t *testing.T) {
		assert.True(t, validator.Min(-10).Evaluate(-5).Valid)
		assert.False(t, validator.Min(-10).Evaluate(-11).Valid)
	})
}

func TestMax(t *testing.T) {
	t.Run("passes at and below the maximum", func(t *testing.T) {
		assert.True(t, validator.Max(120).Evaluate(120).Valid)
		assert.True(t, validator.Max(120).Evaluate(42).Valid)
	})

	t.Run("fails above the maximum", func(t *testing.T) {
		res := validator.Max(120).Evaluate(121)
		assert.False(t, res.Valid)
		assert.Equal(t, "must be at most 120", res.Message)
	})
}

func TestBetween(t *testing.T) {
	age := validator.Between(18, 120)

	t.Run("passes inside the bounds", func(t *testing.T) {
		assert.True(t, age.Evaluate(42).Valid)
	})

	t.Run("too small reports the minimum bound", func(t *testing.T) {
		res := age.Evaluate(17)
		assert.False(t, res.Valid)
		assert.Equal(t, "must be at least 18", res.Message)
	})

	t.Run("too large reports the maximum bound", func(t *testing.T) {
		res := age.Evaluate(121)
		assert.False(t, res.Valid)
		assert.Equal(t, "must be at most 120", res.Message)
	})

	t.Run("passes at both boundaries", func(t *testing.T) {
		assert.True(t, age.Evaluate(18).Valid)
		assert.True(t, age.Evaluate(120).Valid)
	})
}

func TestPositive(t *testing.T) {
	t.Run("passes for positive values", func(t *testing.T) {
		assert.True(t, validator.Positive[int]().Evaluate(1).Valid)
		assert.True(t, validator.Positive[float64]().Evaluate(0.001).Valid)
	})

	t.Run("fails for zero and negatives", func(t *testing.T) {
		res := validator.Positive[int]().Evaluate(0)
		assert.False(t, res.Valid)
		assert.Equal(t, "must be positive", res.Message)
		assert.False(t, validator.Positive[int]().Evaluate(-1).Valid)
	})
}

func TestNonZero(t *testing.T) {
	t.Run("passes for non-zero values of either sign", func(t *testing.T) {
		assert.True(t, validator.NonZero[int]().Evaluate(5).Valid)
		assert.True(t, validator.NonZero[int]().Evaluate(-5).Valid)
	})

	t.Run("fails for zero", func(t *testing.T) {
		res := validator.NonZero[int]().Evaluate(0)
		assert.False(t, res.Valid)
		assert.Equal(t, "must not be zero", res.Message)
	})
}
