package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDateAndMonthKey(t *testing.T) {
	ts := time.Date(2024, 1, 5, 23, 59, 0, 0, time.UTC)

	assert.Equal(t, "2024-01-05", DateKey(ts))
	assert.Equal(t, "2024-01", MonthKey(ts))
}

func TestRoundWithOneDecimalPlace(t *testing.T) {
	assert.Equal(t, 0.0, RoundWithOneDecimalPlace(0))
	assert.Equal(t, 1.5, RoundWithOneDecimalPlace(1.45000001))
	assert.Equal(t, 2.3, RoundWithOneDecimalPlace(7.0/3.0))
}
