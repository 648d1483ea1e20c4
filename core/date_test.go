package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDateValidation(t *testing.T) {
	_, err := NewDate(1990, 13, 0)
	assert.Error(t, err, "month out of range")

	_, err = NewDate(1990, 1, 32)
	assert.Error(t, err, "day out of range")

	_, err = NewDate(1990, 0, 5)
	assert.Error(t, err, "day without month")

	d, err := NewDate(1990, 6, 15)
	require.NoError(t, err)
	assert.True(t, d.HasMonth())
	assert.True(t, d.HasDay())

	yearOnly := YearOnly(1990)
	assert.False(t, yearOnly.HasMonth())
	assert.False(t, yearOnly.HasDay())
}

func TestDateCompare(t *testing.T) {
	mustDate := func(y, m, d int) Date {
		date, err := NewDate(y, m, d)
		require.NoError(t, err)
		return date
	}

	tests := []struct {
		name string
		a, b Date
		want int
	}{
		{"earlier year", YearOnly(1990), YearOnly(1991), -1},
		{"later year", YearOnly(1991), YearOnly(1990), 1},
		{"same year only", YearOnly(1990), YearOnly(1990), 0},
		{"unset month acts as january", YearOnly(1990), mustDate(1990, 2, 0), -1},
		{"unset month equals explicit january", YearOnly(1990), mustDate(1990, 1, 0), 0},
		{"day breaks month tie", mustDate(1990, 3, 2), mustDate(1990, 3, 10), -1},
		{"negative years", YearOnly(-500), YearOnly(-400), -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.a.Compare(tt.b))
			assert.Equal(t, -tt.want, tt.b.Compare(tt.a))
		})
	}
}

func TestDateFormats(t *testing.T) {
	full, err := NewDate(1990, 1, 2)
	require.NoError(t, err)
	assert.Equal(t, "2 January 1990", full.LongFormat())
	assert.Equal(t, "2/1/1990", full.ShortFormat())

	monthOnly, err := NewDate(1990, 6, 0)
	require.NoError(t, err)
	assert.Equal(t, "June 1990", monthOnly.LongFormat())
	assert.Equal(t, "6/1990", monthOnly.ShortFormat())

	yearOnly := YearOnly(1990)
	assert.Equal(t, "1990", yearOnly.LongFormat())
	assert.Equal(t, "1990", yearOnly.ShortFormat())
}

func TestToday(t *testing.T) {
	today := Today()
	assert.True(t, today.HasMonth())
	assert.True(t, today.HasDay())
	assert.Greater(t, today.Year, 2000)
}
