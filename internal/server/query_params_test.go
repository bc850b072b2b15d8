package server

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestColumnsParam(t *testing.T) {
	assert.Nil(t, columnsParam(""))
	assert.Nil(t, columnsParam("  "))
	assert.Equal(t, []string{"sku", "name"}, columnsParam("sku,name"))
	assert.Equal(t, []string{"sku", "name"}, columnsParam(" sku , name , "))
}

func TestParseOptionalTime(t *testing.T) {
	got, err := parseOptionalTime("", false)
	require.NoError(t, err)
	assert.Nil(t, got)

	got, err = parseOptionalTime("2026-03-15", false)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC), *got)

	got, err = parseOptionalTime("2026-03-15", true)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, 23, got.Hour())

	_, err = parseOptionalTime("soon", false)
	assert.Error(t, err)
}

func TestFormatMoney(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"0", "0"},
		{"950", "950"},
		{"2800", "2,800"},
		{"1250000", "1,250,000"},
		{"1250000.5", "1,250,000.5"},
		{"-45000.25", "-45,000.25"},
		{"12.999", "12.99"},
	}
	for _, tc := range cases {
		d, err := decimal.NewFromString(tc.in)
		require.NoError(t, err)
		assert.Equal(t, tc.want, formatMoney(d), tc.in)
	}
}
