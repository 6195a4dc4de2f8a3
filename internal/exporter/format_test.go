package exporter

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestFormatDecimal(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"0", "0.00"},
		{"13.4", "13.40"},
		{"199.999", "200.00"},
		{"2098.65", "2098.65"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, FormatDecimal(decimal.RequireFromString(tt.input)))
		})
	}
}

func TestFormatCurrency(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "zero", input: "0", expected: "$0.00"},
		{name: "small", input: "5.5", expected: "$5.50"},
		{name: "three digits", input: "999.99", expected: "$999.99"},
		{name: "thousands", input: "1234.5", expected: "$1,234.50"},
		{name: "millions", input: "1234567.891", expected: "$1,234,567.89"},
		{name: "exact group boundary", input: "100000", expected: "$100,000.00"},
		{name: "negative", input: "-4321.1", expected: "-$4,321.10"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, FormatCurrency(decimal.RequireFromString(tt.input)))
		})
	}
}

func TestFormatCount(t *testing.T) {
	tests := []struct {
		input    int64
		expected string
	}{
		{0, "0"},
		{29, "29"},
		{999, "999"},
		{1000, "1,000"},
		{987654, "987,654"},
		{1234567, "1,234,567"},
		{-1500, "-1,500"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			assert.Equal(t, tt.expected, FormatCount(tt.input))
		})
	}
}

func TestFormatInt(t *testing.T) {
	assert.Equal(t, "0", FormatInt(0))
	assert.Equal(t, "1234", FormatInt(1234))
	assert.Equal(t, "-7", FormatInt(-7))
}
