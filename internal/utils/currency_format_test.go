package utils

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestFormatRupiah(t *testing.T) {
	tests := []struct {
		name   string
		amount string
		want   string
	}{
		{name: "zero", amount: "0", want: "Rp. 0"},
		{name: "under one group", amount: "999", want: "Rp. 999"},
		{name: "exactly one group boundary", amount: "1000", want: "Rp. 1.000"},
		{name: "millions", amount: "1234567", want: "Rp. 1.234.567"},
		{name: "fraction truncated not rounded", amount: "1234.99", want: "Rp. 1.234"},
		{name: "negative sign ahead of marker", amount: "-50000", want: "-Rp. 50.000"},
		{name: "negative fraction truncated toward zero", amount: "-999.99", want: "-Rp. 999"},
		{name: "large", amount: "9876543210", want: "Rp. 9.876.543.210"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FormatRupiah(decimal.RequireFromString(tt.amount))
			assert.Equal(t, tt.want, got)
		})
	}
}
