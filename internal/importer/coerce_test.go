package importer

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCoerceDate(t *testing.T) {
	tests := []struct {
		name    string
		cell    string
		want    string
		wantErr bool
	}{
		{name: "iso", cell: "2024-01-02", want: "2024-01-02"},
		{name: "iso datetime", cell: "2024-01-02 10:30:00", want: "2024-01-02"},
		{name: "day first", cell: "02/01/2024", want: "2024-01-02"},
		{name: "padded", cell: " 2024-01-02 ", want: "2024-01-02"},
		{name: "empty", cell: "", wantErr: true},
		{name: "garbage", cell: "yesterday", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := coerceDate(tt.cell)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got.Format("2006-01-02"))
		})
	}
}

func TestCoerceAmount(t *testing.T) {
	tests := []struct {
		name    string
		cell    string
		want    int64
		wantErr bool
	}{
		{name: "plain", cell: "50000", want: 50000},
		{name: "thousands separators", cell: "1,250,000", want: 1250000},
		{name: "currency suffix", cell: "50000 VND", want: 50000},
		{name: "dong sign", cell: "50000đ", want: 50000},
		{name: "negative normalized", cell: "-80000", want: 80000},
		{name: "empty", cell: "", wantErr: true},
		{name: "garbage", cell: "miễn phí", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := coerceAmount(tt.cell)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.True(t, got.Equal(decimal.NewFromInt(tt.want)), "got %s", got)
		})
	}
}
