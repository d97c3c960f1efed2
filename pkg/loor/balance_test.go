package loor

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseBalance(t *testing.T) {
	tests := []struct {
		name string
		text string
		want int
	}{
		{
			name: "balance with thousands separator and unit",
			text: "1,234 LOOT",
			want: 1234,
		},
		{
			name: "bare number",
			text: "850",
			want: 850,
		},
		{
			name: "label prefix",
			text: "Balance: 400 LOOT",
			want: 400,
		},
		{
			name: "surrounding whitespace",
			text: "\n  2,500 LOOT\n  ",
			want: 2500,
		},
		{
			name: "zero",
			text: "0 LOOT",
			want: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseBalance(tt.text)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseBalance_NoDigits(t *testing.T) {
	for _, text := range []string{"", "LOOT", "no balance here"} {
		_, err := ParseBalance(text)
		require.Error(t, err, "text %q should not parse", text)
		assert.True(t, errors.Is(err, ErrNotFound))
	}
}

func TestSlug(t *testing.T) {
	tests := []struct {
		name string
		want string
	}{
		{"Example Show", "example-show"},
		{"UPPER CASE", "upper-case"},
		{"  padded  name ", "padded--name"},
		{"single", "single"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, Slug(tt.name))
	}
}
