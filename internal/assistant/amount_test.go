package assistant

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAmount_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		in    string
		valid bool
		want  string
	}{
		{`50`, true, "50"},
		{`50.9`, true, "50.9"},
		{`-30`, true, "-30"},
		{`"50"`, true, "50"},
		{`"50,90"`, true, "50.9"},
		{`"R$ 1.234,56"`, true, "1234.56"},
		{`"$ 10.5"`, true, "10.5"},
		{`"R$ 1.500"`, true, "1500"},
		{`"1.234.567"`, true, "1234567"},
		{`"1,234.56"`, true, "1234.56"},
		{`"1,234,567"`, true, "1234567"},
		{`"R$ 12.50"`, true, "12.5"},
		{`"-1.500"`, true, "-1500"},
		{`null`, false, "0"},
		{`"cinquenta"`, false, "0"},
		{`""`, false, "0"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			var a Amount
			require.NoError(t, json.Unmarshal([]byte(tt.in), &a))
			assert.Equal(t, tt.valid, a.Valid)
			assert.Equal(t, tt.want, a.Value.String())
		})
	}
}

func TestRefID_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		in   string
		set  bool
		want uint
	}{
		{`3`, true, 3},
		{`"12"`, true, 12},
		{`null`, false, 0},
		{`0`, false, 0},
		{`"mercado"`, false, 0},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			var r RefID
			require.NoError(t, json.Unmarshal([]byte(tt.in), &r))
			assert.Equal(t, tt.set, r.Set)
			assert.Equal(t, tt.want, r.Value)
		})
	}
}
