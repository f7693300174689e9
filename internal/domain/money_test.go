// internal/domain/money_test.go
package domain

import (
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMoneyMarshalKeepsScale(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"10.00", `"10.00"`},
		{"12.50", `"12.50"`},
		{"0.001", `"0.001"`},
		{"7", `"7"`},
		{"0", `"0"`},
	}
	for _, tc := range cases {
		got, err := json.Marshal(NewMoney(decimal.RequireFromString(tc.in)))
		require.NoError(t, err)
		assert.Equal(t, tc.want, string(got), "input %s", tc.in)
	}
}

func TestTransactionMarshalKeepsMoneyScale(t *testing.T) {
	tx := Transaction{
		Cost:    NewMoney(decimal.RequireFromString("10.00")),
		Benefit: NewMoney(decimal.RequireFromString("12.50")),
	}
	raw, err := json.Marshal(tx)
	require.NoError(t, err)
	assert.Contains(t, string(raw), `"cost":"10.00"`)
	assert.Contains(t, string(raw), `"benefit":"12.50"`)
}

func TestMoneyUnmarshalRoundTrip(t *testing.T) {
	var m Money
	require.NoError(t, json.Unmarshal([]byte(`"10.00"`), &m))

	raw, err := json.Marshal(m)
	require.NoError(t, err)
	assert.Equal(t, `"10.00"`, string(raw))
}
