package dto

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFlexIntAcceptsNumberOrString(t *testing.T) {
	var v struct {
		Age FlexInt `json:"age"`
	}

	require.NoError(t, json.Unmarshal([]byte(`{"age": 3}`), &v))
	assert.Equal(t, FlexInt(3), v.Age)

	require.NoError(t, json.Unmarshal([]byte(`{"age": "7"}`), &v))
	assert.Equal(t, FlexInt(7), v.Age)
}

func TestFlexIntRejectsFractionalInput(t *testing.T) {
	var v struct {
		Age FlexInt `json:"age"`
	}

	// Fractional values must fail outright, not truncate.
	assert.Error(t, json.Unmarshal([]byte(`{"age": 3.7}`), &v))
	assert.Error(t, json.Unmarshal([]byte(`{"age": "3.7"}`), &v))
}

func TestFlexFloatAcceptsNumberOrString(t *testing.T) {
	var v struct {
		Weight FlexFloat `json:"weight"`
	}

	require.NoError(t, json.Unmarshal([]byte(`{"weight": 4.2}`), &v))
	assert.Equal(t, FlexFloat(4.2), v.Weight)

	require.NoError(t, json.Unmarshal([]byte(`{"weight": "4.2"}`), &v))
	assert.Equal(t, FlexFloat(4.2), v.Weight)
}

func TestFlexDecimalKeepsTextualForm(t *testing.T) {
	var v struct {
		Price FlexDecimal `json:"price"`
	}

	require.NoError(t, json.Unmarshal([]byte(`{"price": "4.50"}`), &v))
	assert.Equal(t, FlexDecimal("4.50"), v.Price)
	assert.Equal(t, 4.5, v.Price.Float())

	require.NoError(t, json.Unmarshal([]byte(`{"price": 4.5}`), &v))
	assert.Equal(t, FlexDecimal("4.5"), v.Price)

	assert.Error(t, json.Unmarshal([]byte(`{"price": "free"}`), &v))
}
