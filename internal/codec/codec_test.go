package codec

import (
	"encoding/json"
	"math"
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRender_BigIntAsDecimalString(t *testing.T) {
	wei, _ := new(big.Int).SetString("10000000000000000", 10)
	out, err := Render(map[string]any{"amountIn": wei})
	require.NoError(t, err)
	assert.Contains(t, out, `"10000000000000000"`)
}

func TestRender_Int64MaxIsNotTruncated(t *testing.T) {
	out, err := Render(map[string]any{"value": int64(math.MaxInt64)})
	require.NoError(t, err)
	assert.Contains(t, out, `"9223372036854775807"`)
	assert.NotContains(t, out, "9223372036854776000")
}

func TestRender_Uint64(t *testing.T) {
	out, err := Render(struct {
		GasUsed uint64 `json:"gasUsed"`
	}{GasUsed: 18446744073709551615})
	require.NoError(t, err)
	assert.Contains(t, out, `"18446744073709551615"`)
}

func TestRender_StructTags(t *testing.T) {
	type receipt struct {
		TxHash  string   `json:"txHash"`
		Coin    string   `json:"coin,omitempty"`
		Block   *big.Int `json:"blockNumber"`
		ignored string
	}
	out, err := Render(receipt{TxHash: "0xabc", Block: big.NewInt(123), ignored: "x"})
	require.NoError(t, err)

	var got map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Equal(t, "0xabc", got["txHash"])
	assert.Equal(t, "123", got["blockNumber"])
	assert.NotContains(t, got, "coin")
	assert.NotContains(t, got, "ignored")
}

func TestRender_RawMessagePreservesWideNumbers(t *testing.T) {
	raw := json.RawMessage(`{"totalSupply": 9223372036854775807, "name": "Sample"}`)
	out, err := Render(map[string]any{"coin": raw})
	require.NoError(t, err)
	assert.Contains(t, out, "9223372036854775807")
	assert.Contains(t, out, `"Sample"`)
}

func TestRender_MalformedRawMessage(t *testing.T) {
	_, err := Render(json.RawMessage(`{"broken`))
	assert.Error(t, err)
}

func TestRender_Idempotent(t *testing.T) {
	first, err := Render(map[string]any{"value": int64(42), "list": []any{"a", "b"}})
	require.NoError(t, err)

	var decoded any
	require.NoError(t, json.Unmarshal([]byte(first), &decoded))
	second, err := Render(decoded)
	require.NoError(t, err)
	assert.JSONEq(t, first, second)
}

func TestRender_NilAndEmpty(t *testing.T) {
	out, err := Render(nil)
	require.NoError(t, err)
	assert.Equal(t, "null", out)

	out, err = Render(map[string]any{"wallet": (*big.Int)(nil)})
	require.NoError(t, err)
	assert.Contains(t, out, "null")
}
