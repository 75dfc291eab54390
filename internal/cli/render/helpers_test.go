package render

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatETH(t *testing.T) {
	wei := func(s string) *big.Int {
		v, _ := new(big.Int).SetString(s, 10)
		return v
	}

	assert.Equal(t, "-", FormatETH(nil))
	assert.Equal(t, "0 ETH", FormatETH(big.NewInt(0)))
	assert.Equal(t, "1 ETH", FormatETH(wei("1000000000000000000")))
	assert.Equal(t, "0.0001 ETH", FormatETH(wei("100000000000000")))
	assert.Equal(t, "0.00005 ETH", FormatETH(wei("50000000000000")))
	assert.Equal(t, "2.5 ETH", FormatETH(wei("2500000000000000000")))
	assert.Equal(t, "0.000000000000000001 ETH", FormatETH(big.NewInt(1)))
}

func TestShortHash(t *testing.T) {
	assert.Equal(t, "0xabc", ShortHash("0xabc"))
	assert.Equal(t,
		"0x12345678…cdef",
		ShortHash("0x1234567890000000000000000000000000000000000000000000000000abcdef"))
}
