// Copyright (c) 2020 The Meter.io developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package lane

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseAddress(t *testing.T) {
	hexAddr := "0x0123456789abcdef0123456789abcdef01234567"

	addr, err := ParseAddress(hexAddr)
	assert.Nil(t, err)
	assert.Equal(t, hexAddr, addr.String())
	assert.Equal(t, "0x012345...234567", addr.AbbrevString())
	assert.False(t, addr.IsZero())

	// prefix is optional
	bare, err := ParseAddress(hexAddr[2:])
	assert.Nil(t, err)
	assert.Equal(t, addr, bare)

	tests := []struct {
		input string
	}{
		{"zz0123456789abcdef0123456789abcdef01234567"}, // bad prefix
		{"0x012345"},                                  // bad length
		{"0xzz23456789abcdef0123456789abcdef01234567"}, // bad hex
	}
	for _, tt := range tests {
		_, err := ParseAddress(tt.input)
		assert.NotNil(t, err)
	}
}

func TestMustParseAddress(t *testing.T) {
	hexAddr := "0x0123456789abcdef0123456789abcdef01234567"
	assert.Equal(t, MustParseAddress(hexAddr).String(), hexAddr)
	assert.Panics(t, func() { MustParseAddress("not-an-address") })
}

func TestBytesToAddress(t *testing.T) {
	// short input right-aligns
	addr := BytesToAddress([]byte{0x01})
	assert.Equal(t, byte(0x01), addr[19])
	assert.Equal(t, byte(0x00), addr[0])

	// long input crops from the left
	long := make([]byte, 25)
	long[24] = 0xab
	assert.Equal(t, byte(0xab), BytesToAddress(long)[19])

	assert.True(t, BytesToAddress([]byte{}).IsZero())
}

func TestParseBytes32(t *testing.T) {
	hexB32 := "0x0123456789abcdef0123456789abcdef0123456789abcdef0123456789abcdef"

	b32, err := ParseBytes32(hexB32)
	assert.Nil(t, err)
	assert.Equal(t, hexB32, b32.String())
	assert.False(t, b32.IsZero())

	assert.Equal(t, b32, MustParseBytes32(hexB32))
	assert.Panics(t, func() { MustParseBytes32("0x012345") })

	_, err = ParseBytes32("zz" + hexB32[2:])
	assert.NotNil(t, err)
}
