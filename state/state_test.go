// Copyright (c) 2020 The Meter.io developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package state

import (
	"math/big"
	"testing"

	"github.com/ethereum/go-ethereum/rlp"
	"github.com/meterio/timeboost/lane"
	"github.com/stretchr/testify/assert"
)

func TestBalances(t *testing.T) {
	st := New()

	acc := lane.BytesToAddress([]byte("a1"))

	tests := []struct {
		ret      interface{}
		expected interface{}
	}{
		{st.GetBalance(acc), &big.Int{}},
		{func() bool { st.AddBalance(acc, big.NewInt(10)); return true }(), true},
		{st.GetBalance(acc), big.NewInt(10)},
		{st.SubBalance(acc, big.NewInt(5)), true},
		{st.SubBalance(acc, big.NewInt(6)), false},
		{st.GetBalance(acc), big.NewInt(5)},
		{st.GetEnergy(acc), &big.Int{}},
		{func() bool { st.AddEnergy(acc, big.NewInt(7)); return true }(), true},
		{st.SubEnergy(acc, big.NewInt(8)), false},
		{st.GetEnergy(acc), big.NewInt(7)},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, tt.ret)
	}

	assert.Nil(t, st.Err())
}

func TestStorage(t *testing.T) {
	st := New()

	addr := lane.BytesToAddress([]byte("addr"))
	key := lane.Blake2b([]byte("key"))

	st.EncodeStorage(addr, key, func() ([]byte, error) {
		return rlp.EncodeToBytes(big.NewInt(42))
	})

	var value *big.Int
	st.DecodeStorage(addr, key, func(raw []byte) error {
		return rlp.DecodeBytes(raw, &value)
	})
	assert.Equal(t, big.NewInt(42), value)

	// empty encode deletes the entry
	st.EncodeStorage(addr, key, func() ([]byte, error) {
		return nil, nil
	})
	assert.Nil(t, st.GetRawStorage(addr, key))
	assert.Nil(t, st.Err())
}

func TestCheckpointRevert(t *testing.T) {
	st := New()

	acc := lane.BytesToAddress([]byte("a1"))
	key := lane.Blake2b([]byte("key"))

	st.SetBalance(acc, big.NewInt(100))
	st.SetRawStorage(acc, key, []byte{0x01})

	checkpoint := st.NewCheckpoint()

	st.SetBalance(acc, big.NewInt(1))
	st.SetEnergy(acc, big.NewInt(9))
	st.SetRawStorage(acc, key, []byte{0x02})
	st.SetRawStorage(acc, lane.Blake2b([]byte("other")), []byte{0x03})

	st.RevertTo(checkpoint)

	assert.Equal(t, big.NewInt(100), st.GetBalance(acc))
	assert.Equal(t, &big.Int{}, st.GetEnergy(acc))
	assert.Equal(t, rlp.RawValue([]byte{0x01}), st.GetRawStorage(acc, key))
	assert.Nil(t, st.GetRawStorage(acc, lane.Blake2b([]byte("other"))))
}

func TestRevertAccountCreation(t *testing.T) {
	st := New()

	acc := lane.BytesToAddress([]byte("fresh"))
	checkpoint := st.NewCheckpoint()

	st.SetBalance(acc, big.NewInt(5))
	assert.True(t, st.Exists(acc))

	st.RevertTo(checkpoint)
	assert.False(t, st.Exists(acc))
}
