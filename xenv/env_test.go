// Copyright (c) 2020 The Meter.io developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package xenv

import (
	"math/big"
	"testing"

	"github.com/meterio/timeboost/lane"
	"github.com/meterio/timeboost/state"
	"github.com/stretchr/testify/assert"
)

func TestTransferNative(t *testing.T) {
	st := state.New()
	sender := lane.BytesToAddress([]byte("sender"))
	recipient := lane.BytesToAddress([]byte("recipient"))
	st.SetBalance(sender, big.NewInt(10))

	env := New(st, &TransactionContext{Origin: sender, Time: 100, Nonce: 7})
	assert.Equal(t, sender, env.Origin())
	assert.Equal(t, uint64(100), env.Now())
	assert.Equal(t, uint64(7), env.Nonce())

	assert.Nil(t, env.TransferNative(sender, recipient, big.NewInt(4)))
	assert.Equal(t, big.NewInt(6), st.GetBalance(sender))
	assert.Equal(t, big.NewInt(4), st.GetBalance(recipient))
	assert.Equal(t, 1, len(env.Transfers()))
	assert.Equal(t, lane.TokenNative, env.Transfers()[0].Token)

	// shortfall leaves balances untouched
	err := env.TransferNative(sender, recipient, big.NewInt(100))
	assert.NotNil(t, err)
	assert.Equal(t, big.NewInt(6), st.GetBalance(sender))
	assert.Equal(t, 1, len(env.Transfers()))
}

func TestTransferGov(t *testing.T) {
	st := state.New()
	sender := lane.BytesToAddress([]byte("sender"))
	recipient := lane.BytesToAddress([]byte("recipient"))
	st.SetEnergy(sender, big.NewInt(3))

	env := New(st, &TransactionContext{Origin: sender, Time: 100})

	assert.Nil(t, env.TransferGov(sender, recipient, big.NewInt(3)))
	assert.Equal(t, &big.Int{}, st.GetEnergy(sender))
	assert.Equal(t, big.NewInt(3), st.GetEnergy(recipient))
	assert.Equal(t, lane.TokenGov, env.Transfers()[0].Token)
}
