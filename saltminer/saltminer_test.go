// Copyright (c) 2020 The Meter.io developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package saltminer

import (
	"testing"

	"github.com/ethereum/go-ethereum/crypto"
	"github.com/meterio/timeboost/lane"
	"github.com/stretchr/testify/assert"
)

var (
	deployer = lane.BytesToAddress([]byte("deployer"))
	code     = []byte{0x60, 0x80, 0x60, 0x40}
	ctorArgs = []byte{0x01, 0x02}
)

func TestDeploymentAddressDeterministic(t *testing.T) {
	codeHash := lane.BytesToBytes32(crypto.Keccak256(code, ctorArgs))

	a1 := DeploymentAddress(deployer, 7, codeHash)
	a2 := DeploymentAddress(deployer, 7, codeHash)
	assert.Equal(t, a1, a2)

	// every preimage field shifts the address
	assert.NotEqual(t, a1, DeploymentAddress(deployer, 8, codeHash))
	assert.NotEqual(t, a1, DeploymentAddress(lane.BytesToAddress([]byte("other")), 7, codeHash))
	assert.NotEqual(t, a1, DeploymentAddress(deployer, 7, lane.BytesToBytes32(crypto.Keccak256(code))))
}

func TestHasFlagBits(t *testing.T) {
	addr := lane.Address{}
	addr[19] = 0x0f

	tests := []struct {
		ret      bool
		expected bool
	}{
		{HasFlagBits(addr, 0x0f), true},
		{HasFlagBits(addr, 0x03), true},
		{HasFlagBits(addr, 0x10), false},
		{HasFlagBits(addr, 0x1f), false},
		{HasFlagBits(addr, 0), true}, // empty constraint always holds
	}
	for _, tt := range tests {
		assert.Equal(t, tt.expected, tt.ret)
	}
}

func TestFind(t *testing.T) {
	// zero constraint is satisfied by the very first salt
	addr, salt, err := Find(deployer, 0, code, ctorArgs)
	assert.Nil(t, err)
	assert.Equal(t, uint64(0), salt)
	codeHash := lane.BytesToBytes32(crypto.Keccak256(code, ctorArgs))
	assert.Equal(t, DeploymentAddress(deployer, 0, codeHash), addr)

	// a small mask is found well within the bound and verifiably holds
	addr, salt, err = Find(deployer, 0xff, code, ctorArgs)
	assert.Nil(t, err)
	assert.True(t, HasFlagBits(addr, 0xff))
	assert.True(t, salt < lane.SaltSearchBound)
	assert.Equal(t, DeploymentAddress(deployer, salt, codeHash), addr)

	// the search is replayable
	addr2, salt2, err := Find(deployer, 0xff, code, ctorArgs)
	assert.Nil(t, err)
	assert.Equal(t, addr, addr2)
	assert.Equal(t, salt, salt2)
}

func TestFindExhaustsBound(t *testing.T) {
	// requiring all 64 low-order bits set cannot be met within the bound
	_, _, err := Find(deployer, ^uint64(0), code, ctorArgs)
	assert.Equal(t, ErrSaltNotFound, err)
}
