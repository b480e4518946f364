// Copyright (c) 2020 The Meter.io developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

// Package saltminer searches for a deployment salt whose deterministic
// deployment address carries required capability flag bits. Pure and
// replayable; the only hard guarantee is termination within the search
// bound, the flag constraint may have no solution in range.
package saltminer

import (
	"encoding/binary"
	"errors"

	"github.com/ethereum/go-ethereum/crypto"
	"github.com/meterio/timeboost/lane"
)

// deploymentPrefix is the fixed first byte of the address preimage,
// distinguishing deterministic deployments from ordinary account nonces.
const deploymentPrefix = byte(0xff)

var ErrSaltNotFound = errors.New("no salt found within search bound")

// DeploymentAddress computes the deterministic deployment address for a
// deployer, salt and code hash:
// keccak256(0xff ++ deployer ++ salt ++ codeHash)[12:].
func DeploymentAddress(deployer lane.Address, salt uint64, codeHash lane.Bytes32) lane.Address {
	var saltBytes [32]byte
	binary.BigEndian.PutUint64(saltBytes[24:], salt)

	preimage := make([]byte, 0, 1+20+32+32)
	preimage = append(preimage, deploymentPrefix)
	preimage = append(preimage, deployer.Bytes()...)
	preimage = append(preimage, saltBytes[:]...)
	preimage = append(preimage, codeHash.Bytes()...)
	return lane.BytesToAddress(crypto.Keccak256(preimage)[12:])
}

// HasFlagBits reports whether the low-order bits of the address contain all
// of the required flag bits.
func HasFlagBits(addr lane.Address, flagBits uint64) bool {
	low := binary.BigEndian.Uint64(addr[12:])
	return low&flagBits == flagBits
}

// Find returns the first (address, salt) pair whose deployment address
// carries all required flag bits, trying the SaltSearchBound salts starting
// from zero. The code hash binds the search to exactly this deployment code
// and constructor arguments. Fails with ErrSaltNotFound once the bound is
// exhausted.
func Find(deployer lane.Address, flagBits uint64, code, ctorArgs []byte) (lane.Address, uint64, error) {
	codeHash := lane.BytesToBytes32(crypto.Keccak256(code, ctorArgs))

	for salt := uint64(0); salt < lane.SaltSearchBound; salt++ {
		addr := DeploymentAddress(deployer, salt, codeHash)
		if HasFlagBits(addr, flagBits) {
			return addr, salt, nil
		}
	}
	return lane.Address{}, 0, ErrSaltNotFound
}
