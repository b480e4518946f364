// Copyright (c) 2020 The Meter.io developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package state

import (
	"math/big"

	"github.com/ethereum/go-ethereum/rlp"
	"github.com/meterio/timeboost/lane"
)

// Account the account model held by state.
// Balance tracks the native token, Energy tracks the gov token.
type Account struct {
	Balance *big.Int
	Energy  *big.Int

	storage map[lane.Bytes32]rlp.RawValue
}

func emptyAccount() *Account {
	return &Account{
		Balance: &big.Int{},
		Energy:  &big.Int{},
	}
}

// IsEmpty returns if an account is empty.
// An empty account has zero balance and zero energy and no storage.
func (a *Account) IsEmpty() bool {
	return a.Balance.Sign() == 0 && a.Energy.Sign() == 0 && len(a.storage) == 0
}
