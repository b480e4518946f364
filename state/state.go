// Copyright (c) 2020 The Meter.io developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package state

import (
	"math/big"

	"github.com/ethereum/go-ethereum/rlp"
	"github.com/meterio/timeboost/lane"
	"github.com/pkg/errors"
)

// State manages accounts and keyed storage of the module world.
// All mutations are journaled, so a whole operation can be reverted to a
// checkpoint when any of its steps fails. There is no disk persistence,
// the host chain ledger is the system of record.
type State struct {
	accounts map[lane.Address]*Account
	journal  []func()
	err      error
}

// New create a state object.
func New() *State {
	return &State{
		accounts: make(map[lane.Address]*Account),
	}
}

func (s *State) setError(err error) {
	if s.err == nil {
		s.err = err
	}
}

// Err returns first occurred error.
func (s *State) Err() error {
	return s.err
}

func (s *State) getAccount(addr lane.Address) *Account {
	if acc, ok := s.accounts[addr]; ok {
		return acc
	}
	return emptyAccount()
}

func (s *State) getOrCreateAccount(addr lane.Address) *Account {
	if acc, ok := s.accounts[addr]; ok {
		return acc
	}
	acc := emptyAccount()
	s.accounts[addr] = acc
	s.journal = append(s.journal, func() {
		delete(s.accounts, addr)
	})
	return acc
}

// Exists returns whether an account exists (non-empty).
func (s *State) Exists(addr lane.Address) bool {
	return !s.getAccount(addr).IsEmpty()
}

// GetBalance returns native token balance of the account.
func (s *State) GetBalance(addr lane.Address) *big.Int {
	return new(big.Int).Set(s.getAccount(addr).Balance)
}

// SetBalance sets native token balance of the account.
func (s *State) SetBalance(addr lane.Address, balance *big.Int) {
	acc := s.getOrCreateAccount(addr)
	prev := acc.Balance
	acc.Balance = new(big.Int).Set(balance)
	s.journal = append(s.journal, func() {
		acc.Balance = prev
	})
}

// AddBalance adds amount to the native token balance of the account.
func (s *State) AddBalance(addr lane.Address, amount *big.Int) {
	if amount.Sign() == 0 {
		return
	}
	s.SetBalance(addr, new(big.Int).Add(s.GetBalance(addr), amount))
}

// SubBalance subtracts amount from the native token balance, returns false
// without mutation if the balance is insufficient.
func (s *State) SubBalance(addr lane.Address, amount *big.Int) bool {
	if amount.Sign() == 0 {
		return true
	}
	balance := s.GetBalance(addr)
	if balance.Cmp(amount) < 0 {
		return false
	}
	s.SetBalance(addr, new(big.Int).Sub(balance, amount))
	return true
}

// GetEnergy returns gov token balance of the account.
func (s *State) GetEnergy(addr lane.Address) *big.Int {
	return new(big.Int).Set(s.getAccount(addr).Energy)
}

// SetEnergy sets gov token balance of the account.
func (s *State) SetEnergy(addr lane.Address, energy *big.Int) {
	acc := s.getOrCreateAccount(addr)
	prev := acc.Energy
	acc.Energy = new(big.Int).Set(energy)
	s.journal = append(s.journal, func() {
		acc.Energy = prev
	})
}

// AddEnergy adds amount to the gov token balance of the account.
func (s *State) AddEnergy(addr lane.Address, amount *big.Int) {
	if amount.Sign() == 0 {
		return
	}
	s.SetEnergy(addr, new(big.Int).Add(s.GetEnergy(addr), amount))
}

// SubEnergy subtracts amount from the gov token balance, returns false
// without mutation if the balance is insufficient.
func (s *State) SubEnergy(addr lane.Address, amount *big.Int) bool {
	if amount.Sign() == 0 {
		return true
	}
	energy := s.GetEnergy(addr)
	if energy.Cmp(amount) < 0 {
		return false
	}
	s.SetEnergy(addr, new(big.Int).Sub(energy, amount))
	return true
}

// GetRawStorage returns raw storage value of the account at key.
func (s *State) GetRawStorage(addr lane.Address, key lane.Bytes32) rlp.RawValue {
	acc := s.getAccount(addr)
	if acc.storage == nil {
		return nil
	}
	return acc.storage[key]
}

// SetRawStorage sets raw storage value of the account at key. Empty value
// deletes the entry.
func (s *State) SetRawStorage(addr lane.Address, key lane.Bytes32, raw rlp.RawValue) {
	acc := s.getOrCreateAccount(addr)
	if acc.storage == nil {
		acc.storage = make(map[lane.Bytes32]rlp.RawValue)
	}
	prev, existed := acc.storage[key]
	if len(raw) == 0 {
		delete(acc.storage, key)
	} else {
		acc.storage[key] = raw
	}
	s.journal = append(s.journal, func() {
		if existed {
			acc.storage[key] = prev
		} else {
			delete(acc.storage, key)
		}
	})
}

// EncodeStorage set storage value encoded by given enc method.
func (s *State) EncodeStorage(addr lane.Address, key lane.Bytes32, enc func() ([]byte, error)) {
	raw, err := enc()
	if err != nil {
		s.setError(errors.Wrap(err, "encode storage"))
		return
	}
	s.SetRawStorage(addr, key, raw)
}

// DecodeStorage get and decode storage value with given dec method.
func (s *State) DecodeStorage(addr lane.Address, key lane.Bytes32, dec func([]byte) error) {
	raw := s.GetRawStorage(addr, key)
	if err := dec(raw); err != nil {
		s.setError(errors.Wrap(err, "decode storage"))
	}
}

// NewCheckpoint makes a checkpoint of current state.
// It returns revision of the checkpoint.
func (s *State) NewCheckpoint() int {
	return len(s.journal)
}

// RevertTo reverts state to given revision.
func (s *State) RevertTo(revision int) {
	if revision < 0 || revision > len(s.journal) {
		panic("state: invalid revision")
	}
	for i := len(s.journal) - 1; i >= revision; i-- {
		s.journal[i]()
	}
	s.journal = s.journal[:revision]
}
