// Copyright (c) 2020 The Meter.io developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package lanefee

import (
	"math/big"

	"github.com/ethereum/go-ethereum/rlp"
	"github.com/meterio/timeboost/lane"
	"github.com/meterio/timeboost/state"
)

var (
	LeaderCacheKey = lane.Blake2b([]byte("leader-cache-key"))
)

// FeePreferenceKey storage key of an account's fee preference.
func FeePreferenceKey(addr lane.Address) lane.Bytes32 {
	return lane.Blake2b([]byte("fee-preference-key"), addr.Bytes())
}

// FeeAccrualKey storage key of an account's accrued fees for one token.
func FeeAccrualKey(addr lane.Address, token byte) lane.Bytes32 {
	return lane.Blake2b([]byte("fee-accrual-key"), addr.Bytes(), []byte{token})
}

func (k *Keeper) GetCachedLeadership(s *state.State) (cache *CachedLeadership) {
	s.DecodeStorage(lane.LaneFeeVaultAddr, LeaderCacheKey, func(raw []byte) error {
		if len(raw) == 0 {
			cache = newCachedLeadership()
			return nil
		}
		cache = &CachedLeadership{}
		return rlp.DecodeBytes(raw, cache)
	})
	return
}

func (k *Keeper) SetCachedLeadership(s *state.State, cache *CachedLeadership) {
	s.EncodeStorage(lane.LaneFeeVaultAddr, LeaderCacheKey, func() ([]byte, error) {
		if cache.IsVacant() {
			return nil, nil
		}
		return rlp.EncodeToBytes(cache)
	})
}

func (k *Keeper) GetFeePreference(s *state.State, addr lane.Address) (fee *big.Int) {
	s.DecodeStorage(lane.LaneFeeVaultAddr, FeePreferenceKey(addr), func(raw []byte) error {
		if len(raw) == 0 {
			fee = &big.Int{}
			return nil
		}
		return rlp.DecodeBytes(raw, &fee)
	})
	return
}

func (k *Keeper) SetFeePreference(s *state.State, addr lane.Address, fee *big.Int) {
	s.EncodeStorage(lane.LaneFeeVaultAddr, FeePreferenceKey(addr), func() ([]byte, error) {
		if fee.Sign() == 0 {
			return nil, nil
		}
		return rlp.EncodeToBytes(fee)
	})
}

func (k *Keeper) GetAccruedFees(s *state.State, addr lane.Address, token byte) (amount *big.Int) {
	s.DecodeStorage(lane.LaneFeeVaultAddr, FeeAccrualKey(addr, token), func(raw []byte) error {
		if len(raw) == 0 {
			amount = &big.Int{}
			return nil
		}
		return rlp.DecodeBytes(raw, &amount)
	})
	return
}

func (k *Keeper) SetAccruedFees(s *state.State, addr lane.Address, token byte, amount *big.Int) {
	s.EncodeStorage(lane.LaneFeeVaultAddr, FeeAccrualKey(addr, token), func() ([]byte, error) {
		if amount.Sign() == 0 {
			return nil, nil
		}
		return rlp.EncodeToBytes(amount)
	})
}
