// Copyright (c) 2020 The Meter.io developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package lanefee

import (
	"math/big"

	"github.com/meterio/timeboost/lane"
	"github.com/meterio/timeboost/state"
	"github.com/meterio/timeboost/xenv"
)

// UpdateLeader refreshes the cache with a new leadership decision. Only the
// auction engine identity may call it; anyone else is rejected on the
// transaction origin. The effective fee snapshots the new leader's preference
// at this moment; a zero preference falls back to the default lane fee. A
// zero leader address clears the cache.
func (k *Keeper) UpdateLeader(env *xenv.Environment, newLeader lane.Address) error {
	if env.Origin() != k.auctionAddr {
		k.logger.Info("leader update rejected", "caller", env.Origin())
		return ErrOnlyAuctionCanUpdateLeader
	}
	return k.updateLeader(env, newLeader)
}

func (k *Keeper) updateLeader(env *xenv.Environment, newLeader lane.Address) error {
	s := env.State()
	cache := newCachedLeadership()
	if !newLeader.IsZero() {
		fee := k.GetFeePreference(s, newLeader)
		if fee.Sign() == 0 {
			fee = lane.DefaultLaneFee
		}
		cache = &CachedLeadership{
			Leader:    newLeader,
			StartTime: env.Now(),
			Fee:       fee,
		}
	}
	k.SetCachedLeadership(s, cache)
	k.logger.Debug("leader cache updated", "cache", cache.ToString())
	return nil
}

// PublishLeader implements the auction engine's leadership publisher
// contract. It runs inside the resolution transaction with the settler as
// origin, trusted by construction, so it skips the origin check the external
// entrypoint enforces.
func (k *Keeper) PublishLeader(env *xenv.Environment, leader lane.Address, price *big.Int) error {
	_ = price // the cache tracks the fee, not what leadership cost
	return k.updateLeader(env, leader)
}

// Refresh reconciles the cache against the auction's current leadership
// record. Anyone may call it; it only ever copies the engine's own record,
// so repeated or concurrent calls converge on the same state.
func (k *Keeper) Refresh(env *xenv.Environment) error {
	if k.source == nil {
		return ErrNoLeadershipSource
	}

	s := env.State()
	leader, _, startTime := k.source.CurrentLeadership(s)

	cache := newCachedLeadership()
	if !leader.IsZero() {
		fee := k.GetFeePreference(s, leader)
		if fee.Sign() == 0 {
			fee = lane.DefaultLaneFee
		}
		cache = &CachedLeadership{
			Leader:    leader,
			StartTime: startTime,
			Fee:       fee,
		}
	}
	k.SetCachedLeadership(s, cache)
	return nil
}

// IsLeaderActive returns whether the cached leader is still within its
// validity window.
func (k *Keeper) IsLeaderActive(s *state.State, now uint64) bool {
	return k.GetCachedLeadership(s).ActiveAt(now)
}

// ApplyFee is the read-only decision point consulted before an operation
// executes: the cached leader's fee while the cache is valid, the default
// fee otherwise. It must stay side-effect free, the host may probe it
// speculatively.
func (k *Keeper) ApplyFee(s *state.State, now uint64) *big.Int {
	cache := k.GetCachedLeadership(s)
	if cache.ActiveAt(now) && cache.Fee.Sign() > 0 {
		return new(big.Int).Set(cache.Fee)
	}
	return new(big.Int).Set(lane.DefaultLaneFee)
}

// LeaderStatus reports the current effective leader for the query surface:
// zero leader once expired, the effective fee, and remaining leadership time.
func (k *Keeper) LeaderStatus(s *state.State, now uint64) (leader lane.Address, fee *big.Int, remaining uint64) {
	cache := k.GetCachedLeadership(s)
	if !cache.ActiveAt(now) {
		return lane.ZeroAddress, new(big.Int).Set(lane.DefaultLaneFee), 0
	}
	return cache.Leader, new(big.Int).Set(cache.Fee), cache.StartTime + lane.RoundDuration - now
}
