// Copyright (c) 2020 The Meter.io developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package auction

import (
	"math/big"
	"time"

	"github.com/meterio/timeboost/lane"
	"github.com/meterio/timeboost/xenv"
)

// WithdrawCollateral returns amount of unlocked collateral to the caller.
// The outstanding highest bid stays locked until the bidder is outbid or the
// round resolves.
func (a *Auction) WithdrawCollateral(env *xenv.Environment, amount *big.Int) (err error) {
	start := time.Now()
	defer func() {
		a.logger.Debug("Withdraw completed", "elapsed", lane.PrettyDuration(time.Since(start)))
	}()

	if amount == nil || amount.Sign() <= 0 {
		return ErrInvalidAmount
	}

	s := env.State()
	checkpoint := s.NewCheckpoint()

	collateral := a.GetCollateral(s, env.Origin())
	if collateral.Cmp(amount) < 0 {
		a.logger.Info("not enough collateral", "bidder", env.Origin(), "amount", amount, "balance", collateral)
		return ErrInsufficientBalance
	}

	remainder := new(big.Int).Sub(collateral, amount)
	slate := a.GetBidSlate(s)
	if !slate.IsEmpty() && slate.Bidder == env.Origin() && remainder.Cmp(slate.Amount) < 0 {
		a.logger.Info("collateral locked by pending bid", "bidder", env.Origin(), "locked", slate.Amount)
		return ErrLockedByPendingBid
	}

	a.SetCollateral(s, env.Origin(), remainder)
	if err = env.TransferNative(lane.AuctionModuleAddr, env.Origin(), amount); err != nil {
		a.logger.Error("withdraw transfer failed", "bidder", env.Origin(), "amount", amount, "err", err)
		s.RevertTo(checkpoint)
		return ErrTransferFailed
	}
	return nil
}
