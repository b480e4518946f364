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

// DepositCollateral credits the caller's collateral by amount, backed by a
// native value transfer into the auction vault.
func (a *Auction) DepositCollateral(env *xenv.Environment, amount *big.Int) (err error) {
	start := time.Now()
	defer func() {
		a.logger.Debug("Deposit completed", "elapsed", lane.PrettyDuration(time.Since(start)))
	}()

	if amount == nil || amount.Sign() <= 0 {
		return ErrInvalidAmount
	}

	s := env.State()
	checkpoint := s.NewCheckpoint()

	if err = env.TransferNative(env.Origin(), lane.AuctionModuleAddr, amount); err != nil {
		a.logger.Info("deposit transfer failed", "bidder", env.Origin(), "amount", amount, "err", err)
		s.RevertTo(checkpoint)
		return ErrTransferFailed
	}

	collateral := a.GetCollateral(s, env.Origin())
	a.SetCollateral(s, env.Origin(), new(big.Int).Add(collateral, amount))
	return nil
}
