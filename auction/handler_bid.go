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

// Bid admits a bid for the next round. Admission requires the amount to
// strictly exceed the current highest slate entry (ties rejected) and the
// caller's collateral to cover it at submission time. The previous highest
// amount becomes the new second amount; an outbid bidder's claim is simply
// forgotten and its collateral unlocks.
func (a *Auction) Bid(env *xenv.Environment, amount *big.Int) (err error) {
	start := time.Now()
	defer func() {
		a.logger.Debug("Bid completed", "elapsed", lane.PrettyDuration(time.Since(start)))
	}()

	if amount == nil || amount.Sign() <= 0 {
		return ErrInvalidAmount
	}

	s := env.State()
	slate := a.GetBidSlate(s)
	if amount.Cmp(slate.Amount) <= 0 {
		a.logger.Info("bid not above current highest", "bidder", env.Origin(), "amount", amount, "highest", slate.Amount)
		return ErrBidTooLow
	}

	collateral := a.GetCollateral(s, env.Origin())
	if collateral.Cmp(amount) < 0 {
		a.logger.Info("bid exceeds collateral", "bidder", env.Origin(), "amount", amount, "collateral", collateral)
		return ErrBidNotCovered
	}

	// monotonic ratchet: highest drops to second, new bid takes highest
	slate.SecondAmount = slate.Amount
	slate.Bidder = env.Origin()
	slate.Amount = amount
	a.SetBidSlate(s, slate)

	a.emitBidAdmitted(env, env.Origin(), amount)
	bidsAdmittedCounter.Inc()
	return nil
}
