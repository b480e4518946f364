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

// ResolveRound settles the active round and opens the next one. Settler only,
// and only once the round duration has elapsed. The slate is read
// transactionally at this instant: whatever bid is highest now wins and pays
// the second-highest amount into the rent pool. Leadership is pushed to the
// publisher within the same transaction.
func (a *Auction) ResolveRound(env *xenv.Environment) (err error) {
	start := time.Now()
	defer func() {
		a.logger.Debug("Resolve completed", "elapsed", lane.PrettyDuration(time.Since(start)))
	}()

	s := env.State()

	settler := a.GetSettler(s)
	if settler.IsZero() || env.Origin() != settler {
		a.logger.Info("resolve rejected, not settler", "caller", env.Origin())
		return ErrNotSettler
	}

	round := a.GetRound(s)
	if env.Now() < round.DueAt() {
		a.logger.Info("resolve rejected, round still active", "round", round.Number, "dueAt", round.DueAt(), "now", env.Now())
		return ErrRoundStillActive
	}

	checkpoint := s.NewCheckpoint()

	outgoing := a.GetLeadership(s)
	if !outgoing.IsVacant() {
		a.emitLeadershipExpired(env, outgoing)
	}

	round.Number = round.Number + 1
	round.StartTime = env.Now()
	a.SetRound(s, round)

	slate := a.GetBidSlate(s)
	leadership := newLeadership()
	summary := &RoundSummary{
		Round:      round.Number,
		Winner:     lane.ZeroAddress,
		Price:      &big.Int{},
		WinningBid: &big.Int{},
		Timestamp:  env.Now(),
	}

	if !slate.IsEmpty() {
		// the winner pays the second-highest amount. Withdrawal only locks
		// against the highest amount, so the price may no longer be covered
		// here; that aborts resolution wholesale.
		price := slate.SecondAmount
		collateral := a.GetCollateral(s, slate.Bidder)
		if collateral.Cmp(price) < 0 {
			a.logger.Warn("winner cannot cover clearing price", "winner", slate.Bidder, "price", price, "collateral", collateral)
			s.RevertTo(checkpoint)
			return ErrInsufficientCollateralForPrice
		}
		a.SetCollateral(s, slate.Bidder, new(big.Int).Sub(collateral, price))
		a.SetRentPool(s, new(big.Int).Add(a.GetRentPool(s), price))

		leadership = &Leadership{Leader: slate.Bidder, Price: price, Round: round.Number}
		summary.Winner = slate.Bidder
		summary.Price = price
		summary.WinningBid = slate.Amount

		a.SetBidSlate(s, newBidSlate())
	}
	a.SetLeadership(s, leadership)

	summaryList := a.GetSummaryList(s)
	summaryList.Append(summary)
	a.SetSummaryList(s, summaryList)

	a.emitRoundResolved(env, summary)

	if a.publisher != nil {
		if err = a.publisher.PublishLeader(env, leadership.Leader, leadership.Price); err != nil {
			a.logger.Error("leadership publish failed", "leader", leadership.Leader, "err", err)
			s.RevertTo(checkpoint)
			return err
		}
	}

	currentRoundGauge.Set(float64(round.Number))
	roundsResolvedCounter.Inc()
	if leadership.IsVacant() {
		leaderActiveGauge.Set(0)
	} else {
		leaderActiveGauge.Set(1)
	}
	rentPool, _ := new(big.Float).SetInt(a.GetRentPool(s)).Float64()
	rentPoolGauge.Set(rentPool)

	a.logger.Info("round resolved", "round", round.Number, "winner", summary.Winner, "price", summary.Price.String(), "winningBid", summary.WinningBid.String())
	return nil
}
