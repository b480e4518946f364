// Copyright (c) 2020 The Meter.io developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package auction

import (
	"log/slog"
	"math/big"

	"github.com/meterio/timeboost/lane"
	"github.com/meterio/timeboost/state"
	"github.com/meterio/timeboost/xenv"
)

var (
	log = slog.Default().With("pkg", "auction")
)

// LeaderPublisher receives the leadership decision of every resolved round.
// PublishLeader runs inside the resolution transaction, so a failing
// publisher aborts resolution as a whole. A zero leader address announces a
// vacant round.
type LeaderPublisher interface {
	PublishLeader(env *xenv.Environment, leader lane.Address, price *big.Int) error
}

// Auction the continuous express lane auction engine. Bidding for round N+1
// is always open while round N is active; resolution is triggered externally
// by the settler.
type Auction struct {
	logger    *slog.Logger
	publisher LeaderPublisher
}

// New creates the auction engine. publisher may be nil when leadership is
// relayed out-of-band instead of pushed at resolution.
func New(publisher LeaderPublisher) *Auction {
	return &Auction{
		logger:    slog.Default().With("pkg", "auction"),
		publisher: publisher,
	}
}

// SetLeaderPublisher wires the leadership push target, resolving the
// construction cycle between engine and cache keeper.
func (a *Auction) SetLeaderPublisher(publisher LeaderPublisher) {
	a.publisher = publisher
}

// Initialize writes the administrative accounts and opens round 0.
// Called once from genesis/bootstrap.
func (a *Auction) Initialize(s *state.State, admin, settler lane.Address, now uint64) {
	a.SetAdminAddress(s, admin)
	a.SetSettlerAddress(s, settler)
	a.SetRound(s, &Round{Number: 0, StartTime: now})
	currentRoundGauge.Set(0)
}

// CurrentLeadership exposes the active round's leadership record for
// out-of-band relays and the query surface.
func (a *Auction) CurrentLeadership(s *state.State) (lane.Address, *big.Int, uint64) {
	leadership := a.GetLeadership(s)
	round := a.GetRound(s)
	return leadership.Leader, leadership.Price, round.StartTime
}

// HandleAuctionBody dispatches one decoded operation. Bid-side operations
// must originate from the declared bidder.
func (a *Auction) HandleAuctionBody(env *xenv.Environment, ab *AuctionBody) (err error) {
	a.logger.Debug("received auction op", "op", GetOpName(ab.Opcode), "body", ab.ToString())
	switch ab.Opcode {
	case OP_DEPOSIT:
		if env.Origin() != ab.Bidder {
			return ErrBidderMismatch
		}
		err = a.DepositCollateral(env, ab.Amount)

	case OP_WITHDRAW:
		if env.Origin() != ab.Bidder {
			return ErrBidderMismatch
		}
		err = a.WithdrawCollateral(env, ab.Amount)

	case OP_BID:
		if env.Origin() != ab.Bidder {
			return ErrBidderMismatch
		}
		err = a.Bid(env, ab.Amount)

	case OP_RESOLVE:
		err = a.ResolveRound(env)

	default:
		a.logger.Error("unknown Opcode", "Opcode", ab.Opcode)
		return errUnknownOpcode
	}
	if err != nil {
		env.SetReturnData([]byte(err.Error()))
	}
	return
}
