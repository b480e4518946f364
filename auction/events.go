// Copyright (c) 2020 The Meter.io developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package auction

import (
	"math/big"

	"github.com/ethereum/go-ethereum/rlp"
	"github.com/meterio/timeboost/lane"
	"github.com/meterio/timeboost/xenv"
)

// Event topics of the auction module.
var (
	TopicBidAdmitted       = lane.Blake2b([]byte("bid-admitted"))
	TopicRoundResolved     = lane.Blake2b([]byte("round-resolved"))
	TopicLeadershipExpired = lane.Blake2b([]byte("leadership-expired"))
)

func (a *Auction) emitBidAdmitted(env *xenv.Environment, bidder lane.Address, amount *big.Int) {
	data, err := rlp.EncodeToBytes([]interface{}{bidder, amount})
	if err != nil {
		a.logger.Error("rlp encode bid-admitted failed", "err", err)
		return
	}
	env.AddEvent(lane.AuctionModuleAddr, []lane.Bytes32{TopicBidAdmitted}, data)
}

func (a *Auction) emitRoundResolved(env *xenv.Environment, summary *RoundSummary) {
	data, err := rlp.EncodeToBytes(summary)
	if err != nil {
		a.logger.Error("rlp encode round-resolved failed", "err", err)
		return
	}
	env.AddEvent(lane.AuctionModuleAddr, []lane.Bytes32{TopicRoundResolved}, data)
}

func (a *Auction) emitLeadershipExpired(env *xenv.Environment, leadership *Leadership) {
	data, err := rlp.EncodeToBytes([]interface{}{leadership.Leader, leadership.Round})
	if err != nil {
		a.logger.Error("rlp encode leadership-expired failed", "err", err)
		return
	}
	env.AddEvent(lane.AuctionModuleAddr, []lane.Bytes32{TopicLeadershipExpired}, data)
}
