// Copyright (c) 2020 The Meter.io developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package auction

import (
	"fmt"
	"math/big"

	"github.com/meterio/timeboost/lane"
)

// BidSlate the single pending bid slate for the next round. There is no
// order book, only a running best-of-two: every admitted bid pushes the old
// highest amount down to SecondAmount.
type BidSlate struct {
	Bidder       lane.Address
	Amount       *big.Int
	SecondAmount *big.Int
}

func newBidSlate() *BidSlate {
	return &BidSlate{
		Bidder:       lane.ZeroAddress,
		Amount:       &big.Int{},
		SecondAmount: &big.Int{},
	}
}

// IsEmpty returns whether no bid has been admitted for the next round.
func (bs *BidSlate) IsEmpty() bool {
	return bs.Bidder.IsZero()
}

func (bs *BidSlate) ToString() string {
	return fmt.Sprintf("BidSlate(bidder=%v, amount=%v, second=%v)",
		bs.Bidder.AbbrevString(), bs.Amount.String(), bs.SecondAmount.String())
}

// Round the active leadership epoch. A round is open for resolution once
// RoundDuration has elapsed since StartTime.
type Round struct {
	Number    uint64
	StartTime uint64
}

func (r *Round) DueAt() uint64 {
	return r.StartTime + lane.RoundDuration
}

func (r *Round) ToString() string {
	return fmt.Sprintf("Round(number=%v, startTime=%v)", r.Number, r.StartTime)
}

// Leadership the leadership record of the active round, set only by round
// resolution. Price is the second-highest bid at resolution time.
type Leadership struct {
	Leader lane.Address
	Price  *big.Int
	Round  uint64
}

func newLeadership() *Leadership {
	return &Leadership{
		Leader: lane.ZeroAddress,
		Price:  &big.Int{},
	}
}

// IsVacant returns whether the active round has no leader.
func (l *Leadership) IsVacant() bool {
	return l.Leader.IsZero()
}

func (l *Leadership) ToString() string {
	return fmt.Sprintf("Leadership(leader=%v, price=%v, round=%v)",
		l.Leader.AbbrevString(), l.Price.String(), l.Round)
}
