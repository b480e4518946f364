// Copyright (c) 2020 The Meter.io developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package auction_test

import (
	"math/big"
	"testing"

	"github.com/meterio/timeboost/auction"
	"github.com/meterio/timeboost/lane"
	"github.com/meterio/timeboost/state"
	"github.com/meterio/timeboost/xenv"
	"github.com/stretchr/testify/assert"
)

var (
	adminAddr   = lane.BytesToAddress([]byte("admin"))
	settlerAddr = lane.BytesToAddress([]byte("settler"))
	bidderA     = lane.BytesToAddress([]byte("bidder-a"))
	bidderB     = lane.BytesToAddress([]byte("bidder-b"))

	genesisTime = uint64(1000)
)

func newEnv(st *state.State, origin lane.Address, now uint64) *xenv.Environment {
	return xenv.New(st, &xenv.TransactionContext{Origin: origin, Time: now})
}

func setupAuction() (*auction.Auction, *state.State) {
	st := state.New()
	a := auction.New(nil)
	a.Initialize(st, adminAddr, settlerAddr, genesisTime)
	st.SetBalance(bidderA, big.NewInt(100))
	st.SetBalance(bidderB, big.NewInt(100))
	return a, st
}

func TestDepositWithdrawCollateral(t *testing.T) {
	a, st := setupAuction()

	assert.Nil(t, a.DepositCollateral(newEnv(st, bidderA, genesisTime), big.NewInt(30)))
	assert.Equal(t, big.NewInt(30), a.GetCollateral(st, bidderA))
	assert.Equal(t, big.NewInt(70), st.GetBalance(bidderA))
	assert.Equal(t, big.NewInt(30), st.GetBalance(lane.AuctionModuleAddr))

	assert.Nil(t, a.WithdrawCollateral(newEnv(st, bidderA, genesisTime), big.NewInt(10)))
	assert.Equal(t, big.NewInt(20), a.GetCollateral(st, bidderA))
	assert.Equal(t, big.NewInt(80), st.GetBalance(bidderA))

	tests := []struct {
		ret      error
		expected error
	}{
		{a.DepositCollateral(newEnv(st, bidderA, genesisTime), &big.Int{}), auction.ErrInvalidAmount},
		{a.DepositCollateral(newEnv(st, bidderA, genesisTime), nil), auction.ErrInvalidAmount},
		{a.DepositCollateral(newEnv(st, bidderA, genesisTime), big.NewInt(1000)), auction.ErrTransferFailed},
		{a.WithdrawCollateral(newEnv(st, bidderA, genesisTime), big.NewInt(25)), auction.ErrInsufficientBalance},
		{a.WithdrawCollateral(newEnv(st, bidderB, genesisTime), big.NewInt(1)), auction.ErrInsufficientBalance},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.expected, tt.ret)
	}

	// failed operations must not move value
	assert.Equal(t, big.NewInt(20), a.GetCollateral(st, bidderA))
	assert.Equal(t, big.NewInt(80), st.GetBalance(bidderA))
}

func TestBidRatchet(t *testing.T) {
	a, st := setupAuction()

	assert.Nil(t, a.DepositCollateral(newEnv(st, bidderA, genesisTime), big.NewInt(10)))
	assert.Nil(t, a.DepositCollateral(newEnv(st, bidderB, genesisTime), big.NewInt(10)))

	assert.Nil(t, a.Bid(newEnv(st, bidderA, genesisTime), big.NewInt(2)))
	slate := a.GetBidSlate(st)
	assert.Equal(t, bidderA, slate.Bidder)
	assert.Equal(t, big.NewInt(2), slate.Amount)
	assert.Equal(t, &big.Int{}, slate.SecondAmount)

	// a tie is not an improvement
	assert.Equal(t, auction.ErrBidTooLow, a.Bid(newEnv(st, bidderB, genesisTime), big.NewInt(2)))
	assert.Equal(t, auction.ErrBidTooLow, a.Bid(newEnv(st, bidderB, genesisTime), big.NewInt(1)))
	assert.Equal(t, auction.ErrInvalidAmount, a.Bid(newEnv(st, bidderB, genesisTime), &big.Int{}))
	assert.Equal(t, auction.ErrBidNotCovered, a.Bid(newEnv(st, bidderB, genesisTime), big.NewInt(11)))

	assert.Nil(t, a.Bid(newEnv(st, bidderB, genesisTime), big.NewInt(5)))
	slate = a.GetBidSlate(st)
	assert.Equal(t, bidderB, slate.Bidder)
	assert.Equal(t, big.NewInt(5), slate.Amount)
	assert.Equal(t, big.NewInt(2), slate.SecondAmount)

	// the outbid bidder must beat the new highest, not its own old bid
	assert.Equal(t, auction.ErrBidTooLow, a.Bid(newEnv(st, bidderA, genesisTime), big.NewInt(3)))
}

func TestWithdrawLockedByPendingBid(t *testing.T) {
	a, st := setupAuction()

	assert.Nil(t, a.DepositCollateral(newEnv(st, bidderA, genesisTime), big.NewInt(10)))
	assert.Nil(t, a.DepositCollateral(newEnv(st, bidderB, genesisTime), big.NewInt(10)))
	assert.Nil(t, a.Bid(newEnv(st, bidderA, genesisTime), big.NewInt(6)))

	// the highest bidder is locked against its bid amount
	assert.Equal(t, auction.ErrLockedByPendingBid, a.WithdrawCollateral(newEnv(st, bidderA, genesisTime), big.NewInt(5)))
	assert.Nil(t, a.WithdrawCollateral(newEnv(st, bidderA, genesisTime), big.NewInt(4)))
	assert.Equal(t, big.NewInt(6), a.GetCollateral(st, bidderA))

	// a non-bidder is not locked
	assert.Nil(t, a.WithdrawCollateral(newEnv(st, bidderB, genesisTime), big.NewInt(10)))

	// once outbid, the lock moves to the new highest bidder
	assert.Nil(t, a.DepositCollateral(newEnv(st, bidderB, genesisTime), big.NewInt(10)))
	assert.Nil(t, a.Bid(newEnv(st, bidderB, genesisTime), big.NewInt(7)))
	assert.Nil(t, a.WithdrawCollateral(newEnv(st, bidderA, genesisTime), big.NewInt(6)))
}

func TestSecondPriceResolution(t *testing.T) {
	a, st := setupAuction()

	assert.Nil(t, a.DepositCollateral(newEnv(st, bidderA, genesisTime), big.NewInt(10)))
	assert.Nil(t, a.DepositCollateral(newEnv(st, bidderB, genesisTime), big.NewInt(10)))
	assert.Nil(t, a.Bid(newEnv(st, bidderA, genesisTime), big.NewInt(2)))
	assert.Nil(t, a.Bid(newEnv(st, bidderB, genesisTime), big.NewInt(5)))

	resolveTime := genesisTime + lane.RoundDuration
	assert.Nil(t, a.ResolveRound(newEnv(st, settlerAddr, resolveTime)))

	round := a.GetRound(st)
	assert.Equal(t, uint64(1), round.Number)
	assert.Equal(t, resolveTime, round.StartTime)

	// winner pays the second-highest amount, not its own bid
	leadership := a.GetLeadership(st)
	assert.Equal(t, bidderB, leadership.Leader)
	assert.Equal(t, big.NewInt(2), leadership.Price)
	assert.Equal(t, uint64(1), leadership.Round)

	assert.Equal(t, big.NewInt(10), a.GetCollateral(st, bidderA))
	assert.Equal(t, big.NewInt(8), a.GetCollateral(st, bidderB))
	assert.Equal(t, big.NewInt(2), a.GetRentPool(st))
	assert.True(t, a.GetBidSlate(st).IsEmpty())

	summary := a.GetSummaryList(st).Get(1)
	assert.NotNil(t, summary)
	assert.Equal(t, bidderB, summary.Winner)
	assert.Equal(t, big.NewInt(2), summary.Price)
	assert.Equal(t, big.NewInt(5), summary.WinningBid)
}

func TestSingleBidderPaysNothing(t *testing.T) {
	a, st := setupAuction()

	assert.Nil(t, a.DepositCollateral(newEnv(st, bidderA, genesisTime), big.NewInt(10)))
	assert.Nil(t, a.Bid(newEnv(st, bidderA, genesisTime), big.NewInt(4)))

	assert.Nil(t, a.ResolveRound(newEnv(st, settlerAddr, genesisTime+lane.RoundDuration)))

	leadership := a.GetLeadership(st)
	assert.Equal(t, bidderA, leadership.Leader)
	assert.Equal(t, &big.Int{}, leadership.Price)
	assert.Equal(t, big.NewInt(10), a.GetCollateral(st, bidderA))
	assert.Equal(t, &big.Int{}, a.GetRentPool(st))
}

func TestResolveNoBids(t *testing.T) {
	a, st := setupAuction()

	assert.Nil(t, a.ResolveRound(newEnv(st, settlerAddr, genesisTime+lane.RoundDuration)))

	assert.True(t, a.GetLeadership(st).IsVacant())
	summary := a.GetSummaryList(st).Get(1)
	assert.NotNil(t, summary)
	assert.Equal(t, lane.ZeroAddress, summary.Winner)
	assert.Equal(t, &big.Int{}, summary.Price)
}

func TestResolveGuards(t *testing.T) {
	a, st := setupAuction()

	assert.Equal(t, auction.ErrNotSettler, a.ResolveRound(newEnv(st, bidderA, genesisTime+lane.RoundDuration)))
	assert.Equal(t, auction.ErrRoundStillActive, a.ResolveRound(newEnv(st, settlerAddr, genesisTime+lane.RoundDuration-1)))

	resolveTime := genesisTime + lane.RoundDuration
	assert.Nil(t, a.ResolveRound(newEnv(st, settlerAddr, resolveTime)))

	// the new round restarts the clock, an immediate re-resolve is early again
	assert.Equal(t, auction.ErrRoundStillActive, a.ResolveRound(newEnv(st, settlerAddr, resolveTime)))
	assert.Equal(t, uint64(1), a.GetRound(st).Number)
}

func TestResolveWinnerCannotCoverPrice(t *testing.T) {
	a, st := setupAuction()

	assert.Nil(t, a.DepositCollateral(newEnv(st, bidderA, genesisTime), big.NewInt(10)))
	assert.Nil(t, a.DepositCollateral(newEnv(st, bidderB, genesisTime), big.NewInt(10)))
	assert.Nil(t, a.Bid(newEnv(st, bidderA, genesisTime), big.NewInt(5)))
	assert.Nil(t, a.Bid(newEnv(st, bidderB, genesisTime), big.NewInt(7)))

	// simulate collateral drained below the clearing price through a side
	// channel the withdrawal lock does not see
	a.SetCollateral(st, bidderB, big.NewInt(1))

	err := a.ResolveRound(newEnv(st, settlerAddr, genesisTime+lane.RoundDuration))
	assert.Equal(t, auction.ErrInsufficientCollateralForPrice, err)

	// resolution aborts wholesale
	assert.Equal(t, uint64(0), a.GetRound(st).Number)
	assert.Equal(t, bidderB, a.GetBidSlate(st).Bidder)
	assert.Equal(t, &big.Int{}, a.GetRentPool(st))
}

type failingPublisher struct{ err error }

func (p *failingPublisher) PublishLeader(env *xenv.Environment, leader lane.Address, price *big.Int) error {
	return p.err
}

func TestResolveRevertsOnPublishFailure(t *testing.T) {
	a, st := setupAuction()
	publishErr := assert.AnError
	a.SetLeaderPublisher(&failingPublisher{err: publishErr})

	assert.Nil(t, a.DepositCollateral(newEnv(st, bidderA, genesisTime), big.NewInt(10)))
	assert.Nil(t, a.Bid(newEnv(st, bidderA, genesisTime), big.NewInt(4)))

	err := a.ResolveRound(newEnv(st, settlerAddr, genesisTime+lane.RoundDuration))
	assert.Equal(t, publishErr, err)

	// settlement and leadership propagation are atomic
	assert.Equal(t, uint64(0), a.GetRound(st).Number)
	assert.True(t, a.GetLeadership(st).IsVacant())
	assert.Equal(t, bidderA, a.GetBidSlate(st).Bidder)
}

func TestCollateralConservation(t *testing.T) {
	a, st := setupAuction()

	total := func() *big.Int {
		sum := new(big.Int).Add(st.GetBalance(bidderA), st.GetBalance(bidderB))
		return sum.Add(sum, st.GetBalance(lane.AuctionModuleAddr))
	}
	before := total()

	assert.Nil(t, a.DepositCollateral(newEnv(st, bidderA, genesisTime), big.NewInt(10)))
	assert.Nil(t, a.DepositCollateral(newEnv(st, bidderB, genesisTime), big.NewInt(10)))
	assert.Nil(t, a.Bid(newEnv(st, bidderA, genesisTime), big.NewInt(3)))
	assert.Nil(t, a.Bid(newEnv(st, bidderB, genesisTime), big.NewInt(6)))
	assert.Nil(t, a.ResolveRound(newEnv(st, settlerAddr, genesisTime+lane.RoundDuration)))
	assert.Nil(t, a.WithdrawCollateral(newEnv(st, bidderA, genesisTime+lane.RoundDuration), big.NewInt(10)))

	assert.Equal(t, before, total())

	// module funds fully account for collateral plus rent pool
	held := new(big.Int).Add(a.GetCollateral(st, bidderA), a.GetCollateral(st, bidderB))
	held.Add(held, a.GetRentPool(st))
	assert.Equal(t, st.GetBalance(lane.AuctionModuleAddr), held)
}

func TestSetSettler(t *testing.T) {
	a, st := setupAuction()

	assert.Equal(t, auction.ErrNotAdmin, a.SetSettler(newEnv(st, bidderA, genesisTime), bidderA))
	assert.Equal(t, auction.ErrInvalidRecipient, a.SetSettler(newEnv(st, adminAddr, genesisTime), lane.ZeroAddress))

	assert.Nil(t, a.SetSettler(newEnv(st, adminAddr, genesisTime), bidderB))
	assert.Equal(t, bidderB, a.GetSettler(st))

	// the old settler lost its authority
	assert.Equal(t, auction.ErrNotSettler, a.ResolveRound(newEnv(st, settlerAddr, genesisTime+lane.RoundDuration)))
	assert.Nil(t, a.ResolveRound(newEnv(st, bidderB, genesisTime+lane.RoundDuration)))
}

func TestWithdrawRentPool(t *testing.T) {
	a, st := setupAuction()

	assert.Nil(t, a.DepositCollateral(newEnv(st, bidderA, genesisTime), big.NewInt(10)))
	assert.Nil(t, a.DepositCollateral(newEnv(st, bidderB, genesisTime), big.NewInt(10)))
	assert.Nil(t, a.Bid(newEnv(st, bidderA, genesisTime), big.NewInt(2)))
	assert.Nil(t, a.Bid(newEnv(st, bidderB, genesisTime), big.NewInt(5)))
	assert.Nil(t, a.ResolveRound(newEnv(st, settlerAddr, genesisTime+lane.RoundDuration)))

	recipient := lane.BytesToAddress([]byte("treasury"))

	assert.Equal(t, auction.ErrNotAdmin, a.WithdrawRentPool(newEnv(st, bidderA, genesisTime), recipient))
	assert.Equal(t, auction.ErrInvalidRecipient, a.WithdrawRentPool(newEnv(st, adminAddr, genesisTime), lane.ZeroAddress))

	assert.Nil(t, a.WithdrawRentPool(newEnv(st, adminAddr, genesisTime), recipient))
	assert.Equal(t, big.NewInt(2), st.GetBalance(recipient))
	assert.Equal(t, &big.Int{}, a.GetRentPool(st))

	assert.Equal(t, auction.ErrNothingToWithdraw, a.WithdrawRentPool(newEnv(st, adminAddr, genesisTime), recipient))
}

func TestSummaryListBounded(t *testing.T) {
	a, st := setupAuction()

	rounds := lane.MaxRoundSummaries + 4
	now := genesisTime
	for i := 0; i < rounds; i++ {
		now += lane.RoundDuration
		assert.Nil(t, a.ResolveRound(newEnv(st, settlerAddr, now)))
	}

	list := a.GetSummaryList(st)
	assert.Equal(t, lane.MaxRoundSummaries, list.Count())
	assert.Nil(t, list.Get(1))
	assert.NotNil(t, list.Get(uint64(rounds)))
	assert.NotNil(t, list.Get(uint64(rounds-lane.MaxRoundSummaries+1)))
}

func TestHandleAuctionBody(t *testing.T) {
	a, st := setupAuction()

	env := newEnv(st, bidderA, genesisTime)
	err := a.HandleAuctionBody(env, &auction.AuctionBody{
		Opcode: auction.OP_DEPOSIT,
		Bidder: bidderB,
		Amount: big.NewInt(10),
	})
	assert.Equal(t, auction.ErrBidderMismatch, err)

	env = newEnv(st, bidderA, genesisTime)
	assert.Nil(t, a.HandleAuctionBody(env, &auction.AuctionBody{
		Opcode: auction.OP_DEPOSIT,
		Bidder: bidderA,
		Amount: big.NewInt(10),
	}))
	assert.Equal(t, big.NewInt(10), a.GetCollateral(st, bidderA))

	env = newEnv(st, bidderA, genesisTime)
	err = a.HandleAuctionBody(env, &auction.AuctionBody{
		Opcode: auction.OP_BID,
		Bidder: bidderA,
		Amount: big.NewInt(20),
	})
	assert.Equal(t, auction.ErrBidNotCovered, err)
	assert.Equal(t, []byte(err.Error()), env.ReturnData())

	env = newEnv(st, bidderA, genesisTime)
	assert.NotNil(t, a.HandleAuctionBody(env, &auction.AuctionBody{Opcode: 0x99, Bidder: bidderA}))
}

func TestAuctionBodyCodec(t *testing.T) {
	body := &auction.AuctionBody{
		Opcode:    auction.OP_BID,
		Version:   1,
		Bidder:    bidderA,
		Amount:    big.NewInt(42),
		Timestamp: genesisTime,
		Nonce:     7,
	}
	raw := auction.AuctionEncodeBytes(body)
	assert.NotEmpty(t, raw)

	decoded, err := auction.AuctionDecodeFromBytes(raw)
	assert.Nil(t, err)
	assert.Equal(t, body, decoded)
}
