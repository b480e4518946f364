// Copyright (c) 2020 The Meter.io developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package auction

import (
	"math/big"

	"github.com/ethereum/go-ethereum/rlp"
	"github.com/meterio/timeboost/lane"
	"github.com/meterio/timeboost/state"
)

// storage binder of the auction module, everything lives under
// lane.AuctionModuleAddr.

func (a *Auction) GetRound(s *state.State) (round *Round) {
	s.DecodeStorage(lane.AuctionModuleAddr, RoundKey, func(raw []byte) error {
		if len(raw) == 0 {
			round = &Round{}
			return nil
		}
		round = &Round{}
		return rlp.DecodeBytes(raw, round)
	})
	return
}

func (a *Auction) SetRound(s *state.State, round *Round) {
	s.EncodeStorage(lane.AuctionModuleAddr, RoundKey, func() ([]byte, error) {
		return rlp.EncodeToBytes(round)
	})
}

func (a *Auction) GetBidSlate(s *state.State) (slate *BidSlate) {
	s.DecodeStorage(lane.AuctionModuleAddr, BidSlateKey, func(raw []byte) error {
		if len(raw) == 0 {
			slate = newBidSlate()
			return nil
		}
		slate = &BidSlate{}
		return rlp.DecodeBytes(raw, slate)
	})
	return
}

func (a *Auction) SetBidSlate(s *state.State, slate *BidSlate) {
	s.EncodeStorage(lane.AuctionModuleAddr, BidSlateKey, func() ([]byte, error) {
		if slate.IsEmpty() {
			return nil, nil
		}
		return rlp.EncodeToBytes(slate)
	})
}

func (a *Auction) GetLeadership(s *state.State) (leadership *Leadership) {
	s.DecodeStorage(lane.AuctionModuleAddr, LeadershipKey, func(raw []byte) error {
		if len(raw) == 0 {
			leadership = newLeadership()
			return nil
		}
		leadership = &Leadership{}
		return rlp.DecodeBytes(raw, leadership)
	})
	return
}

func (a *Auction) SetLeadership(s *state.State, leadership *Leadership) {
	s.EncodeStorage(lane.AuctionModuleAddr, LeadershipKey, func() ([]byte, error) {
		if leadership.IsVacant() {
			return nil, nil
		}
		return rlp.EncodeToBytes(leadership)
	})
}

func (a *Auction) GetCollateral(s *state.State, addr lane.Address) (amount *big.Int) {
	s.DecodeStorage(lane.AuctionModuleAddr, CollateralKey(addr), func(raw []byte) error {
		if len(raw) == 0 {
			amount = &big.Int{}
			return nil
		}
		return rlp.DecodeBytes(raw, &amount)
	})
	return
}

func (a *Auction) SetCollateral(s *state.State, addr lane.Address, amount *big.Int) {
	s.EncodeStorage(lane.AuctionModuleAddr, CollateralKey(addr), func() ([]byte, error) {
		if amount.Sign() == 0 {
			return nil, nil
		}
		return rlp.EncodeToBytes(amount)
	})
}

func (a *Auction) GetRentPool(s *state.State) (amount *big.Int) {
	s.DecodeStorage(lane.AuctionModuleAddr, RentPoolKey, func(raw []byte) error {
		if len(raw) == 0 {
			amount = &big.Int{}
			return nil
		}
		return rlp.DecodeBytes(raw, &amount)
	})
	return
}

func (a *Auction) SetRentPool(s *state.State, amount *big.Int) {
	s.EncodeStorage(lane.AuctionModuleAddr, RentPoolKey, func() ([]byte, error) {
		if amount.Sign() == 0 {
			return nil, nil
		}
		return rlp.EncodeToBytes(amount)
	})
}

func (a *Auction) GetSettler(s *state.State) (addr lane.Address) {
	s.DecodeStorage(lane.AuctionModuleAddr, lane.KeySettlerAddress, func(raw []byte) error {
		if len(raw) == 0 {
			addr = lane.ZeroAddress
			return nil
		}
		return rlp.DecodeBytes(raw, &addr)
	})
	return
}

func (a *Auction) SetSettlerAddress(s *state.State, addr lane.Address) {
	s.EncodeStorage(lane.AuctionModuleAddr, lane.KeySettlerAddress, func() ([]byte, error) {
		return rlp.EncodeToBytes(addr)
	})
}

func (a *Auction) GetAdmin(s *state.State) (addr lane.Address) {
	s.DecodeStorage(lane.AuctionModuleAddr, lane.KeyAdminAddress, func(raw []byte) error {
		if len(raw) == 0 {
			addr = lane.ZeroAddress
			return nil
		}
		return rlp.DecodeBytes(raw, &addr)
	})
	return
}

func (a *Auction) SetAdminAddress(s *state.State, addr lane.Address) {
	s.EncodeStorage(lane.AuctionModuleAddr, lane.KeyAdminAddress, func() ([]byte, error) {
		return rlp.EncodeToBytes(addr)
	})
}

func (a *Auction) GetSummaryList(s *state.State) (list *SummaryList) {
	s.DecodeStorage(lane.AuctionModuleAddr, SummaryListKey, func(raw []byte) error {
		summaries := make([]*RoundSummary, 0)
		if len(raw) > 0 {
			if err := rlp.DecodeBytes(raw, &summaries); err != nil {
				return err
			}
		}
		list = NewSummaryList(summaries)
		return nil
	})
	return
}

func (a *Auction) SetSummaryList(s *state.State, list *SummaryList) {
	s.EncodeStorage(lane.AuctionModuleAddr, SummaryListKey, func() ([]byte, error) {
		if len(list.Summaries) == 0 {
			return nil, nil
		}
		return rlp.EncodeToBytes(list.Summaries)
	})
}
