// Copyright (c) 2020 The Meter.io developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package auction

import (
	"github.com/meterio/timeboost/auction"
)

type Round struct {
	Number    uint64 `json:"number"`
	StartTime uint64 `json:"startTime"`
	DueAt     uint64 `json:"dueAt"`
}

type BidSlate struct {
	Bidder       string `json:"bidder"`
	Amount       string `json:"amount"`
	SecondAmount string `json:"secondAmount"`
}

type Leadership struct {
	Leader string `json:"leader"`
	Price  string `json:"price"`
	Round  uint64 `json:"round"`
}

type Collateral struct {
	Address string `json:"address"`
	Balance string `json:"balance"`
}

type RentPool struct {
	Amount string `json:"amount"`
}

type RoundSummary struct {
	Round      uint64 `json:"round"`
	Winner     string `json:"winner"`
	Price      string `json:"price"`
	WinningBid string `json:"winningBid"`
	Timestamp  uint64 `json:"timestamp"`
}

func convertRound(r *auction.Round) *Round {
	return &Round{
		Number:    r.Number,
		StartTime: r.StartTime,
		DueAt:     r.DueAt(),
	}
}

func convertBidSlate(bs *auction.BidSlate) *BidSlate {
	return &BidSlate{
		Bidder:       bs.Bidder.String(),
		Amount:       bs.Amount.String(),
		SecondAmount: bs.SecondAmount.String(),
	}
}

func convertLeadership(l *auction.Leadership) *Leadership {
	return &Leadership{
		Leader: l.Leader.String(),
		Price:  l.Price.String(),
		Round:  l.Round,
	}
}

func convertSummary(s *auction.RoundSummary) *RoundSummary {
	return &RoundSummary{
		Round:      s.Round,
		Winner:     s.Winner.String(),
		Price:      s.Price.String(),
		WinningBid: s.WinningBid.String(),
		Timestamp:  s.Timestamp,
	}
}

func convertSummaryList(list *auction.SummaryList) []*RoundSummary {
	summaries := make([]*RoundSummary, 0)
	for _, s := range list.Summaries {
		summaries = append(summaries, convertSummary(s))
	}
	return summaries
}
