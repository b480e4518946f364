// Copyright (c) 2020 The Meter.io developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package auction

import (
	"fmt"
	"math/big"
	"strings"

	"github.com/meterio/timeboost/lane"
)

// RoundSummary resolved-round record kept for observers. Price is what the
// winner actually paid, WinningBid is what it offered; the two differ by
// construction of the second-price rule.
type RoundSummary struct {
	Round      uint64
	Winner     lane.Address // zero address when the round had no bidder
	Price      *big.Int
	WinningBid *big.Int
	Timestamp  uint64
}

func (s *RoundSummary) ToString() string {
	return fmt.Sprintf("RoundSummary(round=%v, winner=%v, price=%v, winningBid=%v, timestamp=%v)",
		s.Round, s.Winner.AbbrevString(), s.Price.String(), s.WinningBid.String(), s.Timestamp)
}

type SummaryList struct {
	Summaries []*RoundSummary
}

func NewSummaryList(summaries []*RoundSummary) *SummaryList {
	if summaries == nil {
		summaries = make([]*RoundSummary, 0)
	}
	return &SummaryList{Summaries: summaries}
}

// Get returns the summary of the given round, nil if evicted or unknown.
func (sl *SummaryList) Get(round uint64) *RoundSummary {
	for _, s := range sl.Summaries {
		if s.Round == round {
			return s
		}
	}
	return nil
}

func (sl *SummaryList) Count() int {
	return len(sl.Summaries)
}

// Append adds a summary, evicting the oldest entries beyond MaxRoundSummaries.
func (sl *SummaryList) Append(summary *RoundSummary) {
	summaries := sl.Summaries
	if len(summaries) >= lane.MaxRoundSummaries {
		summaries = summaries[len(summaries)-lane.MaxRoundSummaries+1:]
	}
	sl.Summaries = append(summaries, summary)
}

func (sl *SummaryList) ToString() string {
	if sl == nil || len(sl.Summaries) == 0 {
		return "SummaryList (size:0)"
	}
	s := []string{fmt.Sprintf("SummaryList (size:%v) {", len(sl.Summaries))}
	for i, summary := range sl.Summaries {
		s = append(s, fmt.Sprintf("  %d.%v", i, summary.ToString()))
	}
	s = append(s, "}")
	return strings.Join(s, "\n")
}

func (sl *SummaryList) ToList() []RoundSummary {
	result := make([]RoundSummary, 0)
	for _, v := range sl.Summaries {
		result = append(result, *v)
	}
	return result
}
