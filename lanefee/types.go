// Copyright (c) 2020 The Meter.io developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package lanefee

import (
	"fmt"
	"math/big"

	"github.com/meterio/timeboost/lane"
)

// CachedLeadership the locally held copy of the auction's leadership
// decision. Valid while now < StartTime + RoundDuration; after that it is
// logically expired even though the stored value stays until next refresh.
type CachedLeadership struct {
	Leader    lane.Address
	StartTime uint64
	Fee       *big.Int // effective lane fee in basis points
}

func newCachedLeadership() *CachedLeadership {
	return &CachedLeadership{
		Leader: lane.ZeroAddress,
		Fee:    &big.Int{},
	}
}

// IsVacant returns whether no leader is cached at all.
func (c *CachedLeadership) IsVacant() bool {
	return c.Leader.IsZero()
}

// ActiveAt returns whether the cached leader is still valid at the given
// time. This is the hot-path predicate: one comparison against a cached
// timestamp, no call back into the auction.
func (c *CachedLeadership) ActiveAt(now uint64) bool {
	return !c.IsVacant() && now < c.StartTime+lane.RoundDuration
}

func (c *CachedLeadership) ToString() string {
	return fmt.Sprintf("CachedLeadership(leader=%v, startTime=%v, fee=%v)",
		c.Leader.AbbrevString(), c.StartTime, c.Fee.String())
}

// FlowDirection tags which side of a two-legged operation is the fee output.
// Accrual never infers the direction from amount signs.
type FlowDirection byte

const (
	FlowNativeToGov = FlowDirection(0)
	FlowGovToNative = FlowDirection(1)
)

func (d FlowDirection) String() string {
	switch d {
	case FlowNativeToGov:
		return "native->gov"
	case FlowGovToNative:
		return "gov->native"
	default:
		return "unknown"
	}
}

// OutputToken returns the token kind fees are denominated in for this
// direction.
func (d FlowDirection) OutputToken() byte {
	if d == FlowNativeToGov {
		return lane.TokenGov
	}
	return lane.TokenNative
}
