// Copyright (c) 2020 The Meter.io developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package auction

import (
	"github.com/meterio/timeboost/lane"
)

// the global variables in auction
var (
	RoundKey       = lane.Blake2b([]byte("round-key"))
	BidSlateKey    = lane.Blake2b([]byte("bid-slate-key"))
	LeadershipKey  = lane.Blake2b([]byte("leadership-key"))
	RentPoolKey    = lane.Blake2b([]byte("rent-pool-key"))
	SummaryListKey = lane.Blake2b([]byte("summary-list-key"))
)

const (
	OP_DEPOSIT  = uint32(1)
	OP_WITHDRAW = uint32(2)
	OP_BID      = uint32(3)
	OP_RESOLVE  = uint32(4)
)

func GetOpName(op uint32) string {
	switch op {
	case OP_DEPOSIT:
		return "Deposit"
	case OP_WITHDRAW:
		return "Withdraw"
	case OP_BID:
		return "Bid"
	case OP_RESOLVE:
		return "Resolve"
	default:
		return "Unknown"
	}
}

// CollateralKey storage key of an account's collateral entry.
func CollateralKey(addr lane.Address) lane.Bytes32 {
	return lane.Blake2b([]byte("collateral-key"), addr.Bytes())
}
