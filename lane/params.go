// Copyright (c) 2020 The Meter.io developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package lane

import (
	"math/big"
)

// Constants of the express lane protocol.
const (
	// RoundDuration is the length of one leadership round. Bidding for the
	// next round stays open for the whole of the current one.
	RoundDuration uint64 = 60

	// SaltSearchBound caps the deployment salt search, deterministic failure
	// beyond this point.
	SaltSearchBound uint64 = 100000

	// MaxRoundSummaries bounds the resolved-round history kept in state.
	MaxRoundSummaries = 32

	// FeeDenominator converts a basis-point lane fee into an amount.
	FeeDenominator uint64 = 10000
)

// Token kinds tracked by the lane fee ledger.
const (
	TokenNative byte = byte(0)
	TokenGov    byte = byte(1)
)

// Lane fee bounds, in basis points.
var (
	DefaultLaneFee = big.NewInt(25)
	MinLaneFee     = big.NewInt(1)
	MaxLaneFee     = big.NewInt(500)
)

// Module account addresses.
var (
	// AuctionModuleAddr holds bidder collateral and the rent pool.
	AuctionModuleAddr = BytesToAddress([]byte("timeboost-auction-address"))
	// LaneFeeVaultAddr custodies accrued, unclaimed lane fees.
	LaneFeeVaultAddr = BytesToAddress([]byte("lane-fee-vault-address"))
	// ZeroAddress marks the absence of a leader.
	ZeroAddress = BytesToAddress([]byte{})
)

// Keys of governance params.
var (
	KeySettlerAddress = BytesToBytes32([]byte("settler-address"))
	KeyAdminAddress   = BytesToBytes32([]byte("admin-address"))
)

func TokenName(token byte) string {
	switch token {
	case TokenNative:
		return "native"
	case TokenGov:
		return "gov"
	default:
		return "unknown"
	}
}
