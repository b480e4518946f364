// Copyright (c) 2020 The Meter.io developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package lanefee

import (
	"log/slog"
	"math/big"

	"github.com/meterio/timeboost/lane"
	"github.com/meterio/timeboost/state"
)

// LeadershipSource reads the auction engine's current leadership record.
// Used by the pull/refresh path when leadership is relayed out-of-band
// instead of pushed at resolution.
type LeadershipSource interface {
	CurrentLeadership(s *state.State) (leader lane.Address, price *big.Int, startTime uint64)
}

// Keeper owns the lane fee cache and ledgers: the cached leadership record
// consulted on the hot fee path, per-account fee preferences, and the
// per-(account, token) accrual ledger. All storage lives under
// lane.LaneFeeVaultAddr.
type Keeper struct {
	logger *slog.Logger

	// auctionAddr is the fixed identity allowed to push leadership updates.
	auctionAddr lane.Address
	source      LeadershipSource
}

// New creates the keeper. source may be nil when leadership is always pushed
// by the engine directly.
func New(source LeadershipSource) *Keeper {
	return &Keeper{
		logger:      slog.Default().With("pkg", "lanefee"),
		auctionAddr: lane.AuctionModuleAddr,
		source:      source,
	}
}
