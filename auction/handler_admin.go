// Copyright (c) 2020 The Meter.io developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package auction

import (
	"math/big"

	"github.com/meterio/timeboost/lane"
	"github.com/meterio/timeboost/xenv"
)

// SetSettler rotates the settler account. Admin only; the settler itself
// cannot rotate its own authority.
func (a *Auction) SetSettler(env *xenv.Environment, newSettler lane.Address) error {
	if env.Origin() != a.GetAdmin(env.State()) {
		return ErrNotAdmin
	}
	if newSettler.IsZero() {
		return ErrInvalidRecipient
	}
	a.SetSettlerAddress(env.State(), newSettler)
	a.logger.Info("settler rotated", "settler", newSettler)
	return nil
}

// WithdrawRentPool pays the accumulated rent pool out to recipient.
// Admin only; bidders can read the pool but never draw from it.
func (a *Auction) WithdrawRentPool(env *xenv.Environment, recipient lane.Address) (err error) {
	s := env.State()
	if env.Origin() != a.GetAdmin(s) {
		return ErrNotAdmin
	}
	if recipient.IsZero() {
		return ErrInvalidRecipient
	}

	pool := a.GetRentPool(s)
	if pool.Sign() == 0 {
		return ErrNothingToWithdraw
	}

	checkpoint := s.NewCheckpoint()
	a.SetRentPool(s, &big.Int{})
	if err = env.TransferNative(lane.AuctionModuleAddr, recipient, pool); err != nil {
		a.logger.Error("rent pool transfer failed", "recipient", recipient, "amount", pool, "err", err)
		s.RevertTo(checkpoint)
		return ErrTransferFailed
	}
	rentPoolGauge.Set(0)
	a.logger.Info("rent pool withdrawn", "recipient", recipient, "amount", pool.String())
	return nil
}
