// Copyright (c) 2020 The Meter.io developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package auction

import "errors"

// Exported so the settlement operator can tell a retry-later failure
// (round still active) from a futile one (not authorized).
var (
	ErrInvalidAmount                  = errors.New("amount must be positive")
	ErrInvalidRecipient               = errors.New("invalid recipient address")
	ErrInsufficientBalance            = errors.New("insufficient collateral balance")
	ErrLockedByPendingBid             = errors.New("collateral locked by pending bid")
	ErrBidTooLow                      = errors.New("bid not greater than current highest")
	ErrBidNotCovered                  = errors.New("bid exceeds collateral balance")
	ErrNotSettler                     = errors.New("caller is not the settler")
	ErrNotAdmin                       = errors.New("caller is not the admin")
	ErrRoundStillActive               = errors.New("round still active")
	ErrInsufficientCollateralForPrice = errors.New("insufficient collateral for clearing price")
	ErrNothingToWithdraw              = errors.New("nothing to withdraw")
	ErrTransferFailed                 = errors.New("value transfer failed")
	ErrBidderMismatch                 = errors.New("bidder address is not the same as transaction origin")
)

var errUnknownOpcode = errors.New("unknown auction opcode")
