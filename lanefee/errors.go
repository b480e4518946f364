// Copyright (c) 2020 The Meter.io developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package lanefee

import "errors"

var (
	ErrOnlyAuctionCanUpdateLeader = errors.New("only the auction engine may update the leader")
	ErrFeeOutOfRange              = errors.New("fee outside allowed range")
	ErrNoFeesToWithdraw           = errors.New("no fees to withdraw")
	ErrTransferFailed             = errors.New("fee transfer failed")
	ErrUnknownToken               = errors.New("unknown token kind")
	ErrNoLeadershipSource         = errors.New("no leadership source configured")
)
