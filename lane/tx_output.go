// Copyright (c) 2020 The Meter.io developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package lane

import (
	"math/big"
)

// Transfer token transfer produced by an operation, recorded for observers.
type Transfer struct {
	Sender    Address
	Recipient Address
	Amount    *big.Int
	Token     byte
}

// Transfers slice of transfers.
type Transfers []*Transfer

// Event module event produced by an operation.
type Event struct {
	Address Address
	Topics  []Bytes32
	Data    []byte
}

// Events slice of events.
type Events []*Event
