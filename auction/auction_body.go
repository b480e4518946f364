// Copyright (c) 2020 The Meter.io developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package auction

import (
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/rlp"
	"github.com/meterio/timeboost/lane"
)

// AuctionBody the wire form of one auction operation as delivered by the
// host chain.
type AuctionBody struct {
	Opcode    uint32
	Version   uint32
	Bidder    lane.Address
	Amount    *big.Int
	Timestamp uint64
	Nonce     uint64
}

func (ab *AuctionBody) ToString() string {
	return fmt.Sprintf("AuctionBody: Opcode=%v, Version=%v, Bidder=%v, Amount=%v, Timestamp=%v, Nonce=%v",
		ab.Opcode, ab.Version, ab.Bidder.String(), ab.Amount.String(), ab.Timestamp, ab.Nonce)
}

func (ab *AuctionBody) String() string {
	return ab.ToString()
}

func AuctionEncodeBytes(ab *AuctionBody) []byte {
	auctionBytes, err := rlp.EncodeToBytes(ab)
	if err != nil {
		log.Error("rlp encode failed", "error", err)
		return []byte{}
	}
	return auctionBytes
}

func AuctionDecodeFromBytes(bytes []byte) (*AuctionBody, error) {
	ab := AuctionBody{}
	err := rlp.DecodeBytes(bytes, &ab)
	return &ab, err
}
