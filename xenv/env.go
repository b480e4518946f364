// Copyright (c) 2020 The Meter.io developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package xenv

import (
	"errors"
	"fmt"
	"math/big"

	"github.com/meterio/timeboost/lane"
	"github.com/meterio/timeboost/state"
)

var (
	errTransferShortfall = errors.New("sender balance too low for transfer")
)

// TransactionContext transaction context.
// Time is the host chain timestamp the operation executes at; every timing
// decision inside module handlers reads it, never the wall clock.
type TransactionContext struct {
	Origin lane.Address
	Time   uint64
	Nonce  uint64
}

func (ctx *TransactionContext) String() string {
	return fmt.Sprintf("txCtx{Origin:%s Time:%d Nonce:%d}", ctx.Origin.String(), ctx.Time, ctx.Nonce)
}

// Environment an env to execute a module operation. It carries the state and
// transaction context in, and collects return data, transfers and events out.
type Environment struct {
	state *state.State
	txCtx *TransactionContext

	returnData []byte
	transfers  lane.Transfers
	events     lane.Events
}

// New create a new env.
func New(state *state.State, txCtx *TransactionContext) *Environment {
	return &Environment{
		state:      state,
		txCtx:      txCtx,
		returnData: make([]byte, 0),
		transfers:  make(lane.Transfers, 0),
		events:     make(lane.Events, 0),
	}
}

func (env *Environment) State() *state.State                     { return env.state }
func (env *Environment) TransactionContext() *TransactionContext { return env.txCtx }
func (env *Environment) Origin() lane.Address                    { return env.txCtx.Origin }
func (env *Environment) Now() uint64                             { return env.txCtx.Time }
func (env *Environment) Nonce() uint64                           { return env.txCtx.Nonce }

func (env *Environment) SetReturnData(data []byte) {
	env.returnData = data
}

func (env *Environment) ReturnData() []byte {
	if len(env.returnData) == 0 {
		return nil
	}
	return env.returnData
}

// TransferNative moves native token value between accounts and records the
// transfer. No state change happens when the sender balance falls short.
func (env *Environment) TransferNative(sender, recipient lane.Address, amount *big.Int) error {
	if amount.Sign() == 0 {
		return nil
	}
	if !env.state.SubBalance(sender, amount) {
		return errTransferShortfall
	}
	env.state.AddBalance(recipient, amount)
	env.AddTransfer(sender, recipient, amount, lane.TokenNative)
	return nil
}

// TransferGov moves gov token value between accounts and records the transfer.
func (env *Environment) TransferGov(sender, recipient lane.Address, amount *big.Int) error {
	if amount.Sign() == 0 {
		return nil
	}
	if !env.state.SubEnergy(sender, amount) {
		return errTransferShortfall
	}
	env.state.AddEnergy(recipient, amount)
	env.AddTransfer(sender, recipient, amount, lane.TokenGov)
	return nil
}

func (env *Environment) AddTransfer(sender, recipient lane.Address, amount *big.Int, token byte) {
	env.transfers = append(env.transfers, &lane.Transfer{
		Sender:    sender,
		Recipient: recipient,
		Amount:    amount,
		Token:     token,
	})
}

func (env *Environment) AddEvent(address lane.Address, topics []lane.Bytes32, data []byte) {
	env.events = append(env.events, &lane.Event{
		Address: address,
		Topics:  topics,
		Data:    data,
	})
}

func (env *Environment) Transfers() lane.Transfers {
	return env.transfers
}

func (env *Environment) Events() lane.Events {
	return env.events
}
