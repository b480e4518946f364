// Copyright (c) 2020 The Meter.io developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package lanefee

import (
	"math/big"

	"github.com/meterio/timeboost/lane"
	"github.com/meterio/timeboost/xenv"
)

// SetFee records the caller's fee preference, bounded to
// [MinLaneFee, MaxLaneFee]. When the caller is the currently active cached
// leader, the cached fee follows immediately, so a leader can adjust its
// rate mid-round.
func (k *Keeper) SetFee(env *xenv.Environment, fee *big.Int) error {
	if fee == nil || fee.Cmp(lane.MinLaneFee) < 0 || fee.Cmp(lane.MaxLaneFee) > 0 {
		return ErrFeeOutOfRange
	}

	s := env.State()
	k.SetFeePreference(s, env.Origin(), fee)

	cache := k.GetCachedLeadership(s)
	if cache.ActiveAt(env.Now()) && cache.Leader == env.Origin() {
		cache.Fee = new(big.Int).Set(fee)
		k.SetCachedLeadership(s, cache)
		k.logger.Info("active leader fee updated", "leader", env.Origin(), "fee", fee.String())
	}
	return nil
}

// AccrueFee runs after an operation executed. While a leader is active it
// takes the lane fee out of the operation's output-side flow: the fee amount
// moves from payer into the fee vault and is credited to the leader's
// accrual ledger for the output token. With no active leader this is a
// silent no-op, the default-fee regime has no beneficiary.
func (k *Keeper) AccrueFee(env *xenv.Environment, payer lane.Address, dir FlowDirection, nativeAmount, govAmount *big.Int) (*big.Int, error) {
	s := env.State()
	cache := k.GetCachedLeadership(s)
	if !cache.ActiveAt(env.Now()) {
		return &big.Int{}, nil
	}

	var outAmount *big.Int
	switch dir {
	case FlowNativeToGov:
		outAmount = govAmount
	case FlowGovToNative:
		outAmount = nativeAmount
	default:
		return nil, ErrUnknownToken
	}
	token := dir.OutputToken()

	feeAmount := new(big.Int).Mul(outAmount, cache.Fee)
	feeAmount = feeAmount.Div(feeAmount, new(big.Int).SetUint64(lane.FeeDenominator))
	if feeAmount.Sign() == 0 {
		// floored to dust, report the same zero a no-op returns
		return &big.Int{}, nil
	}

	checkpoint := s.NewCheckpoint()
	var err error
	if token == lane.TokenNative {
		err = env.TransferNative(payer, lane.LaneFeeVaultAddr, feeAmount)
	} else {
		err = env.TransferGov(payer, lane.LaneFeeVaultAddr, feeAmount)
	}
	if err != nil {
		k.logger.Info("fee accrual transfer failed", "payer", payer, "amount", feeAmount, "err", err)
		s.RevertTo(checkpoint)
		return nil, ErrTransferFailed
	}

	accrued := k.GetAccruedFees(s, cache.Leader, token)
	k.SetAccruedFees(s, cache.Leader, token, new(big.Int).Add(accrued, feeAmount))
	feesAccruedCounter.Inc()
	return feeAmount, nil
}

// WithdrawFees pays out the caller's entire accrued balance for one token,
// there is no partial withdrawal. The ledger entry is zeroed before value
// moves out; a failed transfer rolls the zeroing back.
func (k *Keeper) WithdrawFees(env *xenv.Environment, token byte) (err error) {
	if token != lane.TokenNative && token != lane.TokenGov {
		return ErrUnknownToken
	}

	s := env.State()
	accrued := k.GetAccruedFees(s, env.Origin(), token)
	if accrued.Sign() == 0 {
		return ErrNoFeesToWithdraw
	}

	checkpoint := s.NewCheckpoint()
	k.SetAccruedFees(s, env.Origin(), token, &big.Int{})

	if token == lane.TokenNative {
		err = env.TransferNative(lane.LaneFeeVaultAddr, env.Origin(), accrued)
	} else {
		err = env.TransferGov(lane.LaneFeeVaultAddr, env.Origin(), accrued)
	}
	if err != nil {
		k.logger.Error("fee withdrawal transfer failed", "recipient", env.Origin(), "amount", accrued, "err", err)
		s.RevertTo(checkpoint)
		return ErrTransferFailed
	}
	k.logger.Info("fees withdrawn", "recipient", env.Origin(), "token", lane.TokenName(token), "amount", accrued.String())
	return nil
}
