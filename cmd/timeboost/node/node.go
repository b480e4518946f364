// Copyright (c) 2020 The Meter.io developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package node

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/meterio/timeboost/auction"
	"github.com/meterio/timeboost/lane"
	"github.com/meterio/timeboost/lanefee"
	"github.com/meterio/timeboost/state"
	"github.com/meterio/timeboost/xenv"
)

// Node the operator shell around the module state: it owns the state
// instance, serializes access between the settlement loop and the query
// surface, and plays the external scheduler that triggers round resolution.
type Node struct {
	mu sync.RWMutex

	st      *state.State
	engine  *auction.Auction
	keeper  *lanefee.Keeper
	settler lane.Address
	nonce   uint64

	logger *slog.Logger
}

func New(st *state.State, engine *auction.Auction, keeper *lanefee.Keeper, settler lane.Address) *Node {
	return &Node{
		st:      st,
		engine:  engine,
		keeper:  keeper,
		settler: settler,
		logger:  slog.Default().With("pkg", "node"),
	}
}

func (n *Node) Engine() *auction.Auction { return n.engine }
func (n *Node) Keeper() *lanefee.Keeper  { return n.keeper }

// WithState runs fn with read access to the state, serialized against the
// settlement loop.
func (n *Node) WithState(fn func(s *state.State)) {
	n.mu.RLock()
	defer n.mu.RUnlock()
	fn(n.st)
}

func (n *Node) Now() uint64 {
	return uint64(time.Now().Unix())
}

// RunSettlementLoop polls resolution roughly once per round duration slice.
// Early calls fail clean with ErrRoundStillActive and are retried on the
// next tick; an authorization failure is fatal, retrying it is futile.
func (n *Node) RunSettlementLoop(ctx context.Context, interval time.Duration) error {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			if err := n.tryResolve(); err != nil {
				if errors.Is(err, auction.ErrRoundStillActive) {
					n.logger.Debug("round still active, waiting")
					continue
				}
				if errors.Is(err, auction.ErrNotSettler) {
					n.logger.Error("settler not authorized, stopping settlement loop")
					return err
				}
				n.logger.Warn("round resolution failed", "err", err)
			}
		}
	}
}

func (n *Node) tryResolve() error {
	n.mu.Lock()
	defer n.mu.Unlock()

	n.nonce++
	env := xenv.New(n.st, &xenv.TransactionContext{
		Origin: n.settler,
		Time:   n.Now(),
		Nonce:  n.nonce,
	})
	return n.engine.ResolveRound(env)
}
