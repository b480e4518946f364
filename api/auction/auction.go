// Copyright (c) 2020 The Meter.io developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package auction

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	lru "github.com/hashicorp/golang-lru"
	"github.com/meterio/timeboost/api/utils"
	"github.com/meterio/timeboost/auction"
	"github.com/meterio/timeboost/lane"
	"github.com/meterio/timeboost/state"
)

// Backend the node-side surface the auction API reads through. WithState
// must serialize reads against the settlement loop.
type Backend interface {
	Engine() *auction.Auction
	WithState(fn func(s *state.State))
}

type Auction struct {
	backend Backend

	// resolved rounds never change, cache converted summaries
	summaryCache *lru.Cache
}

func New(backend Backend) *Auction {
	cache, err := lru.New(256)
	if err != nil {
		panic(err)
	}
	return &Auction{
		backend:      backend,
		summaryCache: cache,
	}
}

func (at *Auction) handleGetRound(w http.ResponseWriter, req *http.Request) error {
	var round *Round
	at.backend.WithState(func(s *state.State) {
		round = convertRound(at.backend.Engine().GetRound(s))
	})
	return utils.WriteJSON(w, round)
}

func (at *Auction) handleGetSlate(w http.ResponseWriter, req *http.Request) error {
	var slate *BidSlate
	at.backend.WithState(func(s *state.State) {
		slate = convertBidSlate(at.backend.Engine().GetBidSlate(s))
	})
	return utils.WriteJSON(w, slate)
}

func (at *Auction) handleGetLeadership(w http.ResponseWriter, req *http.Request) error {
	var leadership *Leadership
	at.backend.WithState(func(s *state.State) {
		leadership = convertLeadership(at.backend.Engine().GetLeadership(s))
	})
	return utils.WriteJSON(w, leadership)
}

func (at *Auction) handleGetRentPool(w http.ResponseWriter, req *http.Request) error {
	var pool *RentPool
	at.backend.WithState(func(s *state.State) {
		pool = &RentPool{Amount: at.backend.Engine().GetRentPool(s).String()}
	})
	return utils.WriteJSON(w, pool)
}

func (at *Auction) handleGetCollateral(w http.ResponseWriter, req *http.Request) error {
	addr, err := lane.ParseAddress(mux.Vars(req)["address"])
	if err != nil {
		return utils.BadRequest(err)
	}
	var collateral *Collateral
	at.backend.WithState(func(s *state.State) {
		collateral = &Collateral{
			Address: addr.String(),
			Balance: at.backend.Engine().GetCollateral(s, addr).String(),
		}
	})
	return utils.WriteJSON(w, collateral)
}

func (at *Auction) handleGetSummaries(w http.ResponseWriter, req *http.Request) error {
	var summaries []*RoundSummary
	at.backend.WithState(func(s *state.State) {
		summaries = convertSummaryList(at.backend.Engine().GetSummaryList(s))
	})
	return utils.WriteJSON(w, summaries)
}

func (at *Auction) handleGetSummaryByRound(w http.ResponseWriter, req *http.Request) error {
	round, err := strconv.ParseUint(mux.Vars(req)["round"], 10, 64)
	if err != nil {
		return utils.BadRequest(err)
	}

	if cached, ok := at.summaryCache.Get(round); ok {
		return utils.WriteJSON(w, cached)
	}

	var summary *RoundSummary
	at.backend.WithState(func(s *state.State) {
		if found := at.backend.Engine().GetSummaryList(s).Get(round); found != nil {
			summary = convertSummary(found)
		}
	})
	if summary == nil {
		return utils.NotFound(errors.New("no summary for round"))
	}
	at.summaryCache.Add(round, summary)
	return utils.WriteJSON(w, summary)
}

func (at *Auction) Mount(root *mux.Router, pathPrefix string) {
	sub := root.PathPrefix(pathPrefix).Subrouter()
	sub.Path("/round").Methods("GET").HandlerFunc(utils.WrapHandlerFunc(at.handleGetRound))
	sub.Path("/slate").Methods("GET").HandlerFunc(utils.WrapHandlerFunc(at.handleGetSlate))
	sub.Path("/leadership").Methods("GET").HandlerFunc(utils.WrapHandlerFunc(at.handleGetLeadership))
	sub.Path("/rentpool").Methods("GET").HandlerFunc(utils.WrapHandlerFunc(at.handleGetRentPool))
	sub.Path("/collateral/{address}").Methods("GET").HandlerFunc(utils.WrapHandlerFunc(at.handleGetCollateral))
	sub.Path("/summaries").Methods("GET").HandlerFunc(utils.WrapHandlerFunc(at.handleGetSummaries))
	sub.Path("/summaries/{round}").Methods("GET").HandlerFunc(utils.WrapHandlerFunc(at.handleGetSummaryByRound))
}
