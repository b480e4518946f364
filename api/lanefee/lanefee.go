// Copyright (c) 2020 The Meter.io developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package lanefee

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/meterio/timeboost/api/utils"
	"github.com/meterio/timeboost/lane"
	"github.com/meterio/timeboost/lanefee"
	"github.com/meterio/timeboost/state"
)

// Backend the node-side surface the lane fee API reads through.
type Backend interface {
	Keeper() *lanefee.Keeper
	WithState(fn func(s *state.State))
	Now() uint64
}

type LaneFee struct {
	backend Backend
}

type LeaderStatus struct {
	Leader    string `json:"leader"`
	Active    bool   `json:"active"`
	Fee       string `json:"fee"`
	Remaining uint64 `json:"remaining"`
}

type AccruedFees struct {
	Address string `json:"address"`
	Native  string `json:"native"`
	Gov     string `json:"gov"`
}

func New(backend Backend) *LaneFee {
	return &LaneFee{backend: backend}
}

func (lf *LaneFee) handleGetLeader(w http.ResponseWriter, req *http.Request) error {
	var status *LeaderStatus
	now := lf.backend.Now()
	lf.backend.WithState(func(s *state.State) {
		leader, fee, remaining := lf.backend.Keeper().LeaderStatus(s, now)
		status = &LeaderStatus{
			Leader:    leader.String(),
			Active:    !leader.IsZero(),
			Fee:       fee.String(),
			Remaining: remaining,
		}
	})
	return utils.WriteJSON(w, status)
}

func (lf *LaneFee) handleGetAccrued(w http.ResponseWriter, req *http.Request) error {
	addr, err := lane.ParseAddress(mux.Vars(req)["address"])
	if err != nil {
		return utils.BadRequest(err)
	}
	var accrued *AccruedFees
	lf.backend.WithState(func(s *state.State) {
		accrued = &AccruedFees{
			Address: addr.String(),
			Native:  lf.backend.Keeper().GetAccruedFees(s, addr, lane.TokenNative).String(),
			Gov:     lf.backend.Keeper().GetAccruedFees(s, addr, lane.TokenGov).String(),
		}
	})
	return utils.WriteJSON(w, accrued)
}

func (lf *LaneFee) Mount(root *mux.Router, pathPrefix string) {
	sub := root.PathPrefix(pathPrefix).Subrouter()
	sub.Path("/leader").Methods("GET").HandlerFunc(utils.WrapHandlerFunc(lf.handleGetLeader))
	sub.Path("/accrued/{address}").Methods("GET").HandlerFunc(utils.WrapHandlerFunc(lf.handleGetAccrued))
}
