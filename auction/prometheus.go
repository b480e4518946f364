// Copyright (c) 2020 The Meter.io developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package auction

import "github.com/prometheus/client_golang/prometheus"

var (
	currentRoundGauge = prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "auction_current_round",
		Help: "Number of the active leadership round",
	})
	leaderActiveGauge = prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "auction_leader_active",
		Help: "whether the active round has a leader (0-false, 1-true)",
	})
	rentPoolGauge = prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "auction_rent_pool",
		Help: "Accumulated rent pool balance",
	})
	bidsAdmittedCounter = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "auction_bids_admitted_total",
		Help: "Counter of admitted bids",
	})
	roundsResolvedCounter = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "auction_rounds_resolved_total",
		Help: "Counter of resolved rounds",
	})
)

func init() {
	prometheus.MustRegister(currentRoundGauge)
	prometheus.MustRegister(leaderActiveGauge)
	prometheus.MustRegister(rentPoolGauge)
	prometheus.MustRegister(bidsAdmittedCounter)
	prometheus.MustRegister(roundsResolvedCounter)
}
