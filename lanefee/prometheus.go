// Copyright (c) 2020 The Meter.io developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package lanefee

import "github.com/prometheus/client_golang/prometheus"

var (
	feesAccruedCounter = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "lanefee_accruals_total",
		Help: "Counter of fee accrual credits to the active leader",
	})
)

func init() {
	prometheus.MustRegister(feesAccruedCounter)
}
