// Copyright (c) 2020 The Meter.io developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package main

import (
	cli "gopkg.in/urfave/cli.v1"
)

var (
	apiAddrFlag = cli.StringFlag{
		Name:  "api-addr",
		Value: "localhost:8669",
		Usage: "API service listening address",
	}
	apiCorsFlag = cli.StringFlag{
		Name:  "api-cors",
		Value: "",
		Usage: "comma separated list of domains from which to accept cross origin requests to API",
	}
	metricsAddrFlag = cli.StringFlag{
		Name:  "metrics-addr",
		Value: "localhost:9099",
		Usage: "prometheus metrics listening address",
	}
	adminFlag = cli.StringFlag{
		Name:  "admin",
		Usage: "address of the auction administrator",
	}
	settlerFlag = cli.StringFlag{
		Name:  "settler",
		Usage: "address of the settler account driving round resolution",
	}
	settleIntervalFlag = cli.IntFlag{
		Name:  "settle-interval",
		Value: 5,
		Usage: "settlement poll interval in seconds",
	}
	verbosityFlag = cli.IntFlag{
		Name:  "verbosity",
		Value: 0,
		Usage: "log verbosity (-4:debug 0:info 4:warn 8:error)",
	}

	// mine-salt flags
	deployerFlag = cli.StringFlag{
		Name:  "deployer",
		Usage: "deployer address",
	}
	flagBitsFlag = cli.Uint64Flag{
		Name:  "flag-bits",
		Usage: "required low-order flag bits of the deployment address",
	}
	codeFlag = cli.StringFlag{
		Name:  "code",
		Usage: "deployment code in hex",
	}
	ctorArgsFlag = cli.StringFlag{
		Name:  "ctor-args",
		Value: "",
		Usage: "constructor arguments in hex",
	}
)
