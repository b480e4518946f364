// Copyright (c) 2020 The Meter.io developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package main

import (
	"context"
	"encoding/hex"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/lmittmann/tint"
	"github.com/mattn/go-isatty"
	"github.com/meterio/timeboost/api"
	"github.com/meterio/timeboost/auction"
	"github.com/meterio/timeboost/cmd/timeboost/node"
	"github.com/meterio/timeboost/lane"
	"github.com/meterio/timeboost/lanefee"
	"github.com/meterio/timeboost/saltminer"
	"github.com/meterio/timeboost/state"
	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	cli "gopkg.in/urfave/cli.v1"
)

var (
	version   string
	gitCommit string
	gitTag    string
)

func fullVersion() string {
	versionMeta := "release"
	if gitTag == "" {
		versionMeta = "dev"
	}
	return fmt.Sprintf("%s-%s-%s", version, gitCommit, versionMeta)
}

func main() {
	app := cli.App{
		Version:   fullVersion(),
		Name:      "Timeboost",
		Usage:     "Express lane auction node",
		Copyright: "2020 Meter Foundation <https://meter.io/>",
		Flags: []cli.Flag{
			apiAddrFlag,
			apiCorsFlag,
			metricsAddrFlag,
			adminFlag,
			settlerFlag,
			settleIntervalFlag,
			verbosityFlag,
		},
		Action: runNode,
		Commands: []cli.Command{
			{
				Name:  "mine-salt",
				Usage: "search a deployment salt whose address carries required flag bits",
				Flags: []cli.Flag{
					deployerFlag,
					flagBitsFlag,
					codeFlag,
					ctorArgsFlag,
				},
				Action: runMineSalt,
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func initLogger(verbosity int) {
	w := os.Stdout
	slog.SetDefault(slog.New(tint.NewHandler(w, &tint.Options{
		Level:      slog.Level(verbosity),
		TimeFormat: time.Kitchen,
		NoColor:    !isatty.IsTerminal(w.Fd()),
	})))
}

func runNode(ctx *cli.Context) error {
	initLogger(ctx.Int(verbosityFlag.Name))

	admin, err := lane.ParseAddress(ctx.String(adminFlag.Name))
	if err != nil {
		return errors.Wrap(err, "parse admin address")
	}
	settler, err := lane.ParseAddress(ctx.String(settlerFlag.Name))
	if err != nil {
		return errors.Wrap(err, "parse settler address")
	}

	st := state.New()
	engine := auction.New(nil)
	keeper := lanefee.New(engine)
	engine.SetLeaderPublisher(keeper)
	engine.Initialize(st, admin, settler, uint64(time.Now().Unix()))

	n := node.New(st, engine, keeper, settler)

	apiSrv := &http.Server{
		Addr:    ctx.String(apiAddrFlag.Name),
		Handler: api.New(n, ctx.String(apiCorsFlag.Name)),
	}
	metricsSrv := &http.Server{
		Addr:    ctx.String(metricsAddrFlag.Name),
		Handler: promhttp.Handler(),
	}

	runCtx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go func() {
		slog.Info("API service started", "addr", apiSrv.Addr)
		if err := apiSrv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("API service failed", "err", err)
			cancel()
		}
	}()
	go func() {
		slog.Info("metrics service started", "addr", metricsSrv.Addr)
		if err := metricsSrv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("metrics service failed", "err", err)
			cancel()
		}
	}()

	go func() {
		sig := make(chan os.Signal, 1)
		signal.Notify(sig, os.Interrupt, syscall.SIGTERM)
		<-sig
		slog.Info("shutting down")
		cancel()
	}()

	interval := time.Duration(ctx.Int(settleIntervalFlag.Name)) * time.Second
	err = n.RunSettlementLoop(runCtx, interval)

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()
	apiSrv.Shutdown(shutdownCtx)
	metricsSrv.Shutdown(shutdownCtx)

	if err == context.Canceled {
		return nil
	}
	return err
}

func runMineSalt(ctx *cli.Context) error {
	initLogger(ctx.Int(verbosityFlag.Name))

	deployer, err := lane.ParseAddress(ctx.String(deployerFlag.Name))
	if err != nil {
		return errors.Wrap(err, "parse deployer address")
	}
	code, err := hex.DecodeString(ctx.String(codeFlag.Name))
	if err != nil {
		return errors.Wrap(err, "decode deployment code")
	}
	var ctorArgs []byte
	if arg := ctx.String(ctorArgsFlag.Name); arg != "" {
		if ctorArgs, err = hex.DecodeString(arg); err != nil {
			return errors.Wrap(err, "decode constructor args")
		}
	}

	addr, salt, err := saltminer.Find(deployer, ctx.Uint64(flagBitsFlag.Name), code, ctorArgs)
	if err != nil {
		return err
	}
	fmt.Printf("address: %s\nsalt: %d\n", addr, salt)
	return nil
}
