package main

import (
	"os"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/noah-isme/checkout-pricing/internal/catalogfile"
	"github.com/noah-isme/checkout-pricing/internal/config"
	"github.com/noah-isme/checkout-pricing/internal/console"
	"github.com/noah-isme/checkout-pricing/internal/obs"
	"github.com/noah-isme/checkout-pricing/internal/register"
)

func main() {
	cfg := config.MustLoad()

	logger := obs.NewLoggerTo(os.Stderr, cfg.LogFormat, cfg.LogLevel).With().Str("component", "register").Logger()

	inv, err := catalogfile.Load(cfg.CatalogFile)
	if err != nil {
		logger.Fatal().Err(err).Str("path", cfg.CatalogFile).Msg("load catalog")
	}
	logger.Info().Int("products", inv.Len()).Str("env", cfg.AppEnv).Msg("catalog loaded")

	metrics := obs.NewRegisterMetrics(cfg.MetricsNamespace, prometheus.NewRegistry())
	reg := register.New(register.WithLogger(logger), register.WithRecorder(metrics))
	reg.AssignInventory(inv)

	c := &console.Console{Register: reg, Out: os.Stdout, Logger: logger}
	if err := c.Run(os.Stdin); err != nil {
		logger.Fatal().Err(err).Msg("read commands")
	}
	logger.Info().Int64("total", reg.Total()).Str("session", reg.ID().String()).Msg("session closed")
}
