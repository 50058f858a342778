package main

import (
	"os"
	"time"

	"domain-market/internal/auction"
	"domain-market/internal/config"
	"domain-market/internal/escrow"
	market "domain-market/internal/marketService"
	"domain-market/internal/registry"
	"domain-market/internal/server"
	"domain-market/utils"
)

func main() {
	cfg, err := config.Load(os.Args[1:])
	if err != nil {
		utils.Fatal("invalid configuration", map[string]any{"error": err.Error()})
	}
	if err := utils.SetLevel(cfg.LogLevel); err != nil {
		utils.Fatal("invalid log level", map[string]any{"level": cfg.LogLevel, "error": err.Error()})
	}

	assets := registry.New(nil)

	var verifier escrow.Verifier = escrow.BasicVerifier{MaxProofLength: cfg.MaxProofLength}
	if cfg.EnforceOwnership {
		// settlements are only recorded in the registry when ownership is enforced
		verifier = escrow.ChainVerifier{verifier, escrow.LedgerVerifier{Ledger: assets}}
	}

	marketSvc := market.NewMarketService(
		auction.NewEngine(nil),
		escrow.NewEngine(nil, verifier),
		market.Options{
			AutoEscrow:       cfg.AutoEscrow,
			EnforceOwnership: cfg.EnforceOwnership,
			Registry:         assets,
		},
	)

	if cfg.SeedDemo {
		seedDemo(marketSvc)
	}

	router := server.SetupRouter(marketSvc)

	utils.Info("starting market server", map[string]any{
		"addr":              cfg.ServerAddr,
		"auto_escrow":       cfg.AutoEscrow,
		"enforce_ownership": cfg.EnforceOwnership,
	})
	if err := router.Run(cfg.ServerAddr); err != nil {
		utils.Fatal("failed to start server", map[string]any{"error": err.Error()})
	}
}

// seedDemo registers a few sample assets and auctions them for the next day
func seedDemo(svc *market.MarketService) {
	now := time.Now()
	demo := []struct {
		asset         string
		seller        string
		startingPrice uint64
	}{
		{asset: "example.ao", seller: "demo-seller", startingPrice: 100},
		{asset: "market.ao", seller: "demo-seller", startingPrice: 200},
		{asset: "escrow.ao", seller: "demo-seller", startingPrice: 150},
	}

	for _, d := range demo {
		if _, err := svc.RegisterAsset(d.asset, d.seller); err != nil {
			utils.Warn("failed to register demo asset", map[string]any{"asset": d.asset, "error": err.Error()})
			continue
		}
		if _, err := svc.CreateAuction(d.asset, d.seller, now, now.Add(24*time.Hour), d.startingPrice); err != nil {
			utils.Warn("failed to seed demo auction", map[string]any{"asset": d.asset, "error": err.Error()})
			continue
		}
		if _, err := svc.ActivateAuction(d.asset); err != nil {
			utils.Warn("failed to activate demo auction", map[string]any{"asset": d.asset, "error": err.Error()})
		}
	}
}
