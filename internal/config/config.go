package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Config holds the process settings of the market server
type Config struct {
	ServerAddr     string
	LogLevel       string
	AutoEscrow       bool
	EnforceOwnership bool
	SeedDemo         bool
	MaxProofLength   int
}

// Load parses command line args and MARKET_* environment variables.
// Flags win over env, env wins over defaults. A bare PORT env still sets the
// listen port when no address was configured.
func Load(args []string) (Config, error) {
	flags := pflag.NewFlagSet("market", pflag.ContinueOnError)

	// server config
	flags.String("server-addr", "", "listen address, e.g. :8080")
	flags.String("log-level", "info", "logrus level: debug, info, warn, error")

	// market config
	flags.Bool("auto-escrow", true, "open an escrow for the winner when an auction settles")
	flags.Bool("enforce-ownership", true, "require sellers to own what they sell and verify settlements against the registry")
	flags.Bool("seed-demo", false, "create a demo auction on startup")
	flags.Int("max-proof-length", 128, "longest transaction hash accepted at verification")

	if err := flags.Parse(args); err != nil {
		return Config{}, fmt.Errorf("config: parse flags: %w", err)
	}

	v := viper.New()
	if err := v.BindPFlags(flags); err != nil {
		return Config{}, fmt.Errorf("config: bind flags: %w", err)
	}
	v.SetEnvPrefix("MARKET")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	cfg := Config{
		ServerAddr:       v.GetString("server-addr"),
		LogLevel:         v.GetString("log-level"),
		AutoEscrow:       v.GetBool("auto-escrow"),
		EnforceOwnership: v.GetBool("enforce-ownership"),
		SeedDemo:         v.GetBool("seed-demo"),
		MaxProofLength:   v.GetInt("max-proof-length"),
	}
	if cfg.ServerAddr == "" {
		cfg.ServerAddr = defaultAddr()
	}
	return cfg, cfg.Validate()
}

// Validate reports settings that cannot work
func (c Config) Validate() error {
	if c.ServerAddr == "" {
		return fmt.Errorf("config: missing server address")
	}
	if c.MaxProofLength <= 0 {
		return fmt.Errorf("config: max-proof-length must be positive, got %d", c.MaxProofLength)
	}
	return nil
}

// defaultAddr returns the server port from env or defaults to ":8080"
func defaultAddr() string {
	if p := os.Getenv("PORT"); p != "" {
		return fmt.Sprintf(":%s", p)
	}
	return ":8080"
}
