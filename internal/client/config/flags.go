package config

import (
	"flag"
	"os"
	"time"

	"github.com/dmitrijs2005/ironbank/internal/flagx"
)

// parseFlags overlays command-line flags on cfg.
//
//	-a string   Iron Bank gRPC endpoint
//	-i int      seconds between server reachability checks, 0 disables them
//	-o string   directory downloaded statements are saved to
//
// Unknown flags are filtered out with flagx.FilterArgs so the config file
// flag (-c) can share the command line.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-i", "-o"})

	fs := flag.NewFlagSet("ironbank", flag.ContinueOnError)

	fs.StringVar(&cfg.ServerEndpointAddr, "a", cfg.ServerEndpointAddr, "Iron Bank server address")
	fs.StringVar(&cfg.StatementDir, "o", cfg.StatementDir, "directory for downloaded statements")
	checkSeconds := fs.Int("i", int(cfg.OnlineCheckInterval.Seconds()), "server reachability check interval (in seconds)")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}
	if *checkSeconds < 0 {
		panic("check interval must not be negative")
	}

	cfg.OnlineCheckInterval = time.Duration(*checkSeconds) * time.Second
}
