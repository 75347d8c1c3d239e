package main

import (
	"context"
	"flag"
	"os"
	"time"

	"github.com/joho/godotenv"

	"github.com/denniswu/swinglab/internal/seed"
	"github.com/denniswu/swinglab/pkg/logger"
)

// Default configuration constants.
const (
	defaultSessions   = 50
	defaultAthletes   = 0 // 0 means the whole roster
	defaultTimeout    = 10 * time.Second
	defaultRunTimeout = 5 * time.Minute
)

func main() {
	var (
		baseURL  = flag.String("url", "http://localhost:3001", "Base URL of the persistence API")
		sessions = flag.Int("sessions", defaultSessions, "Number of sessions to generate and submit")
		athletes = flag.Int("athletes", defaultAthletes, "Number of distinct athletes (0 = full roster)")
		timeout  = flag.Duration("timeout", defaultTimeout, "HTTP request timeout")
		verbose  = flag.Bool("verbose", false, "Log every stored session")
	)
	flag.Parse()

	_ = godotenv.Load()

	if err := logger.Init(); err != nil {
		os.Stderr.WriteString("failed to initialize logging: " + err.Error() + "\n")
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), defaultRunTimeout)
	defer cancel()

	cfg := &seed.Config{
		BaseURL:  *baseURL,
		Sessions: *sessions,
		Athletes: *athletes,
		Timeout:  *timeout,
		Verbose:  *verbose,
	}

	if err := seed.Run(ctx, cfg); err != nil {
		os.Stderr.WriteString("seeding failed: " + err.Error() + "\n")
		os.Exit(1)
	}
}
