// Package main runs the Crypto Seal browser front end.
package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	webcmd "github.com/louisbranch/crypto-seal/internal/cmd/web"
	"github.com/louisbranch/crypto-seal/internal/platform/config"
)

func main() {
	log.SetPrefix("[WEB] ")
	cfg, err := webcmd.ParseConfig(flag.CommandLine, os.Args[1:])
	if err != nil {
		config.Exitf("crypto-seal web: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	if err := webcmd.Run(ctx, cfg); err != nil {
		log.Fatalf("serve: %v", err)
	}
}
