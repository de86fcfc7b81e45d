package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"fortio.org/log"

	"github.com/maax3v3/hexrgb"
	"github.com/maax3v3/hexrgb/internal/cli"
	"github.com/maax3v3/hexrgb/internal/pipeline"
	"github.com/maax3v3/hexrgb/internal/server"
	"github.com/maax3v3/hexrgb/internal/swatch"
)

// stdoutClipboard stands in for the system clipboard: the picked value is
// written to stdout so it can be piped elsewhere.
type stdoutClipboard struct{}

func (stdoutClipboard) SetText(text string) error {
	_, err := fmt.Println(text)
	return err
}

type logNotifier struct{}

func (logNotifier) ShowMsg(title, msg, _ string) {
	log.Infof("%s: %s", title, msg)
}

func main() {
	log.SetDefaultsForClientTools()
	cfg, err := cli.Parse()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if cfg.Command == cli.CommandServe {
		os.Exit(serve(cfg))
	}

	conv := hexrgb.New(hexrgb.Options{
		CacheDir:    cfg.CacheDir,
		SwatchSize:  cfg.Size,
		DefaultIcon: cfg.Icon,
		Clipboard:   stdoutClipboard{},
		Notifier:    logNotifier{},
	})

	var results []hexrgb.Result
	if cfg.Direction == pipeline.RGBToHex {
		results = conv.RGBToHex(cfg.Query)
	} else {
		results = conv.HexToRGB(cfg.Query)
	}

	if cfg.Pick > 0 {
		if cfg.Pick > len(results) {
			fmt.Fprintf(os.Stderr, "Error: --pick %d but only %d result(s)\n", cfg.Pick, len(results))
			os.Exit(1)
		}
		if !conv.Invoke(results[cfg.Pick-1]) {
			os.Exit(1)
		}
		return
	}

	for i, r := range results {
		fmt.Printf("%d. %s\n   %s\n   icon: %s\n", i+1, r.Title, r.SubTitle, r.IcoPath)
	}
}

func serve(cfg cli.Config) int {
	runner := &pipeline.Runner{
		Cache: swatch.New(cfg.CacheDir, swatch.WithSize(cfg.Size), swatch.WithFallback(cfg.Icon)),
	}
	log.Infof("Swatch cache: %s", runner.Cache.Dir())

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := server.Serve(ctx, cfg.Server, server.NewRouter(runner, cfg.Server)); err != nil {
		log.Errf("Server: %v", err)
		return 1
	}
	log.Infof("Server stopped")
	return 0
}
