package cli

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"fortio.org/log"

	"github.com/maax3v3/hexrgb/internal/pipeline"
	"github.com/maax3v3/hexrgb/internal/renderer"
	"github.com/maax3v3/hexrgb/internal/server"
	"github.com/maax3v3/hexrgb/internal/swatch"
)

// CommandServe runs the HTTP server instead of a single query.
const CommandServe = "serve"

// Config holds the parsed CLI arguments.
type Config struct {
	Command   string // "hex", "rgb" or "serve"
	Direction pipeline.Direction
	Query     string
	CacheDir  string
	Size      int
	Icon      string
	Pick      int
	Server    server.Config
}

// Parse parses the process arguments and returns a validated Config.
func Parse() (Config, error) {
	log.LoggerStaticFlagSetup()
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: hexrgb [options] hex|rgb <query>\n       hexrgb [options] serve\n\nOptions:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n  hexrgb hex '#FF000080'\n  hexrgb -pick 3 rgb 255,0,128,0.5\n  hexrgb -addr :9000 serve\n")
	}
	return parse(flag.CommandLine, os.Args[1:])
}

func parse(fs *flag.FlagSet, args []string) (Config, error) {
	sd := server.DefaultConfig()
	cacheDir := fs.String("cache-dir", swatch.DefaultDir(), "Directory holding generated color swatches")
	size := fs.Int("size", renderer.DefaultSize, "Swatch edge length in pixels")
	icon := fs.String("icon", swatch.DefaultIcon, "Icon shown when no swatch is available")
	pick := fs.Int("pick", 0, "Copy the value of result N (1-based) to stdout")
	addr := fs.String("addr", sd.Addr, "Listen address for serve")
	rateLimit := fs.Float64("rate", sd.RateLimit, "Query requests per second for serve (0 = unlimited)")
	burst := fs.Int("burst", sd.Burst, "Request burst size for serve")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	if *size < 1 {
		return Config{}, fmt.Errorf("--size must be > 0, got %d", *size)
	}
	if *pick < 0 {
		return Config{}, fmt.Errorf("--pick must be >= 0, got %d", *pick)
	}
	if *rateLimit < 0 {
		return Config{}, fmt.Errorf("--rate must be >= 0, got %f", *rateLimit)
	}
	if *cacheDir == "" {
		return Config{}, fmt.Errorf("--cache-dir must not be empty")
	}

	cfg := Config{
		CacheDir: *cacheDir,
		Size:     *size,
		Icon:     *icon,
		Pick:     *pick,
		Server:   server.Config{Addr: *addr, RateLimit: *rateLimit, Burst: *burst},
	}

	rest := fs.Args()
	if len(rest) == 0 {
		return Config{}, fmt.Errorf("a command is required: hex, rgb or serve")
	}
	cfg.Command = strings.ToLower(rest[0])
	if cfg.Command == CommandServe {
		if len(rest) > 1 {
			return Config{}, fmt.Errorf("serve takes no query, got %q", strings.Join(rest[1:], " "))
		}
		return cfg, nil
	}

	dir, err := pipeline.ParseDirection(cfg.Command)
	if err != nil {
		return Config{}, err
	}
	cfg.Direction = dir
	// An empty query is valid and yields usage guidance.
	cfg.Query = strings.Join(rest[1:], " ")
	return cfg, nil
}
