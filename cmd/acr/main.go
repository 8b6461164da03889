package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"reflect"
	"syscall"

	"github.com/aukilabs/go-tooling/pkg/cli"
	"github.com/aukilabs/go-tooling/pkg/errors"
	"github.com/aukilabs/go-tooling/pkg/logs"
	"github.com/segmentio/encoding/json"

	"github.com/katalvlaran/acr/grid"
	"github.com/katalvlaran/acr/mapfile"
	"github.com/katalvlaran/acr/region"
)

// The acr version number. Set at build.
var version = "v0.1.0"

// Keeps the config keys readable when the binary is obfuscated.
var _ = reflect.TypeOf(config{})

type config struct {
	Map         string `cli:""        env:"ACR_MAP"          help:"Path of the Ants .map file to decompose."`
	MaxSeeds    int    `cli:""        env:"ACR_MAX_SEEDS"    help:"Maximum child seeds kept per region."`
	MaxRegions  int    `cli:""        env:"ACR_MAX_REGIONS"  help:"Maximum number of regions in the tree."`
	MaxDepth    int    `cli:""        env:"ACR_MAX_DEPTH"    help:"Maximum number of levels below the root."`
	NookRetries int    `cli:",hidden" env:"ACR_NOOK_RETRIES" help:"How often a seed may be moved to escape a nook."`
	RootOrder   int    `cli:",hidden" env:"ACR_ROOT_ORDER"   help:"Order assigned to the root region."`
	Workers     int    `cli:""        env:"ACR_WORKERS"      help:"Grow each tree level on this many goroutines (1 is sequential)."`
	MaxDim      int    `cli:",hidden" env:"ACR_MAX_DIM"      help:"Largest accepted map dimension."`
	Graph       bool   `cli:""        env:"ACR_GRAPH"        help:"Include the region graph in the output."`
	Render      bool   `cli:""        env:"ACR_RENDER"       help:"Include the claimed grid as text in the output."`
	Plot        string `cli:""        env:"ACR_PLOT"         help:"Draw the regions to this file (.png, .svg or .pdf)."`
	LogLevel    string `cli:""        env:"ACR_LOG_LEVEL"    help:"Log level (debug|info|warning|error)."`
	LogIndent   bool   `cli:""        env:"ACR_LOG_INDENT"   help:"Indent logs and output."`
	Version     bool   `cli:""        env:"-"                help:"Show version."`
	Help        bool   `cli:""        env:"-"                help:"Show help."`
}

func defaultConfig() config {
	return config{
		MaxSeeds:    region.DefaultMaxSeeds,
		MaxRegions:  region.DefaultMaxRegions,
		MaxDepth:    region.DefaultMaxDepth,
		NookRetries: region.DefaultMaxNookRetries,
		Workers:     1,
		MaxDim:      grid.DefaultMaxDim,
		LogLevel:    logs.InfoLevel.String(),
	}
}

func main() {
	conf := defaultConfig()

	ctx, cancel := cli.ContextWithSignals(context.Background(),
		os.Interrupt,
		syscall.SIGTERM,
	)
	defer cancel()

	cli.Register().
		Help("Decomposes an Ants map into convex regions and prints the result as JSON.").
		Options(&conf)
	cli.Load()

	if conf.Version {
		fmt.Println(version)
		os.Exit(0)
	}

	logs.SetLevel(logs.ParseLevel(conf.LogLevel))
	logs.Encoder = json.Marshal
	if conf.LogIndent {
		logs.Encoder = func(v any) ([]byte, error) {
			return json.MarshalIndent(v, "", "  ")
		}
	}
	errors.Encoder = json.Marshal

	if err := validateConfig(conf); err != nil {
		logs.Fatal(err)
	}

	if err := run(ctx, conf, os.Stdout); err != nil {
		logs.Fatal(err)
	}
}

func validateConfig(conf config) error {
	if conf.Map == "" {
		return errors.New("a map file is required").WithTag("env", "ACR_MAP")
	}
	if conf.MaxSeeds < 0 || conf.MaxDepth < 0 || conf.NookRetries < 0 {
		return errors.New("seed, depth and nook limits must not be negative").
			WithTag("max_seeds", conf.MaxSeeds).
			WithTag("max_depth", conf.MaxDepth).
			WithTag("nook_retries", conf.NookRetries)
	}
	if conf.MaxRegions < 1 {
		return errors.New("at least one region must be allowed").WithTag("max_regions", conf.MaxRegions)
	}
	if conf.Workers < 1 {
		return errors.New("at least one worker is required").WithTag("workers", conf.Workers)
	}
	return nil
}

// run loads the map, builds the tree and writes the summary to w.
func run(ctx context.Context, conf config, w io.Writer) error {
	m, err := mapfile.Load(conf.Map, grid.Options{MaxDim: conf.MaxDim})
	if err != nil {
		return fmt.Errorf("loading map: %w", err)
	}

	tree, err := region.Build(ctx, m.Grid, m.Hill(),
		region.WithMaxSeeds(conf.MaxSeeds),
		region.WithMaxRegions(conf.MaxRegions),
		region.WithMaxDepth(conf.MaxDepth),
		region.WithMaxNookRetries(conf.NookRetries),
		region.WithRootOrder(conf.RootOrder),
		region.WithParallel(conf.Workers),
	)
	if tree == nil {
		return fmt.Errorf("building region tree from hill %s: %w", m.Hill(), err)
	}
	if err != nil {
		// cancelled: report what was built
		logs.WithTag("build_id", tree.BuildID.String()).
			Warn(errors.New("region build interrupted").Wrap(err))
	}

	out, err := summarize(m, tree, conf)
	if err != nil {
		return err
	}
	if conf.Plot != "" {
		if err := plotRegions(m.Grid, tree, conf.Plot); err != nil {
			return fmt.Errorf("plotting regions to %s: %w", conf.Plot, err)
		}
	}

	var b []byte
	if conf.LogIndent {
		b, err = json.MarshalIndent(out, "", "  ")
	} else {
		b, err = json.Marshal(out)
	}
	if err != nil {
		return errors.New("encoding summary failed").Wrap(err)
	}
	b = append(b, '\n')
	_, err = w.Write(b)
	return err
}
