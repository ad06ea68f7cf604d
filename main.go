// Command escaperoom runs a first-person escape room: walk between rooms,
// pick up keys that open locked doors and reach the exit room.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"escaperoom/pkg/engine/assets"
	"escaperoom/pkg/game/config"
	"escaperoom/pkg/game/devtools"
	"escaperoom/pkg/game/errors"
	"escaperoom/pkg/game/mapdata"
	"escaperoom/pkg/game/setup"
	"escaperoom/pkg/game/state"
	"escaperoom/pkg/logger"
)

var (
	mapPath      string
	configPath   string
	rendererName string
	assetsDir    string
	logLevel     string
	logFormat    string
	logFile      string
	checkOnly    bool
	dumpFile     bool
)

var rootCmd = &cobra.Command{
	Use:   "escaperoom",
	Short: "First-person escape room",
	Long: `Escape room loads a map of connected rooms, walls and keys, then lets you
walk through it until you reach the exit room.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          run,
}

func init() {
	persistent := rootCmd.PersistentFlags()
	persistent.StringVar(&configPath, "config", "", "config file overriding the default dimensions")
	persistent.StringVar(&logLevel, "log-level", "", "log level (default $LOG_LEVEL or info)")
	persistent.StringVar(&logFormat, "log-format", "", "log format: text or json (default $LOG_FORMAT or text)")

	flags := rootCmd.Flags()
	flags.StringVar(&mapPath, "map", "content/world.yaml", "map description (YAML or JSON)")
	flags.StringVar(&rendererName, "renderer", "tui", "renderer: tui or ebiten")
	flags.StringVar(&assetsDir, "assets", ".", "directory asset paths are relative to")
	flags.StringVar(&logFile, "log-file", "", "write logs to this file instead of stderr")
	flags.BoolVar(&checkOnly, "check", false, "build the world, print a map dump and exit")
	flags.BoolVar(&dumpFile, "dump", false, "write a map dump to map.txt before playing")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(errors.GetCode(err).ExitStatus())
	}
}

func run(cmd *cobra.Command, args []string) error {
	logger.Init(logLevel, logFormat)
	if logFile != "" {
		f, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return errors.WrapWithCode(err, errors.CodeInvalidConfig, "cannot open log file").WithMeta("path", logFile)
		}
		defer f.Close()
		logger.SetOutput(f)
	}

	g, err := buildGame()
	if err != nil {
		entry := logger.Log.WithError(err).WithField("code", errors.GetCode(err)).WithField("meta", errors.GetMeta(err))
		switch {
		case errors.IsMapParse(err):
			entry.Error("map rejected")
		case errors.IsAssetLoad(err):
			entry.Error("asset failed to load")
		default:
			entry.Error("cannot build world")
		}
		return err
	}

	if checkOnly {
		devtools.DumpMap(cmd.OutOrStdout(), g)
		return nil
	}
	if dumpFile {
		path, err := devtools.DumpMapToFile(g)
		if err != nil {
			return errors.WrapWithCode(err, errors.CodeInternal, "cannot write map dump")
		}
		logger.Log.WithField("path", path).Info("map dump written")
	}

	switch rendererName {
	case "tui":
		return runTUI(g)
	case "ebiten":
		return runEbiten(g)
	default:
		return errors.InvalidConfig("renderer", "must be tui or ebiten").WithMeta("renderer", rendererName)
	}
}

// buildGame loads the config and map and builds the world
func buildGame() (*state.Game, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}
	cfg.ApplyBindings()

	desc, err := mapdata.Load(mapPath, cfg.RoomWidth, cfg.RoomLength)
	if err != nil {
		return nil, errors.Wrapf(err, "cannot load map %s", mapPath).WithMeta("path", mapPath)
	}

	loader := assets.NewFileLoader(os.DirFS(assetsDir))
	return setup.Build(desc, cfg, loader)
}
