package commands

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/facebookincubator/go-belt/tool/logger"
	xlogrus "github.com/facebookincubator/go-belt/tool/logger/implementation/logrus"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/xaionaro-go/xrectsel/pkg/buildvars"
	"github.com/xaionaro-go/xrectsel/pkg/config"
	"github.com/xaionaro-go/xrectsel/pkg/displaygateway"
	"github.com/xaionaro-go/xrectsel/pkg/rectsel"
	"github.com/xaionaro-go/xrectsel/pkg/regionformat"
	"github.com/xaionaro-go/xrectsel/pkg/xpath"
)

const formatHelp = `FORMAT is printed after the selection with the following substitutions:
  %x %y  offset from the left/top of the screen
  %X %Y  offset from the right/bottom of the screen
  %w %h  width/height of the selection
  %b %d  border width/depth of the root window
  %%     a literal '%'
The default FORMAT is "%wx%h+%x+%y\n".`

var ProgramName = filepath.Base(os.Args[0])

var (
	// Access these variables only from a main package:

	Root = &cobra.Command{
		Use:           ProgramName + " [FORMAT]",
		Short:         "Interactively select a rectangular region of the screen and print its geometry",
		Long:          formatHelp,
		Args:          cobra.MaximumNArgs(1),
		Version:       buildvars.VersionString(),
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			ctx := cmd.Context()
			l := logger.FromCtx(ctx).WithLevel(LoggerLevel)
			ctx = logger.CtxWithLogger(ctx, l)
			cmd.SetContext(ctx)
			logrus.SetLevel(xlogrus.LevelToLogrus(LoggerLevel))
			logger.Debugf(ctx, "log-level: %v", LoggerLevel)
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			ctx := cmd.Context()
			logger.Debug(ctx, "end")
		},
		RunE: selectRegion,
	}

	GenerateConfig = &cobra.Command{
		Use:   "generate-config",
		Short: "Write the default configuration to the config path",
		Args:  cobra.ExactArgs(0),
		RunE:  generateConfig,
	}

	BuildInfo = &cobra.Command{
		Use:   "build-info",
		Short: "Print the build information as JSON",
		Args:  cobra.ExactArgs(0),
		RunE: func(cmd *cobra.Command, args []string) error {
			return printBuildInfo(cmd.OutOrStdout())
		},
	}

	LoggerLevel = logger.LevelWarning
)

func init() {
	Root.PersistentFlags().Var(&LoggerLevel, "log-level", "")
	Root.PersistentFlags().String("config-path", config.DefaultPath, "the path to the config file")
	Root.Flags().String("display", "", "the display to connect to (default: $DISPLAY)")
	Root.Flags().Uint("line-width", 1, "the line width of the selection outline")
	Root.Flags().String("cursor", rectsel.CursorStyleCrosshair.String(), "the pointer cursor shown while selecting: crosshair, cross or arrow")

	Root.AddCommand(GenerateConfig)
	Root.AddCommand(BuildInfo)
}

// OpenGateway is swapped in tests.
var OpenGateway = func(ctx context.Context, display string) (rectsel.Gateway, error) {
	gw, err := displaygateway.New(ctx, display)
	if err != nil {
		return nil, err
	}
	return gw, nil
}

func getConfigPath(cmd *cobra.Command) (string, error) {
	cfgPathRaw, err := cmd.Flags().GetString("config-path")
	if err != nil {
		return "", fmt.Errorf("unable to get the value of flag 'config-path': %w", err)
	}
	return xpath.Expand(cfgPathRaw)
}

func flagOverrides(flags *pflag.FlagSet) (config.Options, error) {
	var opts config.Options
	if flags.Changed("display") {
		v, err := flags.GetString("display")
		if err != nil {
			return nil, err
		}
		opts = append(opts, config.OptionDisplay(v))
	}
	if flags.Changed("line-width") {
		v, err := flags.GetUint("line-width")
		if err != nil {
			return nil, err
		}
		opts = append(opts, config.OptionLineWidth(v))
	}
	if flags.Changed("cursor") {
		v, err := flags.GetString("cursor")
		if err != nil {
			return nil, err
		}
		opts = append(opts, config.OptionCursor(v))
	}
	return opts, nil
}

func readConfig(cmd *cobra.Command, args []string) (config.Config, error) {
	ctx := cmd.Context()
	cfgPath, err := getConfigPath(cmd)
	if err != nil {
		return config.Config{}, err
	}
	cfg, err := config.ReadOrDefault(ctx, cfgPath)
	if err != nil {
		return config.Config{}, err
	}
	overrides, err := flagOverrides(cmd.Flags())
	if err != nil {
		return config.Config{}, fmt.Errorf("unable to parse the flags: %w", err)
	}
	if len(args) > 0 {
		overrides = append(overrides, config.OptionFormat(args[0]))
	}
	return overrides.ApplyOverrides(cfg), nil
}

func selectRegion(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	cfg, err := readConfig(cmd, args)
	if err != nil {
		return err
	}
	opts, err := cfg.SelectorOptions()
	if err != nil {
		return err
	}

	gw, err := OpenGateway(ctx, cfg.Display)
	if err != nil {
		return err
	}
	defer func() {
		if err := gw.Close(); err != nil {
			logger.Errorf(ctx, "unable to close the connection to the display: %v", err)
		}
	}()

	region, err := rectsel.New(gw, opts...).Select(ctx, gw.RootSurface())
	if err != nil {
		return fmt.Errorf("failed to select a rectangular region: %w", err)
	}
	logger.Debugf(ctx, "selected region: %#+v", region)

	return regionformat.Fprint(cmd.OutOrStdout(), cfg.Format, region)
}

func generateConfig(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	cfgPath, err := getConfigPath(cmd)
	if err != nil {
		return err
	}
	if _, err := os.Stat(cfgPath); err == nil {
		return fmt.Errorf("file '%s' already exists", cfgPath)
	}
	return config.WriteConfigToPath(ctx, cfgPath, config.DefaultConfig())
}
