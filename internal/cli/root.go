package cli

import (
	"github.com/denismitr/intset/internal/config"
	"github.com/denismitr/intset/internal/logger"
	"github.com/fatih/color"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

type app struct {
	v       *viper.Viper
	cfg     *config.Config
	log     *zap.Logger
	cfgFile string
}

// NewRootCommand builds the intset command tree.
func NewRootCommand(version string) *cobra.Command {
	a := &app{v: config.New(), log: zap.NewNop()}

	rootCmd := &cobra.Command{
		Use:           "intset",
		Short:         "Ordered integer sets on a sorted linked chain",
		Long:          "intset builds ordered sets of integers, evaluates set algebra on them and checks the implementation against its scenario phases and algebraic laws.",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.init()
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = a.log.Sync()
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&a.cfgFile, "config", "", "config file (default $HOME/.intset.yaml or ./.intset.yaml)")
	flags.Bool("debug", false, "enable debug logging")
	flags.Bool("color", true, "colorize report output")
	_ = a.v.BindPFlag("debug", flags.Lookup("debug"))
	_ = a.v.BindPFlag("output.color", flags.Lookup("color"))

	rootCmd.AddCommand(
		newPhasesCommand(a),
		newLawsCommand(a),
		newEvalCommand(),
		newShowCommand(),
	)

	return rootCmd
}

func (a *app) init() error {
	cfg, err := config.Load(a.v, a.cfgFile)
	if err != nil {
		return errors.Wrap(err, "could not load configuration")
	}

	a.cfg = cfg
	a.log = logger.NewLogger(cfg.Debug)
	color.NoColor = color.NoColor || !cfg.Output.Color

	a.log.Debug("configuration loaded", zap.String("file", a.v.ConfigFileUsed()))
	return nil
}
