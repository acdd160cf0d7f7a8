// internal/cli/root.go
package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"claim-dashboard/internal/config"
	"claim-dashboard/pkg/logger"
)

const version = "claimctl v0.3.0"

type options struct {
	cfgFile string
	verbose bool

	v   *viper.Viper
	cfg *config.Config
}

// NewRootCommand builds the claimctl command tree.
func NewRootCommand() *cobra.Command {
	opts := &options{}

	rootCmd := &cobra.Command{
		Use:   "claimctl",
		Short: "claimctl - score insurance claims against the fraud prediction service",
		Long: `claimctl fills in a claim form from flags, sends it to the fraud
prediction service and prints whether the claim looks fraudulent.

Configuration hierarchy (highest to lowest priority):
1. CLI flags
2. Environment variables (CLAIMDASH_*)
3. Config file (./claimdash.yaml or ~/.claimdash/claimdash.yaml)
4. Defaults`,
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return opts.load(cmd)
		},
	}

	rootCmd.PersistentFlags().StringVar(&opts.cfgFile, "config", "", "config file (default: ./claimdash.yaml, then $HOME/.claimdash/claimdash.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "verbose output")
	rootCmd.PersistentFlags().String("predictor-url", "", "prediction service endpoint")
	rootCmd.PersistentFlags().Duration("timeout", 0, "prediction request timeout (0 = no limit)")

	rootCmd.AddCommand(
		newSubmitCommand(opts),
		newConfigCommand(opts),
		newVersionCommand(),
	)

	return rootCmd
}

func (o *options) load(cmd *cobra.Command) error {
	v, err := config.New(o.cfgFile)
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if err := v.BindPFlag("predictor.url", flags.Lookup("predictor-url")); err != nil {
		return fmt.Errorf("failed to bind flag: %w", err)
	}
	if err := v.BindPFlag("predictor.timeout", flags.Lookup("timeout")); err != nil {
		return fmt.Errorf("failed to bind flag: %w", err)
	}

	cfg, err := config.Load(v)
	if err != nil {
		return err
	}

	if o.verbose && v.ConfigFileUsed() != "" {
		fmt.Fprintf(cmd.ErrOrStderr(), "Using config file: %s\n", v.ConfigFileUsed())
	}

	o.v = v
	o.cfg = cfg
	return nil
}

// logger is verbose in development form with -v and quiet otherwise; the
// failure cause of a submission is still logged at error level.
func (o *options) logger() *zap.Logger {
	if o.verbose {
		return logger.NewDevelopmentLogger("claimctl")
	}
	return logger.NewLogger("claimctl").WithOptions(zap.IncreaseLevel(zapcore.WarnLevel))
}

func newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), version)
		},
	}
}

// Execute runs claimctl with the process arguments.
func Execute() error {
	return NewRootCommand().Execute()
}
