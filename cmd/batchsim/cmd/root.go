package cmd

import (
	"fmt"
	"io"
	"os"
	"strings"

	"cosmossdk.io/log"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const envPrefix = "BATCHSIM"

var cfgFile string

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "batchsim",
	Short: "Batchsim - offline simulator for batched curve pools",
	Long: `Batchsim drives the batchswap keeper against an in-memory store.

It provides commands for:
- Quoting a single trade against a curve
- Replaying YAML scenarios of pool, liquidity, order and settlement steps`,
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)
	rootCmd.SetGlobalNormalizationFunc(dashedFlagNames)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.batchsim.yaml)")
	rootCmd.PersistentFlags().String("log-format", "text", "keeper log format (text, json, none)")
	rootCmd.PersistentFlags().Bool("log-color", false, "colorize text logs")

	if err := viper.BindPFlag("log_format", rootCmd.PersistentFlags().Lookup("log-format")); err != nil {
		fmt.Fprintf(os.Stderr, "Error binding flag: %v\n", err)
	}
	if err := viper.BindPFlag("log_color", rootCmd.PersistentFlags().Lookup("log-color")); err != nil {
		fmt.Fprintf(os.Stderr, "Error binding flag: %v\n", err)
	}
}

func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		cobra.CheckErr(err)

		viper.AddConfigPath(home)
		viper.AddConfigPath(".")
		viper.SetConfigType("yaml")
		viper.SetConfigName(".batchsim")
	}

	viper.SetEnvPrefix(envPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// dashedFlagNames lets --reserve_a and --reserve-a name the same flag.
func dashedFlagNames(_ *pflag.FlagSet, name string) pflag.NormalizedName {
	return pflag.NormalizedName(strings.ReplaceAll(name, "_", "-"))
}

// newLogger builds the keeper logger from the log_format and log_color settings.
func newLogger(w io.Writer) (log.Logger, error) {
	switch format := strings.ToLower(viper.GetString("log_format")); format {
	case "", "text":
		return log.NewLogger(w, log.ColorOption(viper.GetBool("log_color"))), nil
	case "json":
		return log.NewLogger(w, log.OutputJSONOption()), nil
	case "none":
		return log.NewNopLogger(), nil
	default:
		return nil, fmt.Errorf("unknown log format %q", format)
	}
}
