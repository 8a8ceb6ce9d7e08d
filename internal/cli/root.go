// Package cli implements the cardtext command line: a standalone HTTP server
// and an in-process generator.
package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// NewRootCommand builds the command tree around its own viper instance.
func NewRootCommand() *cobra.Command {
	v := newViper()
	var cfgFile string

	root := &cobra.Command{
		Use:           "cardtext",
		Short:         "Compose spiritual message card texts",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return readConfigFile(v, cfgFile)
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&cfgFile, "config", "", "config file (default is $HOME/.cardtext.yaml)")
	flags.String(keyTemplates, "", "YAML template catalog replacing the builtin one")
	flags.Float64(keyEnhanceProbability, 0.5, "probability of appending an enhancement sentence")
	flags.Int64(keySeed, 0, "random seed (0 seeds from the clock)")
	for _, key := range []string{keyTemplates, keyEnhanceProbability, keySeed} {
		_ = v.BindPFlag(key, flags.Lookup(key))
	}

	root.AddCommand(
		newServeCommand(v),
		newGenerateCommand(v),
		newCategoriesCommand(v),
	)
	return root
}

// Execute runs the root command and exits non-zero on failure.
func Execute(ctx context.Context) {
	if err := NewRootCommand().ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func readConfigFile(v *viper.Viper, cfgFile string) error {
	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil
		}
		v.AddConfigPath(home)
		v.SetConfigType("yaml")
		v.SetConfigName(".cardtext")
	}

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok && cfgFile == "" {
			return nil
		}
		return fmt.Errorf("cli: read config: %w", err)
	}
	return nil
}
