package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"cardtext/internal/domain"
	"cardtext/internal/session"
)

func newGenerateCommand(v *viper.Viper) *cobra.Command {
	var (
		category string
		count    int
		enhanced bool
		repeat   int
		verbose  bool
	)

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate card texts in-process, optionally via a remote API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(v)
			if err != nil {
				return err
			}
			if repeat < 1 {
				return fmt.Errorf("cli: repeat must be at least 1, got %d", repeat)
			}
			s, err := cfg.newSession(cmd.Context())
			if err != nil {
				return err
			}

			cat := domain.ParseCategory(category)
			explicitCount := cmd.Flags().Changed("count")
			out := cmd.OutOrStdout()
			for i := 0; i < repeat; i++ {
				var res session.Result
				if explicitCount {
					res = s.Generate(cmd.Context(), cat, domain.Options{Enhanced: enhanced, Count: count + i})
				} else {
					res = s.Next(cmd.Context(), cat, enhanced)
				}
				if i > 0 {
					fmt.Fprintln(out, "\n---")
				}
				if verbose {
					fmt.Fprintf(out, "[%s]\n", res.Source)
				}
				fmt.Fprintln(out, strings.TrimSpace(res.Text))
			}
			return nil
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&category, "category", "c", string(domain.DefaultCategory), "message category (morning, night, love, spiritual)")
	flags.IntVar(&count, "count", 0, "generation count; quotes are added when divisible by 3 (default: session counter)")
	flags.BoolVar(&enhanced, "enhanced", true, "allow an enhancement sentence")
	flags.IntVarP(&repeat, "repeat", "n", 1, "number of messages to generate")
	flags.BoolVarP(&verbose, "verbose", "v", false, "print where each text came from")
	flags.String(keyRemoteURL, "", "base URL of a remote text generation API")
	flags.Duration(keyRemoteTimeout, 0, "timeout for the remote call")
	_ = v.BindPFlag(keyRemoteURL, flags.Lookup(keyRemoteURL))
	_ = v.BindPFlag(keyRemoteTimeout, flags.Lookup(keyRemoteTimeout))
	return cmd
}

func newCategoriesCommand(v *viper.Viper) *cobra.Command {
	return &cobra.Command{
		Use:   "categories",
		Short: "List the categories of the active template catalog",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(v)
			if err != nil {
				return err
			}
			svc, err := cfg.newService()
			if err != nil {
				return err
			}
			for _, c := range svc.Categories(cmd.Context()) {
				fmt.Fprintln(cmd.OutOrStdout(), c)
			}
			return nil
		},
	}
}
