package cli

import (
	"fmt"
	"strings"

	"github.com/billie-coop/showcase/internal/mask"
	"github.com/spf13/cobra"
)

func newMaskCmd() *cobra.Command {
	var currency string
	cmd := &cobra.Command{
		Use:   "mask [name|pattern] <value>",
		Short: "Format a value with a named mask, a raw pattern or a currency",
		Long: "Format a value the way the input dialogs do.\n\n" +
			"Named masks: " + strings.Join(mask.Names(), ", ") + ".\n" +
			"A raw pattern uses 9 for each digit, e.g. 99-99.",
		Example: "  showcase mask cpf 12345678901\n  showcase mask 99-99 1234\n  showcase mask --currency BRL 123456",
		Args: func(cmd *cobra.Command, args []string) error {
			if currency != "" {
				return cobra.ExactArgs(1)(cmd, args)
			}
			return cobra.ExactArgs(2)(cmd, args)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			if currency != "" {
				_, err := fmt.Fprintln(out, mask.FormatCurrency(args[0], mask.Currency(strings.ToUpper(currency))))
				return err
			}

			pattern, ok := mask.Lookup(args[0])
			if !ok {
				if !strings.ContainsRune(args[0], '9') {
					return fmt.Errorf("unknown mask %q (known: %s)", args[0], strings.Join(mask.Names(), ", "))
				}
				pattern = args[0]
			}

			formatted := mask.Apply(args[1], pattern)
			if !mask.Complete(args[1], pattern) {
				fmt.Fprintf(cmd.ErrOrStderr(), "warning: %q does not fill %s\n", args[1], pattern)
			}
			_, err := fmt.Fprintln(out, formatted)
			return err
		},
	}
	cmd.Flags().StringVar(&currency, "currency", "", "Format the value as an amount in cents (BRL, USD)")
	return cmd
}
