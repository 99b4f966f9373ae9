package cli

import (
	"encoding/json"

	"github.com/spf13/cobra"

	"github.com/optimode/contactkit"
)

func newEmailCommand() *cobra.Command {
	var locale string
	cmd := &cobra.Command{
		Use:   "email <address>",
		Short: "Validate an email address and print the result as JSON",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runValidate(cmd, contactkit.Request{
				Kind:   contactkit.KindEmail,
				Value:  args[0],
				Locale: locale,
			})
		},
	}
	cmd.Flags().StringVar(&locale, "lang", "", "Message locale for this result")
	return cmd
}

func newPhoneCommand() *cobra.Command {
	var region, locale string
	cmd := &cobra.Command{
		Use:   "phone <number>",
		Short: "Validate a phone number and print the result as JSON",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runValidate(cmd, contactkit.Request{
				Kind:   contactkit.KindPhone,
				Value:  args[0],
				Region: region,
				Locale: locale,
			})
		},
	}
	cmd.Flags().StringVar(&region, "region", "", "ISO 3166 region code (default: the configured default_region)")
	cmd.Flags().StringVar(&locale, "lang", "", "Message locale for this result")
	return cmd
}

// runValidate prints the result. An invalid value is still a successful
// run.
func runValidate(cmd *cobra.Command, req contactkit.Request) error {
	ctx := cmd.Context()
	a, err := newApp(ctx, cmd)
	if err != nil {
		return err
	}
	defer a.close()

	res, err := a.validator.Validate(ctx, req)
	if err != nil {
		return err
	}
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(res)
}
