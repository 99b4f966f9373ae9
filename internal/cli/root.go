// Package cli implements the contactkit command line.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/optimode/contactkit/internal/config"
)

const contactkitDesc = "Email and phone number validation"
const contactkitDescLong = contactkitDesc + `

Configuration is read from config.{yaml,yml,json,toml}, a .env file,
CONTACTKIT_* environment variables and flags, in increasing precedence.

To validate a single value:
  contactkit email user@example.com
  contactkit phone "054-123-4567" --region IL

To run the HTTP service:
  contactkit serve --http_addr :8080
`

// NewRootCommand builds the command tree.
func NewRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          "contactkit",
		Version:      "v0.1.0",
		Short:        contactkitDesc,
		Long:         contactkitDescLong,
		SilenceUsage: true,
	}
	config.RegisterFlags(root.PersistentFlags())

	root.AddCommand(newServeCommand(), newEmailCommand(), newPhoneCommand())
	return root
}

// Execute runs the command line.
func Execute() error {
	return NewRootCommand().Execute()
}
