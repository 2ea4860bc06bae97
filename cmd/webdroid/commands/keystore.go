package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func (c *CLI) newKeystoreCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "keystore",
		Short: "Manage the signing identity",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "inspect",
		Short: "Show the configured signing identity",
		Run: func(cmd *cobra.Command, _ []string) {
			info := c.app.InspectKeystore(cmd.Context())
			out := cmd.OutOrStdout()
			_, _ = fmt.Fprintf(out, "Keystore: %s\n", info.Path)
			_, _ = fmt.Fprintf(out, "Alias:    %s\n", info.Alias)
			if info.Exists {
				_, _ = fmt.Fprintln(out, "Status:   present")
			} else {
				_, _ = fmt.Fprintln(out, "Status:   not created yet (run 'webdroid keystore init')")
			}
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "init",
		Short: "Create the signing identity if it does not exist",
		RunE: func(cmd *cobra.Command, _ []string) error {
			info, err := c.app.InitKeystore(cmd.Context())
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Keystore ready: %s (alias %s)\n", info.Path, info.Alias)
			return nil
		},
	})

	return cmd
}
