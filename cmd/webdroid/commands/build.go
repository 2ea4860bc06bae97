package commands

import (
	"github.com/spf13/cobra"
	"go.webdroid.dev/webdroid/internal/app"
)

func (c *CLI) newBuildCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "build <entry.html>",
		Short: "Build a signed APK or AAB from an HTML entry file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name, _ := cmd.Flags().GetString("name")
			packageID, _ := cmd.Flags().GetString("package")
			versionName, _ := cmd.Flags().GetString("version-name")
			versionCode, _ := cmd.Flags().GetInt("version-code")
			icon, _ := cmd.Flags().GetString("icon")
			output, _ := cmd.Flags().GetString("output")
			outDir, _ := cmd.Flags().GetString("out")
			keystorePath, _ := cmd.Flags().GetString("keystore")
			keystoreAlias, _ := cmd.Flags().GetString("keystore-alias")
			keepWorkspace, _ := cmd.Flags().GetBool("keep-workspace")
			watch, _ := cmd.Flags().GetBool("watch")

			return c.app.Build(cmd.Context(), app.BuildOptions{
				EntryFile:     args[0],
				AppName:       name,
				PackageID:     packageID,
				VersionName:   versionName,
				VersionCode:   versionCode,
				IconFile:      icon,
				Output:        output,
				OutputDir:     outDir,
				KeystorePath:  keystorePath,
				KeystoreAlias: keystoreAlias,
				KeepWorkspace: keepWorkspace,
				Watch:         watch,
			})
		},
	}
	cmd.Flags().StringP("name", "n", "", "Application name shown in the launcher")
	cmd.Flags().StringP("package", "p", "", "Android package identifier (default derived from the name)")
	cmd.Flags().String("version-name", "", "Human-readable version (default 1.0)")
	cmd.Flags().Int("version-code", 1, "Monotonic integer version")
	cmd.Flags().StringP("icon", "i", "", "Launcher icon image (PNG or JPEG)")
	cmd.Flags().StringP("output", "o", "apk", "Output kind: apk, aab, or both")
	cmd.Flags().String("out", "", "Directory for final artifacts (default current directory)")
	cmd.Flags().String("keystore", "", "Signing keystore path (default from configuration)")
	cmd.Flags().String("keystore-alias", "", "Signing key alias (default from configuration)")
	cmd.Flags().Bool("keep-workspace", false, "Retain the build workspace for inspection")
	cmd.Flags().BoolP("watch", "w", false, "Rebuild whenever the entry file or icon changes")
	return cmd
}
