package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"audiocel/internal/config"
	appver "audiocel/internal/version"
)

func init() {
	rootCmd.AddCommand(versionCmd)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print audiocel version",
	Run: func(cmd *cobra.Command, args []string) {
		// keep output simple for scripting
		fmt.Fprintln(cmd.OutOrStdout(), appver.AppVersion)
		if verbose, _ := cmd.Flags().GetBool("verbose"); verbose {
			fmt.Fprintf(cmd.OutOrStdout(), "scrcpy padrão: %s\n", config.DefaultVersion)
		}
	},
}

func init() {
	versionCmd.Flags().BoolP("verbose", "v", false, "also print the default scrcpy release")
}
