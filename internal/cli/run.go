package cli

import (
	"strings"

	"github.com/spf13/cobra"

	"audiocel/internal/app"
	"audiocel/internal/launch"
)

func init() { rootCmd.AddCommand(runCmd) }

// runCmd starts one preset directly, skipping the menu.
var runCmd = &cobra.Command{
	Use:   "run <audio|audio-mirror|mirror>",
	Short: "Inicia o scrcpy com um modo predefinido, sem o menu",
	Long:  "Modos: audio (--no-video --no-control), audio-mirror (padrões do scrcpy), mirror (--no-audio).",
	Args:  cobra.ExactArgs(1),
	ValidArgsFunction: func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		names := make([]string, 0, len(launch.Presets))
		for _, p := range launch.Presets {
			if strings.HasPrefix(p.Name(), toComplete) {
				names = append(names, p.Name())
			}
		}
		return names, cobra.ShellCompDirectiveNoFileComp
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		preset, err := launch.Resolve(args[0])
		if err != nil {
			return err
		}
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		a := app.New(cfg)
		if err := a.Installer().EnsureInstalled(cmd.Context()); err != nil {
			return err
		}
		if err := a.Checker().EnsureVisible(cmd.Context()); err != nil {
			return err
		}
		_, err = a.Launcher().Launch(cmd.Context(), preset)
		return err
	},
}
