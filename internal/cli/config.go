package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	cfg "audiocel/internal/config"
	"audiocel/internal/settings"
)

func init() { rootCmd.AddCommand(configCmd) }

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Mostra a configuração efetiva",
	Long:  "Mostra a configuração efetiva (padrões + arquivo + variáveis AUDIOCEL_*) e o local do arquivo de configuração.",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		path, err := cfg.FilePath()
		if err != nil {
			return err
		}
		current, err := loadConfig()
		if err != nil {
			return err
		}
		if configWizard {
			_, err := settings.Run(path, current)
			return err
		}
		b, err := yaml.Marshal(current)
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "# %s\n", path)
		fmt.Fprint(out, string(b))
		fmt.Fprintf(out, "# download: %s\n# scrcpy:   %s\n# adb:      %s\n", current.DownloadURL(), current.ScrcpyExe(), current.AdbExe())
		return nil
	},
}

// wizard flag
var configWizard bool

func init() {
	configCmd.Flags().BoolVarP(&configWizard, "wizard", "w", false, "editar a configuração interativamente")
}
