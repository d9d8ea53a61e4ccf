package cli

import (
	"github.com/spf13/cobra"

	"audiocel/internal/app"
)

func init() { rootCmd.AddCommand(installCmd) }

var installCmd = &cobra.Command{
	Use:   "install",
	Short: "Baixa e extrai o scrcpy, se ainda não estiver instalado",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		return app.New(cfg).Installer().EnsureInstalled(cmd.Context())
	},
}
