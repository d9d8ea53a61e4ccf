package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"audiocel/internal/app"
	"audiocel/internal/config"
	"audiocel/internal/system"
	"audiocel/internal/ui"
)

var rootCmd = &cobra.Command{
	Use:   "audiocel",
	Short: "audiocel – áudio e tela do celular no PC via scrcpy",
	Long:  "audiocel baixa o scrcpy, verifica o dispositivo USB via ADB e inicia o scrcpy com um dos modos predefinidos.",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		// Default action: the interactive menu
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		return app.Start(cmd.Context(), cfg)
	},
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the CLI.
func Execute() {
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, ui.ErrorStyle().Render(fmt.Sprintf("Erro: %v", err)))
		os.Exit(1)
	}
}

// loadConfig builds the configuration and applies its log level.
func loadConfig() (config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return config.Config{}, err
	}
	if err := system.SetLevel(cfg.LogLevel); err != nil {
		return config.Config{}, err
	}
	return cfg, nil
}
