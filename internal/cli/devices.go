package cli

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"audiocel/internal/app"
	"audiocel/internal/device"
	"audiocel/internal/ui"
)

func init() { rootCmd.AddCommand(devicesCmd) }

var devicesCmd = &cobra.Command{
	Use:   "devices",
	Short: "Lista os dispositivos vistos pelo ADB",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		a := app.New(cfg)
		if err := a.Installer().EnsureInstalled(cmd.Context()); err != nil {
			return err
		}
		snap, err := a.Checker().Snapshot(cmd.Context())
		if err != nil {
			return err
		}
		fmt.Fprint(cmd.OutOrStdout(), renderSnapshot(snap))
		return nil
	},
}

func renderSnapshot(snap device.Snapshot) string {
	if len(snap.Devices) == 0 {
		out := ui.WarnStyle().Render("Nenhum dispositivo conectado.") + "\n"
		for _, line := range device.Guidance[1:] {
			out += line + "\n"
		}
		return out
	}
	col := lipgloss.NewStyle().Width(22)
	out := ui.Heading(col.Render("SERIAL")+"ESTADO") + "\n"
	for _, d := range snap.Devices {
		state := string(d.State)
		switch d.State {
		case device.StateReady:
			state = ui.AccentBold().Render(state)
		case device.StateUnknown:
			state = ui.WarnStyle().Render(d.Raw)
		default:
			state = ui.WarnStyle().Render(state)
		}
		out += col.Render(d.Serial) + state + "\n"
	}
	if len(snap.Ready()) == 0 {
		out += "\n" + device.Guidance[0] + "\n"
		for _, line := range device.Guidance[1:] {
			out += line + "\n"
		}
	}
	return out
}
