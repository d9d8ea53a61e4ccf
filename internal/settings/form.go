package settings

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"audiocel/internal/config"
	"audiocel/internal/ui"
)

// ErrCanceled is returned when the user declines to save.
var ErrCanceled = errors.New("configuração não salva")

// Run launches an interactive form to edit the launcher configuration,
// starting from cur, and writes the result as yaml to path on confirmation.
func Run(path string, cur config.Config) (config.Config, error) {
	next := cur
	save := true

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewNote().Title("audiocel").Description("Configuração salva em "+path),
			huh.NewInput().
				Title("Versão do scrcpy").
				Description("Tag de release, ex.: v3.3.1").
				Value(&next.Version).
				Validate(validateVersion),
			huh.NewInput().
				Title("Diretório das ferramentas").
				Value(&next.ToolsDir).
				Validate(notBlank("informe um diretório")),
			huh.NewSelect[string]().
				Title("Nível de log").
				Options(huh.NewOptions("debug", "info", "warn", "error")...).
				Value(&next.LogLevel),
			huh.NewConfirm().
				Title("Salvar?").
				Value(&save),
		),
	).WithTheme(theme()).WithWidth(64)

	if err := form.Run(); err != nil {
		return cur, err // form canceled or failed
	}
	if !save {
		return cur, ErrCanceled
	}
	next.Version = config.CanonicalVersion(next.Version)
	next.ToolsDir = strings.TrimSpace(next.ToolsDir)
	if err := config.Save(path, next); err != nil {
		return cur, err
	}
	fmt.Printf("\n✓ Configuração salva: %s\n\n", path)
	return next, nil
}

// theme is the Charm theme recolored with the launcher accent.
func theme() *huh.Theme {
	green := ui.Vitesse.Primary
	t := huh.ThemeCharm()
	t.FieldSeparator = lipgloss.NewStyle()
	t.Blurred.Title = t.Blurred.Title.Width(26).Foreground(lipgloss.Color("7"))
	t.Focused.Title = t.Focused.Title.Width(26).Foreground(green).Bold(true)
	t.Blurred.SelectedOption = t.Blurred.SelectedOption.Foreground(lipgloss.Color("243"))
	t.Focused.SelectedOption = lipgloss.NewStyle().Foreground(green)
	t.Focused.Base = t.Focused.Base.BorderForeground(green)
	return t
}

func validateVersion(s string) error {
	s = strings.TrimSpace(s)
	if s == "" {
		return errors.New("informe a versão")
	}
	if strings.ContainsAny(s, `/\ `) {
		return errors.New("versão inválida")
	}
	return nil
}

func notBlank(msg string) func(string) error {
	return func(s string) error {
		if strings.TrimSpace(s) == "" {
			return errors.New(msg)
		}
		return nil
	}
}
