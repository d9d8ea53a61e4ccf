package cli

import (
	"fmt"

	"github.com/charmbracelet/glamour"
	"github.com/spf13/cobra"
)

const guideMarkdown = `# Conectando o celular via USB

1. **Depuração USB**: em *Configurações > Sobre o telefone*, toque 7 vezes em
   *Número da versão*; depois ative *Opções do desenvolvedor > Depuração USB*.
2. **Autorização**: ao conectar, aceite a impressão digital RSA do PC no
   telefone. Marque *Sempre permitir* para não ver o aviso de novo.
3. **Cabo**: use um cabo USB de dados e selecione *MTP / Transferência de arquivos*.

## Estados do ADB

| estado | significado |
|---|---|
| ` + "`device`" + ` | pronto para uso |
| ` + "`unauthorized`" + ` | aceite o aviso no telefone |
| ` + "`offline`" + ` | reconecte o cabo ou reinicie o ADB |

## Áudio

O encaminhamento de áudio exige Android 11 ou superior. No modo *Somente áudio*
o scrcpy roda sem janela; pressione **Ctrl+C** para voltar ao menu.
`

func init() { rootCmd.AddCommand(guideCmd) }

var guideCmd = &cobra.Command{
	Use:   "guide",
	Short: "Mostra dicas para conectar o celular",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		out, err := renderGuide(80)
		if err != nil {
			return err
		}
		fmt.Fprint(cmd.OutOrStdout(), out)
		return nil
	},
}

func renderGuide(width int) (string, error) {
	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return "", err
	}
	return r.Render(guideMarkdown)
}
