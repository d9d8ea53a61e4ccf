// Package menu implements the interactive launcher loop: print the options,
// read one selection, dispatch it, repeat until the user quits.
package menu

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"audiocel/internal/launch"
)

// State of the loop.
type State int

const (
	Running State = iota
	Exiting
)

// Selection is a parsed menu choice.
type Selection int

const (
	Invalid Selection = iota
	AudioOnly
	AudioMirror
	MirrorOnly
	Redetect
	Quit
)

// Text is the menu printed before every prompt.
const Text = `
Escolha o modo:
  [1] Somente áudio (sem janela)
  [2] Áudio + espelhamento de tela
  [3] Somente espelhamento (sem áudio)
  [R] Re-detectar dispositivo
  [S] Sair
`

// Parse trims and upper-cases input and maps it to a Selection.
func Parse(input string) Selection {
	switch strings.ToUpper(strings.TrimSpace(input)) {
	case "1":
		return AudioOnly
	case "2":
		return AudioMirror
	case "3":
		return MirrorOnly
	case "R":
		return Redetect
	case "S":
		return Quit
	}
	return Invalid
}

// Actions are the operations the menu dispatches to.
type Actions interface {
	Launch(ctx context.Context, p launch.Preset) error
	Redetect(ctx context.Context) error
}

// Loop drives the menu. Only one action runs at a time; each blocks the
// loop until it returns.
type Loop struct {
	prompt  Prompter
	out     io.Writer
	actions Actions
}

func NewLoop(prompt Prompter, out io.Writer, actions Actions) *Loop {
	return &Loop{prompt: prompt, out: out, actions: actions}
}

// Run loops until the user quits or input ends. Errors returned by
// actions end the loop and are returned as is.
func (l *Loop) Run(ctx context.Context) error {
	state := Running
	for state == Running {
		fmt.Fprint(l.out, Text)
		line, err := l.prompt.Prompt("> ")
		if err != nil {
			if !errors.Is(err, io.EOF) {
				return fmt.Errorf("ler opção: %w", err)
			}
			// closed stdin behaves like [S]
			fmt.Fprintln(l.out)
			line = "S"
		}
		if state, err = l.Step(ctx, Parse(line)); err != nil {
			return err
		}
	}
	return nil
}

// Step dispatches one selection and returns the next state.
func (l *Loop) Step(ctx context.Context, sel Selection) (State, error) {
	switch sel {
	case AudioOnly:
		return Running, l.actions.Launch(ctx, launch.AudioOnly)
	case AudioMirror:
		return Running, l.actions.Launch(ctx, launch.AudioMirror)
	case MirrorOnly:
		return Running, l.actions.Launch(ctx, launch.MirrorOnly)
	case Redetect:
		fmt.Fprintln(l.out, "Recarregando detecção do dispositivo...")
		return Running, l.actions.Redetect(ctx)
	case Quit:
		fmt.Fprintln(l.out, "Saindo...")
		return Exiting, nil
	default:
		fmt.Fprintln(l.out, "Opção inválida.")
		return Running, nil
	}
}
