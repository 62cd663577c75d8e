package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/gdamore/tcell/v2"

	"github.com/luboganev/circular-progress-view/cmd/progressring/internal/termview"
	"github.com/luboganev/circular-progress-view/pkg/errors"
)

func init() {
	RegisterCommand(&Command{
		Name:  "term",
		Short: "Animate the ring in the terminal",
		Long: `Animate the ring live in the terminal using half-block cells.

Keys:
  + / -                Increase or decrease the stroke width
  c                    Cycle the tint
  space                Hide or show the ring
  q, Esc, Ctrl-C       Quit

` + ringFlagsHelp,
		Usage: "progressring term [ring flags]",
		Run:   runTerm,
	})
}

func runTerm(args []string) error {
	res, _, err := parseFlags(args)
	if err != nil {
		return err
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return terminalError(err)
	}
	if err := screen.Init(); err != nil {
		return terminalError(err)
	}
	defer screen.Fini()

	opts := termview.Options{
		Tint:       res.Tint,
		Background: res.Background,
	}
	if res.StrokeWidth != nil {
		opts.StrokeWidth = *res.StrokeWidth
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	return termview.New(screen, opts).Run(ctx)
}

func terminalError(err error) error {
	return &errors.ProgressError{
		Op:   "cmd.term",
		Kind: errors.KindTerminal,
		Err:  fmt.Errorf("failed to open terminal: %w", err),
	}
}
