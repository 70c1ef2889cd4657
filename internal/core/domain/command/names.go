package command

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"

	"github.com/jackramireznewacc/webp-converter/internal/core/domain"
)

// Names previews generated output names for a set of keywords.
type Names struct {
	out     io.Writer
	command string
}

func NewNames(out io.Writer, command string) *Names {
	return &Names{out: out, command: command}
}

func (n *Names) GetCommand() string {
	return n.command
}

func (n *Names) Run(_ context.Context, args []string) error {
	fs := flag.NewFlagSet(n.command, flag.ContinueOnError)
	count := fs.Int("n", 10, "number of names to generate")

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	words := fs.Args()
	if len(words) < 2 {
		return errors.New("name generation needs at least two keywords")
	}

	if *count <= 0 {
		return errors.New("-n must be positive")
	}

	fmt.Fprintf(n.out, "%d combinations available for %d keywords\n\n",
		domain.EstimateCombinations(len(words)), len(words))

	generator := domain.NewNameGenerator(words)
	for _, name := range generator.Generate(*count) {
		fmt.Fprintln(n.out, name)
	}

	return nil
}
