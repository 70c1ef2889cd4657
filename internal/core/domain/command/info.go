package command

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"strings"

	"github.com/jackramireznewacc/webp-converter/internal/core/domain"
	"github.com/jackramireznewacc/webp-converter/internal/core/port"

	"github.com/rs/zerolog/log"
)

// Info prints format, dimensions and size for each named file.
type Info struct {
	prober  port.ImageProber
	out     io.Writer
	command string
}

func NewInfo(prober port.ImageProber, out io.Writer, command string) *Info {
	return &Info{prober: prober, out: out, command: command}
}

func (i *Info) GetCommand() string {
	return i.command
}

func (i *Info) Run(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet(i.command, flag.ContinueOnError)
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	if fs.NArg() == 0 {
		return errors.New("missing input, pass image files")
	}

	l := log.With().Str("command", i.GetCommand()).Int("files", fs.NArg()).Logger()
	l.Debug().Msg("probing files")

	var failed int
	for _, path := range fs.Args() {
		info, err := i.prober.Probe(ctx, path)
		if err != nil {
			failed++
			fmt.Fprintf(i.out, "%s: %v\n", path, err)
			continue
		}

		fmt.Fprintln(i.out, describe(info))
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d files could not be read", failed, fs.NArg())
	}

	return nil
}

func describe(info *domain.FileInfo) string {
	sb := &strings.Builder{}

	fmt.Fprintf(sb, "%s: %s, %dx%d, %s", info.Path, info.Format, info.Width, info.Height,
		domain.FormatBytes(info.Bytes))

	if info.Alpha {
		sb.WriteString(", alpha")
	}

	if info.Animated {
		fmt.Fprintf(sb, ", %d frames", info.Frames)
	}

	return sb.String()
}
