package command

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/jackramireznewacc/webp-converter/internal/core/domain"
	"github.com/jackramireznewacc/webp-converter/internal/core/port"
	"github.com/jackramireznewacc/webp-converter/internal/core/service"

	"github.com/rs/zerolog/log"
)

// Convert builds a conversion queue from the argument list and runs it.
type Convert struct {
	converter port.ImageConverter
	prober    port.ImageProber
	scanner   port.SourceScanner
	reporter  port.Reporter
	store     port.SettingsStore
	command   string
}

func NewConvert(converter port.ImageConverter, prober port.ImageProber, scanner port.SourceScanner,
	reporter port.Reporter, store port.SettingsStore, command string) *Convert {
	return &Convert{converter: converter, prober: prober, scanner: scanner, reporter: reporter,
		store: store, command: command}
}

func (c *Convert) GetCommand() string {
	return c.command
}

func (c *Convert) Run(ctx context.Context, args []string) error {
	defaults := c.store.Load()

	fs := flag.NewFlagSet(c.command, flag.ContinueOnError)
	quality := fs.Int("q", defaults.Quality, "encoding quality, 0-100")
	preset := fs.String("preset", "", "quality preset: seo, balanced or high")
	lossless := fs.Bool("lossless", defaults.Lossless, "encode losslessly, quality is ignored")
	method := fs.Int("m", defaults.Method, "compression effort, 0 (fast) to 6 (small)")
	output := fs.String("o", "", "output directory, or .webp target for a single input")
	crop := fs.String("crop", "", "crop rectangle before encoding, x,y,w,h")
	aspect := fs.String("aspect", "", "center crop to an aspect ratio, e.g. 16:9")
	flatten := fs.Bool("flatten", false, "flatten transparency onto white")
	unique := fs.Bool("unique", false, "keep existing outputs, number new ones instead")
	keywords := fs.String("keywords", "", "space separated keywords to generate output names from")
	save := fs.Bool("save", false, "persist quality, method and output directory as defaults")

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	if fs.NArg() == 0 {
		return errors.New("missing input, pass image files or directories")
	}

	resolvedQuality, err := resolveQuality(fs, *quality, *preset)
	if err != nil {
		return err
	}

	if *method < 0 || *method > domain.MaxMethod {
		return fmt.Errorf("method must be between 0 and %d", domain.MaxMethod)
	}

	cropRect, aspectRatio, err := parseCropFlags(*crop, *aspect)
	if err != nil {
		return err
	}

	var words []string
	if *keywords != "" {
		words = strings.Fields(*keywords)
		if len(words) < 2 {
			return errors.New("name generation needs at least two keywords")
		}
	}

	sources, err := c.expandArgs(fs.Args())
	if err != nil {
		return err
	}

	outputPath, outputDir := splitOutputFlag(*output, defaults.OutputDir)
	if outputPath != "" && len(sources) > 1 {
		return errors.New("-o with a .webp target takes exactly one input")
	}

	l := log.With().Str("command", c.GetCommand()).Int("sources", len(sources)).Logger()
	l.Debug().Msg("building conversion queue")

	batch := service.NewBatch(c.converter, c.prober, c.reporter)
	for _, source := range sources {
		batch.Add(ctx, domain.ConversionRequest{
			Source:     source,
			OutputPath: outputPath,
			OutputDir:  outputDir,
			Quality:    resolvedQuality,
			Lossless:   *lossless,
			Method:     *method,
			Flatten:    *flatten,
			Unique:     *unique,
			Crop:       cropRect,
			Aspect:     aspectRatio,
		})
	}

	if len(words) > 0 {
		generator := domain.NewNameGenerator(words)
		batch.AssignNames(generator.Generate(len(batch.Items())))
	}

	if *save {
		saved := domain.Settings{
			Quality:   resolvedQuality,
			Method:    *method,
			OutputDir: outputDir,
			Lossless:  *lossless,
		}
		if err := c.store.Save(saved); err != nil {
			return err
		}
	}

	summary := batch.Run(ctx)
	if summary.Failed > 0 {
		return fmt.Errorf("%d of %d files failed", summary.Failed, summary.Queued)
	}

	if summary.Converted < summary.Queued {
		return errors.New("conversion run cancelled")
	}

	return nil
}

func (c *Convert) expandArgs(args []string) ([]string, error) {
	var sources []string
	for _, arg := range args {
		expanded, err := c.scanner.Expand(arg)
		if err != nil {
			return nil, err
		}

		sources = append(sources, expanded...)
	}

	return sources, nil
}

// resolveQuality applies a preset unless -q was given explicitly.
func resolveQuality(fs *flag.FlagSet, quality int, preset string) (int, error) {
	resolved := quality

	if preset != "" {
		presetQuality, err := domain.PresetQuality(preset)
		if err != nil {
			return 0, err
		}

		if !flagGiven(fs, "q") {
			resolved = presetQuality
		}
	}

	if resolved < 0 || resolved > domain.MaxQuality {
		return 0, fmt.Errorf("quality must be between 0 and %d", domain.MaxQuality)
	}

	return resolved, nil
}

func flagGiven(fs *flag.FlagSet, name string) bool {
	given := false
	fs.Visit(func(f *flag.Flag) {
		if f.Name == name {
			given = true
		}
	})

	return given
}

func parseCropFlags(crop, aspect string) (*domain.CropRect, *domain.AspectRatio, error) {
	if crop != "" && aspect != "" {
		return nil, nil, errors.New("-crop and -aspect are mutually exclusive")
	}

	if crop != "" {
		rect, err := domain.ParseCrop(crop)
		if err != nil {
			return nil, nil, err
		}

		return &rect, nil, nil
	}

	if aspect != "" {
		ratio, err := domain.ParseAspect(aspect)
		if err != nil {
			return nil, nil, err
		}

		return nil, &ratio, nil
	}

	return nil, nil, nil
}

// splitOutputFlag routes -o to an explicit target path or an output directory
// depending on whether it names a .webp file.
func splitOutputFlag(output, defaultDir string) (path, dir string) {
	if output == "" {
		return "", defaultDir
	}

	if strings.EqualFold(filepath.Ext(output), domain.OutputExtension) {
		return output, ""
	}

	return "", output
}
