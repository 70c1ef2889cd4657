package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"

	"github.com/jackramireznewacc/webp-converter/internal/adapters/console"
	"github.com/jackramireznewacc/webp-converter/internal/adapters/converter"
	"github.com/jackramireznewacc/webp-converter/internal/adapters/file"
	"github.com/jackramireznewacc/webp-converter/internal/adapters/settings"
	"github.com/jackramireznewacc/webp-converter/internal/core/domain"
	"github.com/jackramireznewacc/webp-converter/internal/core/domain/command"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
)

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	viper.AddConfigPath(".")
	viper.SetConfigType("toml")

	viper.SetDefault("converter.quality", domain.DefaultQuality)
	viper.SetDefault("converter.method", domain.DefaultMethod)
	viper.SetDefault("converter.output_dir", domain.DefaultOutputDir)
	viper.SetDefault("converter.lossless", false)
	viper.SetDefault("log.level", "info")

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			log.Fatal().Err(err).Msg("could not read config file")
		}
	}

	var logLevel zerolog.Level

	switch viper.GetString("log.level") {
	case "info":
		logLevel = zerolog.InfoLevel
	case "debug":
		logLevel = zerolog.DebugLevel
	default:
		logLevel = zerolog.InfoLevel
	}

	zerolog.SetGlobalLevel(logLevel)

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	webpConverter := converter.NewWebPConverter()
	webpProber := converter.NewWebPProber()
	reporter := console.NewReporter(os.Stdout)
	store := settings.NewStore()

	registry := &command.Registry{}
	registry.Register(command.NewConvert(webpConverter, webpProber, file.NewScanner(), reporter,
		store, "convert"))
	registry.Register(command.NewInfo(webpProber, os.Stdout, "info"))
	registry.Register(command.NewNames(os.Stdout, "names"))

	name := command.ParseCommand(os.Args[1:])

	switch name {
	case "":
		printUsage()
		os.Exit(1)
	case "-h", "-help", "--help", "help":
		printUsage()
		return
	}

	handler, err := registry.Get(name)
	if err != nil {
		fmt.Fprintf(os.Stderr, "webp-converter: unknown command %q\n\n", name)
		printUsage()
		os.Exit(1)
	}

	if err := handler.Run(ctx, command.ParseCommandArgs(os.Args[1:])); err != nil {
		fmt.Fprintf(os.Stderr, "webp-converter: %v\n", err)
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Fprintf(os.Stderr, `Usage:
  webp-converter convert [options] <file|dir>...   Convert images to WebP
  webp-converter info <file>...                    Show image metadata
  webp-converter names -n <count> <keyword>...     Preview generated output names

Run "webp-converter <command> -h" for command-specific options.
`)
}
