package settings

import (
	"errors"
	"fmt"

	"github.com/jackramireznewacc/webp-converter/internal/core/domain"

	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
)

// Store reads and writes converter defaults through the config file.
type Store struct{}

func NewStore() *Store {
	return &Store{}
}

func (s *Store) Load() domain.Settings {
	return domain.Settings{
		Quality:   viper.GetInt("converter.quality"),
		Method:    viper.GetInt("converter.method"),
		OutputDir: viper.GetString("converter.output_dir"),
		Lossless:  viper.GetBool("converter.lossless"),
	}
}

// Save writes the defaults back, creating the config file on first use.
func (s *Store) Save(settings domain.Settings) error {
	viper.Set("converter.quality", settings.Quality)
	viper.Set("converter.method", settings.Method)
	viper.Set("converter.output_dir", settings.OutputDir)
	viper.Set("converter.lossless", settings.Lossless)

	err := viper.WriteConfig()
	if err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return fmt.Errorf("failed to write config file: %w", err)
		}

		err = viper.SafeWriteConfig()
		if err != nil {
			return fmt.Errorf("failed to create config file: %w", err)
		}
	}

	log.Info().Msg("saved converter defaults")

	return nil
}
