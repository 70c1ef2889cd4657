package converter

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"image/color"
	"os"
	"path/filepath"
	"time"

	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	"github.com/jackramireznewacc/webp-converter/internal/adapters/file"
	"github.com/jackramireznewacc/webp-converter/internal/core/domain"

	"github.com/deepteams/webp"
	"github.com/disintegration/imaging"
	"github.com/rs/zerolog/log"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
)

type WebPConverter struct{}

func NewWebPConverter() *WebPConverter {
	return &WebPConverter{}
}

// Convert runs the whole pipeline for one request: read and decode the
// source, crop and flatten as requested, encode to WebP into a staged file
// and publish it at the target path. A failed conversion leaves no output
// behind at any path.
func (c *WebPConverter) Convert(_ context.Context,
	request *domain.ConversionRequest) (*domain.ConversionResult, error) {
	l := log.With().Str("source", request.Source).Logger()
	start := time.Now()

	if err := validateRequest(request); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(request.Source)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrFileAccess, err)
	}

	img, format, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrDecodeFailed, err)
	}

	l.Debug().Str("format", format).Int("bytes", len(data)).Msg("decoded source image")

	img, err = transform(request, img)
	if err != nil {
		return nil, err
	}

	target := request.TargetPath()
	if request.Unique {
		target = file.FreePath(target)
	}

	if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrEncodeFailed, err)
	}

	staged, err := file.StagePath(filepath.Dir(target))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrEncodeFailed, err)
	}

	written, err := encodeStaged(staged, img, request)
	if err != nil {
		return nil, err
	}

	if err := file.Publish(staged, target); err != nil {
		file.Discard(staged)
		return nil, fmt.Errorf("%w: %v", domain.ErrEncodeFailed, err)
	}

	bounds := img.Bounds()
	result := &domain.ConversionResult{
		Source:     request.Source,
		OutputPath: target,
		Width:      bounds.Dx(),
		Height:     bounds.Dy(),
		BytesIn:    int64(len(data)),
		BytesOut:   written,
		Elapsed:    time.Since(start),
	}

	l.Debug().
		Str("output", target).
		Int64("bytesOut", written).
		Dur("elapsed", result.Elapsed).
		Msg("converted image")

	return result, nil
}

func validateRequest(request *domain.ConversionRequest) error {
	if request.Quality < 0 || request.Quality > domain.MaxQuality {
		return fmt.Errorf("%w: quality %d out of range 0-%d",
			domain.ErrEncodeFailed, request.Quality, domain.MaxQuality)
	}

	if request.Method < 0 || request.Method > domain.MaxMethod {
		return fmt.Errorf("%w: method %d out of range 0-%d",
			domain.ErrEncodeFailed, request.Method, domain.MaxMethod)
	}

	return nil
}

func transform(request *domain.ConversionRequest, img image.Image) (image.Image, error) {
	width := img.Bounds().Dx()
	height := img.Bounds().Dy()

	var crop domain.CropRect
	switch {
	case request.Crop != nil:
		crop = request.Crop.Clamp(width, height)
		if crop.Empty() {
			return nil, fmt.Errorf("%w: crop %d,%d,%d,%d lies outside the %dx%d image",
				domain.ErrEncodeFailed, request.Crop.X, request.Crop.Y,
				request.Crop.W, request.Crop.H, width, height)
		}
	case request.Aspect != nil:
		crop = request.Aspect.CropFor(width, height)
	}

	if !crop.Empty() && (crop.X != 0 || crop.Y != 0 || crop.W != width || crop.H != height) {
		img = imaging.Crop(img, image.Rect(crop.X, crop.Y, crop.X+crop.W, crop.Y+crop.H))
	}

	if request.Flatten {
		background := imaging.New(img.Bounds().Dx(), img.Bounds().Dy(), color.White)
		img = imaging.Overlay(background, img, image.Point{}, 1.0)
	}

	return img, nil
}

func encodeStaged(staged string, img image.Image, request *domain.ConversionRequest) (int64, error) {
	opts := webp.DefaultOptions()
	opts.Quality = float32(request.Quality)
	opts.Method = request.Method
	opts.Lossless = request.Lossless

	out, err := os.Create(staged)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", domain.ErrEncodeFailed, err)
	}

	if err := webp.Encode(out, img, opts); err != nil {
		_ = out.Close()
		file.Discard(staged)
		return 0, fmt.Errorf("%w: %v", domain.ErrEncodeFailed, err)
	}

	if err := out.Close(); err != nil {
		file.Discard(staged)
		return 0, fmt.Errorf("%w: %v", domain.ErrEncodeFailed, err)
	}

	stat, err := os.Stat(staged)
	if err != nil {
		file.Discard(staged)
		return 0, fmt.Errorf("%w: %v", domain.ErrEncodeFailed, err)
	}

	return stat.Size(), nil
}
