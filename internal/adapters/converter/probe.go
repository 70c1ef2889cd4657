package converter

import (
	"context"
	"fmt"
	"image"
	"image/color"
	"io"
	"os"

	"github.com/jackramireznewacc/webp-converter/internal/core/domain"

	"github.com/deepteams/webp"
)

type WebPProber struct{}

func NewWebPProber() *WebPProber {
	return &WebPProber{}
}

// Probe reads the image header and reports format, dimensions and byte size
// without decoding the pixel data. WebP sources additionally report alpha,
// animation and frame details.
func (p *WebPProber) Probe(_ context.Context, path string) (*domain.FileInfo, error) {
	stat, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrFileAccess, err)
	}

	if stat.IsDir() {
		return nil, fmt.Errorf("%w: %s is a directory", domain.ErrFileAccess, path)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrFileAccess, err)
	}
	defer f.Close()

	config, format, err := image.DecodeConfig(f)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrDecodeFailed, err)
	}

	info := &domain.FileInfo{
		Path:   path,
		Format: format,
		Width:  config.Width,
		Height: config.Height,
		Bytes:  stat.Size(),
		Frames: 1,
		Alpha:  alphaColorModel(config.ColorModel),
	}

	if format == "webp" {
		if _, err := f.Seek(0, io.SeekStart); err == nil {
			if features, err := webp.GetFeatures(f); err == nil {
				info.Format = fmt.Sprintf("webp (%s)", features.Format)
				info.Alpha = features.HasAlpha
				info.Animated = features.HasAnimation
				info.Frames = features.FrameCount
			}
		}
	}

	return info, nil
}

// Only the NRGBA models reliably indicate a real alpha channel; PNG reports
// RGBAModel even for opaque truecolor images.
func alphaColorModel(model color.Model) bool {
	switch model {
	case color.NRGBAModel, color.NRGBA64Model:
		return true
	}

	return false
}
