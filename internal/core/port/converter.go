package port

import (
	"context"

	"github.com/jackramireznewacc/webp-converter/internal/core/domain"
)

type ImageConverter interface {
	// Convert decodes the request's source image, applies the requested
	// transforms and encodes it as WebP at the resolved target path.
	Convert(ctx context.Context, request *domain.ConversionRequest) (*domain.ConversionResult, error)
}

type ImageProber interface {
	// Probe reads format, dimensions and byte size of an image file without
	// decoding the pixel data.
	Probe(ctx context.Context, path string) (*domain.FileInfo, error)
}
