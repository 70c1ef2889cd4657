package domain

import (
	"fmt"
	"path/filepath"
	"strconv"
	"strings"
	"time"
)

type Status string

const (
	Pending    Status = "pending"
	Processing Status = "processing"
	Done       Status = "done"
	Failed     Status = "error"
)

var QualityPresets = map[string]int{
	"seo":      70,
	"balanced": 75,
	"high":     85,
}

// PresetQuality resolves a named quality preset to its numeric value.
func PresetQuality(name string) (int, error) {
	quality, ok := QualityPresets[strings.ToLower(name)]
	if !ok {
		return 0, fmt.Errorf("unknown quality preset %q", name)
	}

	return quality, nil
}

type CropRect struct {
	X int
	Y int
	W int
	H int
}

func (c CropRect) Empty() bool {
	return c.W <= 0 || c.H <= 0
}

// Clamp intersects the rectangle with an image of the given dimensions.
func (c CropRect) Clamp(width, height int) CropRect {
	x := min(max(c.X, 0), width)
	y := min(max(c.Y, 0), height)

	w := min(c.W, width-x)
	h := min(c.H, height-y)

	return CropRect{X: x, Y: y, W: max(w, 0), H: max(h, 0)}
}

// ParseCrop parses an "x,y,w,h" rectangle.
func ParseCrop(s string) (CropRect, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 4 {
		return CropRect{}, fmt.Errorf("invalid crop %q, expected x,y,w,h", s)
	}

	values := make([]int, 4)
	for i, part := range parts {
		v, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil {
			return CropRect{}, fmt.Errorf("invalid crop %q: %w", s, err)
		}
		values[i] = v
	}

	rect := CropRect{X: values[0], Y: values[1], W: values[2], H: values[3]}
	if rect.Empty() {
		return CropRect{}, fmt.Errorf("invalid crop %q, width and height must be positive", s)
	}

	return rect, nil
}

type AspectRatio struct {
	W int
	H int
}

// ParseAspect parses a "W:H" ratio, e.g. "16:9".
func ParseAspect(s string) (AspectRatio, error) {
	parts := strings.Split(s, ":")
	if len(parts) != 2 {
		return AspectRatio{}, fmt.Errorf("invalid aspect ratio %q, expected W:H", s)
	}

	w, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return AspectRatio{}, fmt.Errorf("invalid aspect ratio %q: %w", s, err)
	}

	h, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return AspectRatio{}, fmt.Errorf("invalid aspect ratio %q: %w", s, err)
	}

	if w <= 0 || h <= 0 {
		return AspectRatio{}, fmt.Errorf("invalid aspect ratio %q, sides must be positive", s)
	}

	return AspectRatio{W: w, H: h}, nil
}

// CropFor returns the largest centered crop of this ratio that fits an image
// of the given dimensions.
func (a AspectRatio) CropFor(width, height int) CropRect {
	if a.W <= 0 || a.H <= 0 || width <= 0 || height <= 0 {
		return CropRect{W: width, H: height}
	}

	w := width
	h := w * a.H / a.W
	if h > height {
		h = height
		w = h * a.W / a.H
	}

	return CropRect{X: (width - w) / 2, Y: (height - h) / 2, W: w, H: h}
}

type ConversionRequest struct {
	Source     string
	OutputPath string
	OutputDir  string
	OutputName string
	Quality    int
	Lossless   bool
	Method     int
	Flatten    bool
	Unique     bool
	Crop       *CropRect
	Aspect     *AspectRatio
}

// TargetPath resolves the output location: the explicit path if set, otherwise
// the custom or source-derived name inside the output directory.
func (r *ConversionRequest) TargetPath() string {
	if r.OutputPath != "" {
		return r.OutputPath
	}

	name := r.OutputName
	if name == "" {
		base := filepath.Base(r.Source)
		name = strings.TrimSuffix(base, filepath.Ext(base))
	}

	dir := r.OutputDir
	if dir == "" {
		dir = DefaultOutputDir
	}

	return filepath.Join(dir, name+OutputExtension)
}

type ConversionResult struct {
	Source     string
	OutputPath string
	Width      int
	Height     int
	BytesIn    int64
	BytesOut   int64
	Elapsed    time.Duration
}

// Savings returns the size reduction as a percentage of the input size.
func (r *ConversionResult) Savings() float64 {
	return savingsPercent(r.BytesIn, r.BytesOut)
}

type QueueItem struct {
	Request ConversionRequest
	Width   int
	Height  int
	Status  Status
	Result  *ConversionResult
	Err     error
}

func (i *QueueItem) DisplayName() string {
	if i.Request.OutputName != "" {
		return i.Request.OutputName + OutputExtension
	}

	return filepath.Base(i.Request.Source)
}

func (i *QueueItem) Dimensions() string {
	if i.Request.Crop != nil {
		return fmt.Sprintf("%dx%d", i.Request.Crop.W, i.Request.Crop.H)
	}

	return fmt.Sprintf("%dx%d", i.Width, i.Height)
}

type BatchSummary struct {
	Queued    int
	Converted int
	Failed    int
	BytesIn   int64
	BytesOut  int64
	Elapsed   time.Duration
}

func (s *BatchSummary) Savings() float64 {
	return savingsPercent(s.BytesIn, s.BytesOut)
}

func savingsPercent(in, out int64) float64 {
	if in <= 0 {
		return 0
	}

	return float64(in-out) / float64(in) * 100
}

// FormatBytes renders a byte count in B, KB or MB.
func FormatBytes(n int64) string {
	switch {
	case n >= 1<<20:
		return fmt.Sprintf("%.1f MB", float64(n)/(1<<20))
	case n >= 1<<10:
		return fmt.Sprintf("%.1f KB", float64(n)/(1<<10))
	default:
		return fmt.Sprintf("%d B", n)
	}
}

type FileInfo struct {
	Path     string
	Format   string
	Width    int
	Height   int
	Bytes    int64
	Alpha    bool
	Animated bool
	Frames   int
}

// Settings are the converter defaults persisted between runs.
type Settings struct {
	Quality   int
	Method    int
	OutputDir string
	Lossless  bool
}
