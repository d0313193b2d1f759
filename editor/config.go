package editor

import (
	"fmt"

	"github.com/BurntSushi/toml"
	"go.uber.org/zap"

	"honnef.co/go/keypath"
)

// Config configures an [Editor]. Zero fields take their default values.
type Config struct {
	// Logger receives diagnostics. nil discards them.
	Logger *zap.Logger
	Fit    keypath.FitOptions
	Sample keypath.SampleOptions
	// Ratio of display pixels to canvas units. Hit radii are given in display
	// pixels and divided by this. Defaults to 1.
	DisplayScale float64
	// Radius, in display pixels, within which a click selects a keyframe
	// point. Clicks on the path itself use three times this radius. Defaults
	// to 8.
	BaseHitRadius float64
	// Minimum distance, in canvas units, between consecutive stroke points.
	// Defaults to 1.
	MinStrokeDistance float64
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		Logger:            zap.NewNop(),
		Fit:               keypath.DefaultFitOptions(),
		Sample:            keypath.DefaultSampleOptions(),
		DisplayScale:      1,
		BaseHitRadius:     8,
		MinStrokeDistance: 1,
	}
}

func (cfg Config) withDefaults() Config {
	def := DefaultConfig()
	if cfg.Logger == nil {
		cfg.Logger = def.Logger
	}
	if cfg.Fit == (keypath.FitOptions{}) {
		cfg.Fit = def.Fit
	}
	if cfg.DisplayScale <= 0 {
		cfg.DisplayScale = def.DisplayScale
	}
	if cfg.BaseHitRadius <= 0 {
		cfg.BaseHitRadius = def.BaseHitRadius
	}
	if cfg.MinStrokeDistance <= 0 {
		cfg.MinStrokeDistance = def.MinStrokeDistance
	}
	return cfg
}

// hitRadius is the keyframe point hit radius in canvas units.
func (cfg Config) hitRadius() float64 {
	return cfg.BaseHitRadius / cfg.DisplayScale
}

// File is the on-disk form of a configuration, as read by [LoadConfig].
//
//	[sampling]
//	samples_per_segment = 30
//	min_samples = 2
//	max_samples = 100
//
//	[smoothing]
//	enabled = true
//	samples = 10
//
//	[canvas]
//	width = 512
//	height = 512
//	total_frames = 60
//
//	[view]
//	display_scale = 1.0
//	hit_radius = 8.0
//	min_stroke_distance = 1.0
type File struct {
	Sampling struct {
		SamplesPerSegment int `toml:"samples_per_segment"`
		MinSamples        int `toml:"min_samples"`
		MaxSamples        int `toml:"max_samples"`
	} `toml:"sampling"`
	Smoothing struct {
		Enabled *bool `toml:"enabled"`
		Samples int   `toml:"samples"`
	} `toml:"smoothing"`
	Canvas struct {
		Width       int `toml:"width"`
		Height      int `toml:"height"`
		TotalFrames int `toml:"total_frames"`
	} `toml:"canvas"`
	View struct {
		DisplayScale      float64 `toml:"display_scale"`
		HitRadius         float64 `toml:"hit_radius"`
		MinStrokeDistance float64 `toml:"min_stroke_distance"`
	} `toml:"view"`
}

// LoadConfig reads a TOML configuration file. Keys that are absent keep their
// default values; unknown keys are an error.
func LoadConfig(path string) (Config, File, error) {
	var f File
	md, err := toml.DecodeFile(path, &f)
	if err != nil {
		return Config{}, File{}, fmt.Errorf("loading config %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return Config{}, File{}, fmt.Errorf("loading config %s: unknown key %q", path, undecoded[0].String())
	}
	return f.Config(), f, nil
}

// DecodeConfig is like [LoadConfig] but parses TOML text.
func DecodeConfig(text string) (Config, File, error) {
	var f File
	md, err := toml.Decode(text, &f)
	if err != nil {
		return Config{}, File{}, fmt.Errorf("decoding config: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return Config{}, File{}, fmt.Errorf("decoding config: unknown key %q", undecoded[0].String())
	}
	return f.Config(), f, nil
}

// Config converts f into a Config, filling in defaults.
func (f File) Config() Config {
	cfg := DefaultConfig()
	if f.Sampling.SamplesPerSegment > 0 {
		cfg.Sample.SamplesPerSegment = f.Sampling.SamplesPerSegment
	}
	if f.Sampling.MinSamples > 0 {
		cfg.Sample.MinSamples = f.Sampling.MinSamples
	}
	if f.Sampling.MaxSamples > 0 {
		cfg.Sample.MaxSamples = f.Sampling.MaxSamples
	}
	if f.Smoothing.Enabled != nil {
		cfg.Fit.EnableSmoothing = *f.Smoothing.Enabled
	}
	if f.Smoothing.Samples > 0 {
		cfg.Fit.SmoothSamples = f.Smoothing.Samples
	}
	if f.View.DisplayScale > 0 {
		cfg.DisplayScale = f.View.DisplayScale
	}
	if f.View.HitRadius > 0 {
		cfg.BaseHitRadius = f.View.HitRadius
	}
	if f.View.MinStrokeDistance > 0 {
		cfg.MinStrokeDistance = f.View.MinStrokeDistance
	}
	return cfg
}

// Document returns an empty document sized according to the [canvas]
// section. Out-of-range values are rejected.
func (f File) Document() (*keypath.Document, error) {
	doc := keypath.NewDocument()
	if f.Canvas.Width != 0 || f.Canvas.Height != 0 {
		w, h := f.Canvas.Width, f.Canvas.Height
		if w == 0 {
			w = doc.CanvasWidth
		}
		if h == 0 {
			h = doc.CanvasHeight
		}
		if err := doc.Resize(w, h); err != nil {
			return nil, err
		}
	}
	if f.Canvas.TotalFrames != 0 {
		if err := doc.SetTotalFrames(f.Canvas.TotalFrames); err != nil {
			return nil, err
		}
	}
	return doc, nil
}
