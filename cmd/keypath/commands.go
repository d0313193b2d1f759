package main

import (
	"context"
	"encoding/base64"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"go.uber.org/zap"

	"honnef.co/go/keypath"
	"honnef.co/go/keypath/editor"
	"honnef.co/go/keypath/pathdata"
	"honnef.co/go/keypath/preview"
)

func runValidate(log *zap.Logger, args []string) error {
	fs := flag.NewFlagSet("validate", flag.ExitOnError)
	fs.Parse(args)
	text, err := readInput(fs)
	if err != nil {
		return err
	}
	if err := pathdata.Validate(text); err != nil {
		fmt.Println(err)
		return errInvalid
	}
	fmt.Println("ok")
	return nil
}

func runUpgrade(log *zap.Logger, args []string) error {
	fs := flag.NewFlagSet("upgrade", flag.ExitOnError)
	fs.Parse(args)
	text, err := readInput(fs)
	if err != nil {
		return err
	}
	out, err := pathdata.Upgrade(text)
	if err != nil {
		return err
	}
	fmt.Println(out)
	return nil
}

func runNormalize(log *zap.Logger, args []string) error {
	fs := flag.NewFlagSet("normalize", flag.ExitOnError)
	width := fs.Int("width", keypath.DefaultCanvasWidth, "canvas `width`")
	height := fs.Int("height", keypath.DefaultCanvasHeight, "canvas `height`")
	fs.Parse(args)
	text, err := readInput(fs)
	if err != nil {
		return err
	}
	if err := keypath.NewDocument().Resize(*width, *height); err != nil {
		return err
	}
	doc, err := pathdata.Parse(text)
	if err != nil {
		return err
	}
	norm := pathdata.Normalize(doc, *width, *height)
	log.Debug("normalized",
		zap.Int("keyframes_in", len(doc.Keyframes)),
		zap.Int("keyframes_out", len(norm.Keyframes)))
	out, err := pathdata.Marshal(norm.Keyframes, norm.Metadata)
	if err != nil {
		return err
	}
	fmt.Println(out)
	return nil
}

// loadConfig loads the configuration file at path, if any.
func loadConfig(log *zap.Logger, path string) (editor.Config, *keypath.Document, error) {
	var f editor.File
	cfg := editor.DefaultConfig()
	if path != "" {
		var err error
		cfg, f, err = editor.LoadConfig(path)
		if err != nil {
			return editor.Config{}, nil, err
		}
	}
	cfg.Logger = log
	doc, err := f.Document()
	if err != nil {
		return editor.Config{}, nil, err
	}
	return cfg, doc, nil
}

func runFit(log *zap.Logger, args []string) error {
	fs := flag.NewFlagSet("fit", flag.ExitOnError)
	configPath := fs.String("config", "", "TOML configuration `file`")
	fs.Parse(args)
	cfg, doc, err := loadConfig(log, *configPath)
	if err != nil {
		return err
	}
	text, err := readInput(fs)
	if err != nil {
		return err
	}
	in, err := pathdata.Parse(text)
	if err != nil {
		return err
	}

	// Replay every keyframe as a stroke drawn with the pointer.
	ed := editor.NewWithDocument(cfg, doc)
	for _, kf := range in.Keyframes {
		if err := ed.AddKeyframe(kf.Frame); err != nil && !errors.Is(err, keypath.ErrKeyframeExists) {
			return err
		}
		if err := ed.Select(doc.KeyframeIndex(kf.Frame)); err != nil {
			return err
		}
		if len(kf.Points) < 2 {
			log.Info("skipping keyframe with too few points", zap.Int("frame", kf.Frame))
			continue
		}
		if ed.EditMode() {
			ed.ToggleEditMode()
		}
		for i, pt := range kf.Points {
			ev := editor.PointerEvent{Pos: keypath.Point(pt)}
			if i == 0 {
				err = ed.OnPointerDown(ev)
			} else {
				err = ed.OnPointerMove(ev)
			}
			if err != nil {
				return err
			}
		}
		if err := ed.OnPointerUp(editor.PointerEvent{}); err != nil {
			return err
		}
	}
	fmt.Println(ed.PathData())
	return nil
}

func runPreview(log *zap.Logger, args []string) error {
	fs := flag.NewFlagSet("preview", flag.ExitOnError)
	configPath := fs.String("config", "", "TOML configuration `file`")
	format := fs.String("format", "", "output format: png, pdf or svg (default from -o, else png)")
	output := fs.String("o", "", "output `file` (default standard output)")
	background := fs.String("background", "", "background image `file`")
	labels := fs.Bool("labels", false, "label frames")
	scale := fs.Float64("scale", 1, "output units per canvas unit")
	fs.Parse(args)

	cfg, doc, err := loadConfig(log, *configPath)
	if err != nil {
		return err
	}
	text, err := readInput(fs)
	if err != nil {
		return err
	}
	ed := editor.NewWithDocument(cfg, doc)
	if *background != "" {
		b, err := os.ReadFile(*background)
		if err != nil {
			return err
		}
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		ed.ApplyBackground(<-editor.DecodeBackground(ctx, base64.StdEncoding.EncodeToString(b)))
	}
	// Applying a background may resize the canvas, so path data is loaded
	// afterwards.
	ed.Load(text)

	opts := preview.Options{
		Sample:     cfg.Sample,
		Background: ed.Background(),
		Scale:      *scale,
		Labels:     *labels,
	}
	if *format == "" {
		*format = strings.TrimPrefix(filepath.Ext(*output), ".")
		if *format == "" {
			*format = "png"
		}
	}
	var render func(io.Writer, *keypath.Document, preview.Options) error
	switch *format {
	case "png":
		render = preview.PNG
	case "pdf":
		render = preview.PDF
	case "svg":
		render = preview.SVG
	default:
		return fmt.Errorf("unknown format %q", *format)
	}

	var w io.Writer = os.Stdout
	if *output != "" {
		f, err := os.Create(*output)
		if err != nil {
			return err
		}
		defer f.Close()
		w = f
	}
	if err := render(w, ed.Document(), opts); err != nil {
		return err
	}
	log.Debug("preview written", zap.String("format", *format), zap.String("output", *output))
	return nil
}
