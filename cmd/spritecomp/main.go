// Command spritecomp composites sprites with the display2d software pipeline.
//
// Usage:
//
//	spritecomp [-scene file.yaml] [-output out.png] [-scale N] [-workers N] [-v]
//
// Without -scene a built-in demo is rendered: a cutout sprite drawn with
// every pixel program. The output format follows the file extension (.png
// or .bmp).
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"image"
	"image/png"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"strings"

	"golang.org/x/image/bmp"
	xdraw "golang.org/x/image/draw"

	"github.com/gogpu/display2d"
	"github.com/gogpu/display2d/internal/scenefile"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx, os.Args[1:], os.Stderr); err != nil {
		slog.Error("spritecomp failed", "error", err)
		os.Exit(1)
	}
}

type config struct {
	scene   string
	output  string
	scale   int
	workers int
	verbose bool
}

func parseFlags(args []string, stderr io.Writer) (config, error) {
	var cfg config
	fs := flag.NewFlagSet("spritecomp", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&cfg.scene, "scene", "", "YAML scene file (default: built-in demo)")
	fs.StringVar(&cfg.output, "output", "sprites.png", "output image (.png or .bmp)")
	fs.IntVar(&cfg.scale, "scale", 1, "nearest-neighbor upscale factor")
	fs.IntVar(&cfg.workers, "workers", 0, "tile workers (0 = GOMAXPROCS)")
	fs.BoolVar(&cfg.verbose, "v", false, "debug logging")
	if err := fs.Parse(args); err != nil {
		return cfg, err
	}
	if cfg.scale < 1 {
		return cfg, fmt.Errorf("-scale must be >= 1, got %d", cfg.scale)
	}
	return cfg, nil
}

func run(ctx context.Context, args []string, stderr io.Writer) error {
	cfg, err := parseFlags(args, stderr)
	if err != nil {
		return err
	}

	level := slog.LevelInfo
	if cfg.verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)
	display2d.SetLogger(logger)

	sc, load, err := loadScene(cfg.scene)
	if err != nil {
		return err
	}

	r, stats, err := sc.Render(ctx, load, display2d.WithWorkers(cfg.workers))
	if err != nil {
		return err
	}
	defer r.Close()

	img := upscale(r.Image(), cfg.scale)
	if err := writeImage(cfg.output, img); err != nil {
		return err
	}

	slog.Info("rendered",
		"output", cfg.output,
		"width", img.Bounds().Dx(), "height", img.Bounds().Dy(),
		"batches", len(sc.Batches),
		"triangles", stats.Triangles,
		"fragments", stats.Fragments,
		"discarded", stats.Discarded)
	return nil
}

func loadScene(path string) (*scenefile.Scene, scenefile.TextureLoader, error) {
	if path == "" {
		return demoScene(), demoLoader, nil
	}
	sc, err := scenefile.Load(path)
	if err != nil {
		return nil, nil, err
	}
	return sc, nil, nil
}

// upscale enlarges img by an integer factor without filtering.
func upscale(img *image.NRGBA, factor int) image.Image {
	if factor == 1 {
		return img
	}
	b := img.Bounds()
	dst := image.NewNRGBA(image.Rect(0, 0, b.Dx()*factor, b.Dy()*factor))
	xdraw.NearestNeighbor.Scale(dst, dst.Bounds(), img, b, xdraw.Src, nil)
	return dst
}

var errUnknownFormat = errors.New("unknown output format")

func writeImage(path string, img image.Image) (err error) {
	var encode func(io.Writer, image.Image) error
	switch strings.ToLower(filepath.Ext(path)) {
	case ".png":
		encode = png.Encode
	case ".bmp":
		encode = bmp.Encode
	default:
		return fmt.Errorf("%w: %q", errUnknownFormat, filepath.Ext(path))
	}

	f, err := os.Create(filepath.Clean(path))
	if err != nil {
		return fmt.Errorf("create output: %w", err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("close output: %w", cerr)
		}
	}()

	if err := encode(f, img); err != nil {
		return fmt.Errorf("encode %s: %w", path, err)
	}
	return nil
}
