// Command g3drender renders a tutorial step without a window and writes
// the last frame as a PNG.
//
// Usage:
//
//	g3drender [-config g3d.toml] [-step teapot] [-width 800] [-height 600]
//	          [-frames 1] [-output teapot.png] [-caption text]
//	          [-texture brick.png] [-v]
//	g3drender -export-obj assets/teapot.obj
//
// Flags override values read from the config file.
package main

import (
	"context"
	"errors"
	"flag"
	"image"
	"image/png"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"strings"

	"github.com/gogpu/gputypes"

	"github.com/gogpu/g3d"
	"github.com/gogpu/g3d/caption"
	"github.com/gogpu/g3d/config"
	"github.com/gogpu/g3d/internal/gpu"
	"github.com/gogpu/g3d/loop"
	"github.com/gogpu/g3d/obj"
	"github.com/gogpu/g3d/shader"
	"github.com/gogpu/g3d/shapes"
	"github.com/gogpu/g3d/texture"
	"github.com/gogpu/g3d/tutorial"
)

func main() {
	var (
		configPath = flag.String("config", "", "TOML config file")
		step       = flag.String("step", "", "step to render: "+strings.Join(tutorial.Names(), ", "))
		width      = flag.Int("width", 0, "image width")
		height     = flag.Int("height", 0, "image height")
		frames     = flag.Int("frames", 0, "frames to render before writing the image")
		output     = flag.String("output", "", "output PNG file")
		text       = flag.String("caption", "", "caption drawn in the bottom-left corner")
		texPath    = flag.String("texture", "", "image file sampled by the texture step")
		exportOBJ  = flag.String("export-obj", "", "write the teapot mesh as OBJ to this file and exit")
		verbose    = flag.Bool("v", false, "log debug output to stderr")
	)
	flag.Parse()

	if *verbose {
		g3d.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
	}

	if *exportOBJ != "" {
		if err := exportTeapot(*exportOBJ); err != nil {
			log.Fatalf("Failed to export: %v", err)
		}
		log.Printf("Teapot written to %s", *exportOBJ)
		return
	}

	cfg := config.Default()
	if *configPath != "" {
		var err error
		if cfg, err = config.Load(*configPath); err != nil {
			log.Fatal(err)
		}
	}
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "step":
			cfg.Step = *step
		case "width":
			cfg.Width = *width
		case "height":
			cfg.Height = *height
		case "frames":
			cfg.Frames = *frames
		case "output":
			cfg.Output = *output
		case "caption":
			cfg.Caption = *text
		case "texture":
			cfg.Texture = *texPath
		}
	})
	if err := cfg.Validate(); err != nil {
		log.Fatal(err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	img, err := render(ctx, cfg)
	if err != nil {
		stop()
		log.Fatalf("Failed to render %s: %v", cfg.Step, err)
	}
	if err := caption.Annotate(img, cfg.Caption); err != nil {
		stop()
		log.Fatalf("Failed to draw caption: %v", err)
	}
	if err := savePNG(cfg.Output, img); err != nil {
		stop()
		log.Fatalf("Failed to save: %v", err)
	}
	log.Printf("%s saved to %s (%dx%d, %d frames)", cfg.Step, cfg.Output, cfg.Width, cfg.Height, cfg.Frames)
}

// render draws cfg.Frames frames of the configured step and returns the
// last one.
func render(ctx context.Context, cfg config.Config) (*image.RGBA, error) {
	loader := shader.NewLoader(os.DirFS("."), cfg.ShaderDir)
	loader.Fallback = shader.Embedded()

	opts := []tutorial.Option{
		tutorial.WithLoader(loader),
		tutorial.WithCamera(cfg.Camera3D()),
		tutorial.WithModel(os.DirFS("."), cfg.Model),
	}
	if cfg.Texture != "" {
		tex, err := loadTexture(cfg.Texture, cfg.TextureSize)
		if err != nil {
			return nil, err
		}
		opts = append(opts, tutorial.WithTexture(tex))
	}
	step, err := tutorial.ByName(cfg.Step, opts...)
	if err != nil {
		return nil, err
	}
	pass, err := step.Pass()
	if err != nil {
		return nil, err
	}

	dev, err := gpu.OpenStandalone()
	if err != nil {
		return nil, err
	}
	defer dev.Close()
	log.Printf("Using %s", dev.Name())

	r := gpu.NewRenderer(dev, gputypes.TextureFormatRGBA8Unorm)
	defer r.Destroy()
	if err := r.SetMemoryBudget(cfg.MemoryMB); err != nil {
		return nil, err
	}
	if err := r.Prepare(pass); err != nil {
		return nil, err
	}

	w, h := uint32(cfg.Width), uint32(cfg.Height) //nolint:gosec // validated positive
	var img *image.RGBA
	lp := loop.New(func(f loop.Frame) error {
		var err error
		img, err = r.RenderImage(w, h, step.Uniforms(f))
		return err
	})

	events := make(chan loop.Event, cfg.Frames+2)
	events <- loop.Resize(cfg.Width, cfg.Height)
	for range cfg.Frames {
		events <- loop.Redraw
	}
	events <- loop.Close
	close(events)

	if err := lp.Run(ctx, events); err != nil {
		return nil, err
	}
	g3d.Logger().Debug("g3drender: gpu memory", "stats", r.MemoryStats().String())
	if img == nil {
		return nil, errors.New("no frame rendered")
	}
	return img, nil
}

// loadTexture decodes the image file at path and resamples it to a
// size by size square.
func loadTexture(path string, size int) (*image.RGBA, error) {
	img, err := texture.Load(os.DirFS(filepath.Dir(path)), filepath.Base(path))
	if err != nil {
		return nil, err
	}
	if b := img.Bounds(); b.Dx() == size && b.Dy() == size {
		return img, nil
	}
	return texture.Resize(img, size, size)
}

func exportTeapot(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := obj.Encode(f, shapes.TeapotTable()); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}

func savePNG(path string, img image.Image) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := png.Encode(f, img); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}
