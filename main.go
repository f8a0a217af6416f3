package main

import (
	"fmt"
	"image"
	"image/color/palette"
	"image/draw"
	"image/gif"
	"image/png"
	"os"
	"os/signal"
	"strings"

	"github.com/urfave/cli"

	"github.com/davkoch/lumen/log"
	"github.com/davkoch/lumen/pkg/renderer"
	"github.com/davkoch/lumen/pkg/scene"
)

var logger = log.New("lumen")

func main() {
	app := cli.NewApp()
	app.Name = "lumen"
	app.Usage = "render scenes using path tracing"
	app.Version = "0.1.0"
	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  "v",
			Usage: "enable verbose logging",
		},
		cli.BoolFlag{
			Name:  "vv",
			Usage: "enable even more verbose logging",
		},
	}
	app.Commands = []cli.Command{
		{
			Name:  "render",
			Usage: "render a single frame to a PNG file",
			Flags: append(renderFlags(),
				cli.StringFlag{
					Name:  "out, o",
					Value: "frame.png",
					Usage: "image filename for the rendered frame",
				},
			),
			Action: renderFrame,
		},
		{
			Name:  "animate",
			Usage: "render a camera path animation to a GIF file",
			Flags: append(renderFlags(),
				cli.StringFlag{
					Name:  "out, o",
					Value: "animation.gif",
					Usage: "image filename for the rendered animation",
				},
				cli.IntFlag{
					Name:  "frames",
					Value: 60,
					Usage: "number of animation frames",
				},
				cli.IntFlag{
					Name:  "fps",
					Value: 15,
					Usage: "animation frames per second",
				},
			),
			Action: renderAnimation,
		},
		{
			Name:   "scenes",
			Usage:  "list available scenes",
			Action: listScenes,
		},
	}

	if err := app.Run(os.Args); err != nil {
		logger.Error(err)
		os.Exit(1)
	}
}

// renderFlags returns the flags shared by the render and animate commands
func renderFlags() []cli.Flag {
	return []cli.Flag{
		cli.StringFlag{
			Name:  "scene, s",
			Value: "default",
			Usage: "scene to render",
		},
		cli.IntFlag{
			Name:  "width",
			Usage: "frame width (0 = scene default)",
		},
		cli.IntFlag{
			Name:  "height",
			Usage: "frame height (0 = scene default)",
		},
		cli.IntFlag{
			Name:  "spp",
			Usage: "samples per pixel (0 = scene default)",
		},
		cli.IntFlag{
			Name:  "max-depth",
			Usage: "maximum ray bounces (0 = scene default)",
		},
		cli.Int64Flag{
			Name:  "seed",
			Value: 42,
			Usage: "random seed for reproducible output",
		},
		cli.IntFlag{
			Name:  "workers",
			Usage: "number of render workers (0 = all CPUs)",
		},
	}
}

// setupLogging configures logger verbosity from the top-level flags
func setupLogging(ctx *cli.Context) {
	if ctx.GlobalBool("vv") {
		log.SetLevel(log.Debug)
	} else if ctx.GlobalBool("v") {
		log.SetLevel(log.Info)
	}
}

// setupRenderer builds the scene and renderer from CLI flags
func setupRenderer(ctx *cli.Context) (*scene.Scene, *renderer.Renderer, error) {
	sc, err := scene.Build(ctx.String("scene"), ctx.Int64("seed"))
	if err != nil {
		return nil, nil, err
	}

	config := sc.Render.Merge(renderer.Config{
		Width:           ctx.Int("width"),
		Height:          ctx.Int("height"),
		SamplesPerPixel: ctx.Int("spp"),
		MaxDepth:        ctx.Int("max-depth"),
		Seed:            ctx.Int64("seed"),
		NumWorkers:      ctx.Int("workers"),
	})

	cameraConfig := sc.Camera
	cameraConfig.AspectRatio = float64(config.Width) / float64(config.Height)

	camera, err := renderer.NewCamera(cameraConfig)
	if err != nil {
		return nil, nil, err
	}

	r, err := renderer.New(sc.World, sc.Background, camera, config)
	if err != nil {
		return nil, nil, err
	}
	return sc, r, nil
}

// renderFrame renders a still frame and encodes it as PNG
func renderFrame(ctx *cli.Context) error {
	setupLogging(ctx)

	sc, r, err := setupRenderer(ctx)
	if err != nil {
		return err
	}

	logger.Noticef("rendering scene %q", sc.Name)
	fb, stats := r.Render()
	logger.Noticef("render completed in %v", stats.Duration)
	fmt.Print(stats.Summary())

	out := ctx.String("out")
	file, err := os.Create(out)
	if err != nil {
		return err
	}
	defer file.Close()

	if err := png.Encode(file, fb.ToImage()); err != nil {
		return fmt.Errorf("failed to encode %s: %w", out, err)
	}

	logger.Noticef("frame saved as %s", out)
	return nil
}

// renderAnimation renders the scene's camera path frame by frame and encodes
// an infinite-loop GIF. SIGINT cancels between frames; completed frames are
// still written out.
func renderAnimation(ctx *cli.Context) error {
	setupLogging(ctx)

	sc, err := scene.Build(ctx.String("scene"), ctx.Int64("seed"))
	if err != nil {
		return err
	}
	if sc.CameraAt == nil {
		return fmt.Errorf("scene %q has no camera path to animate", sc.Name)
	}

	config := sc.Render.Merge(renderer.Config{
		Width:           ctx.Int("width"),
		Height:          ctx.Int("height"),
		SamplesPerPixel: ctx.Int("spp"),
		MaxDepth:        ctx.Int("max-depth"),
		Seed:            ctx.Int64("seed"),
		NumWorkers:      ctx.Int("workers"),
	})

	frames := ctx.Int("frames")
	if frames <= 0 {
		return fmt.Errorf("frame count %d must be positive", frames)
	}
	fps := ctx.Int("fps")
	if fps <= 0 {
		return fmt.Errorf("fps %d must be positive", fps)
	}

	interrupt := make(chan os.Signal, 1)
	signal.Notify(interrupt, os.Interrupt)
	defer signal.Stop(interrupt)

	anim := &gif.GIF{LoopCount: 0}
	delay := 100 / fps // GIF delay is in hundredths of a second

	logger.Noticef("rendering %d frames of scene %q", frames, sc.Name)

frameLoop:
	for frame := 0; frame < frames; frame++ {
		select {
		case <-interrupt:
			logger.Warningf("interrupted after %d frames", frame)
			break frameLoop
		default:
		}

		t := float64(frame) / float64(frames)
		cameraConfig := sc.CameraAt(t)
		cameraConfig.AspectRatio = float64(config.Width) / float64(config.Height)

		camera, err := renderer.NewCamera(cameraConfig)
		if err != nil {
			return err
		}

		r, err := renderer.New(sc.World, sc.Background, camera, config)
		if err != nil {
			return err
		}

		fb, stats := r.Render()
		logger.Infof("frame %d/%d rendered in %v", frame+1, frames, stats.Duration)

		anim.Image = append(anim.Image, quantizeFrame(fb.ToImage()))
		anim.Delay = append(anim.Delay, delay)
	}

	if len(anim.Image) == 0 {
		return fmt.Errorf("no frames rendered")
	}

	out := ctx.String("out")
	file, err := os.Create(out)
	if err != nil {
		return err
	}
	defer file.Close()

	if err := gif.EncodeAll(file, anim); err != nil {
		return fmt.Errorf("failed to encode %s: %w", out, err)
	}

	logger.Noticef("animation saved as %s (%d frames)", out, len(anim.Image))
	return nil
}

// quantizeFrame dithers a rendered frame down to a GIF palette
func quantizeFrame(img *image.RGBA) *image.Paletted {
	bounds := img.Bounds()
	paletted := image.NewPaletted(bounds, palette.Plan9)
	draw.FloydSteinberg.Draw(paletted, bounds, img, image.Point{})
	return paletted
}

func listScenes(ctx *cli.Context) error {
	fmt.Println("Available scenes:")
	fmt.Println("  " + strings.Join(scene.List(), "\n  "))
	return nil
}
