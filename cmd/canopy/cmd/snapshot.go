package cmd

import (
	"fmt"
	"image"
	"image/png"
	"os"

	"github.com/go-drift/canopy/cmd/canopy/internal/demo"
	"github.com/go-drift/canopy/pkg/graphics"
	"github.com/go-drift/canopy/pkg/paint"
	"github.com/go-drift/canopy/pkg/platform"
	"github.com/go-drift/canopy/pkg/ui"
)

func init() {
	RegisterCommand(&Command{
		Name:  "snapshot",
		Short: "Render the demo headless to a PNG file",
		Long: `Render the demo application into an in-memory surface and write it
as a PNG file, without opening a window.

An event script replays pointer and key events before the image is taken:

  events:
    - {type: mouse_down, x: 94, y: 105}
    - {type: mouse_up, x: 94, y: 105}
    - {type: key_down, key: escape}

Flags:
  --out FILE       Output image (default: canopy.png)
  --pick FILE      Also write the pick buffer, one color per widget
  --events FILE    YAML event script to replay first
  --size WxH       Surface size (default: window size from canopy.yaml)
  --scale N        Enlarge the written images N times
  --tree           Print the widget tree after the events`,
		Usage: "canopy snapshot [--out FILE] [--pick FILE] [--events FILE] [--size WxH] [--scale N] [--tree]",
		Run:   runSnapshot,
	})
}

type snapshotOptions struct {
	out    string
	pick   string
	events string
	size   graphics.Size
	scale  int
	tree   bool
}

func parseSnapshotArgs(args []string) (snapshotOptions, error) {
	opts := snapshotOptions{out: "canopy.png", scale: 1}
	value := func(i int, flag string) (string, error) {
		if i+1 >= len(args) {
			return "", fmt.Errorf("%s requires a value", flag)
		}
		return args[i+1], nil
	}
	for i := 0; i < len(args); i++ {
		arg := args[i]
		var err error
		switch arg {
		case "--out":
			opts.out, err = value(i, arg)
			i++
		case "--pick":
			opts.pick, err = value(i, arg)
			i++
		case "--events":
			opts.events, err = value(i, arg)
			i++
		case "--size":
			var v string
			if v, err = value(i, arg); err == nil {
				opts.size, err = parseSize(v)
			}
			i++
		case "--scale":
			var v string
			if v, err = value(i, arg); err == nil {
				if _, serr := fmt.Sscanf(v, "%d", &opts.scale); serr != nil || opts.scale < 1 {
					err = fmt.Errorf("invalid scale %q", v)
				}
			}
			i++
		case "--tree":
			opts.tree = true
		default:
			err = fmt.Errorf("unknown flag %q", arg)
		}
		if err != nil {
			return opts, err
		}
	}
	return opts, nil
}

func parseSize(s string) (graphics.Size, error) {
	var w, h int
	if n, err := fmt.Sscanf(s, "%dx%d", &w, &h); err != nil || n != 2 || w <= 0 || h <= 0 {
		return graphics.Size{}, fmt.Errorf("invalid size %q, expected WxH", s)
	}
	return graphics.Sz(w, h), nil
}

func runSnapshot(args []string) error {
	opts, err := parseSnapshotArgs(args)
	if err != nil {
		return err
	}
	cfg, logger, err := loadConfig()
	if err != nil {
		return err
	}

	size := opts.size
	if size.Width == 0 {
		size = cfg.WindowSize()
	}

	source := platform.NewScripted()
	if opts.events != "" {
		if source, err = platform.LoadScript(opts.events); err != nil {
			return err
		}
	}

	display := platform.NewHeadless(size, platform.OrderRGBA)
	app, err := ui.New(ui.Options{
		Display: display,
		Source:  source,
		Config:  cfg,
		Logger:  logger,
	})
	if err != nil {
		return err
	}
	demo.Build(app)
	if err := app.Run(); err != nil {
		return err
	}

	if err := writePNG(opts.out, display.Snapshot(), opts.scale); err != nil {
		return err
	}
	if opts.pick != "" {
		pick := app.PickSurface().(*platform.Memory).Snapshot()
		if err := writePNG(opts.pick, pick, opts.scale); err != nil {
			return err
		}
	}
	if opts.tree {
		if err := app.DumpTree(stdout); err != nil {
			return err
		}
	}

	s := app.Stats()
	fmt.Fprintf(stdout, "wrote %s (%dx%d, %d events, %d frames)\n", opts.out, size.Width, size.Height, s.EventsDispatched, s.Frames)
	return nil
}

func writePNG(path string, img image.Image, scale int) error {
	if scale > 1 {
		b := img.Bounds()
		img = paint.Scale(img, graphics.Sz(b.Dx()*scale, b.Dy()*scale))
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return fmt.Errorf("failed to encode %s: %w", path, err)
	}
	return f.Close()
}
