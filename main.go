package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	"github.com/peterh/liner"

	"github.com/takoeight0821/kame/config"
	"github.com/takoeight0821/kame/driver"
	"github.com/takoeight0821/kame/render"
	"github.com/takoeight0821/kame/turtle"
	"github.com/takoeight0821/kame/viewer"
)

func main() {
	const (
		inputUsage  = "input script path"
		outputUsage = "write the drawing to a PNG file"
		viewUsage   = "open the drawing in a window"
	)
	var (
		inputPath  string
		outputPath string
		view       bool
	)
	flag.StringVar(&inputPath, "input", "", inputUsage)
	flag.StringVar(&inputPath, "i", "", inputUsage+" (shorthand)")
	flag.StringVar(&outputPath, "output", "", outputUsage)
	flag.StringVar(&outputPath, "o", "", outputUsage+" (shorthand)")
	flag.BoolVar(&view, "view", false, viewUsage)

	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	if inputPath == "" {
		if err := RunPrompt(); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
	} else {
		if err := RunFile(inputPath, outputPath, view, cfg); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	}
}

var history = filepath.Join(xdg.DataHome, "kame", ".kame_history")

// RunPrompt runs the interactive session. Each line is a script fragment
// replayed on one persistent turtle, so state accumulates across lines the
// way it does across commands in a file.
func RunPrompt() error {
	line := liner.NewLiner()
	defer func() {
		if err := os.MkdirAll(filepath.Dir(history), os.ModePerm); err != nil {
			fmt.Fprintln(os.Stderr, err)
		}
		if f, err := os.Create(history); err == nil {
			defer f.Close()
			if _, err := line.WriteHistory(f); err != nil {
				fmt.Fprintln(os.Stderr, err)
			}
		}
		line.Close()
	}()

	if f, err := os.Open(history); err == nil {
		defer f.Close()
		if _, err := line.ReadHistory(f); err != nil {
			fmt.Fprintln(os.Stderr, err)
		}
	}

	machine := turtle.New()
	for {
		input, err := line.Prompt("> ")
		if err != nil {
			if errors.Is(err, io.EOF) || errors.Is(err, liner.ErrPromptAborted) {
				return nil
			}

			return err
		}
		line.AppendHistory(input)

		program, err := driver.ParseSource(input)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)

			continue
		}

		before := machine.Flags()
		machine.Run(program)
		if raised := machine.Flags() &^ before; raised != 0 {
			fmt.Fprintf(os.Stderr, "warning: %v\n", raised)
		}

		x, y := machine.Position()
		pen := "pen up"
		if machine.PenDown() {
			pen = "pen down"
		}
		fmt.Printf("turtle at (%g, %g) heading %g, %s, %d strokes\n",
			x, y, machine.Heading(), pen, len(machine.Scene().Strokes))
	}
}

// RunFile parses and replays one script, then hands the drawing to whichever
// outputs were requested. With no output requested it reports the scene
// summary on stdout.
func RunFile(path, outputPath string, view bool, cfg config.Config) error {
	bytes, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	sc, flags, err := driver.BuildSource(string(bytes))
	if err != nil {
		return err
	}
	if flags != 0 {
		fmt.Fprintf(os.Stderr, "warning: %v\n", flags)
	}

	if outputPath != "" {
		opts, err := renderOptions(cfg.Render)
		if err != nil {
			return err
		}
		if err := render.SavePNG(outputPath, sc, opts); err != nil {
			return err
		}
	}

	if view {
		opts, err := viewerOptions(cfg.Viewer)
		if err != nil {
			return err
		}

		return viewer.Run(sc, opts)
	}

	if outputPath == "" {
		bounds := sc.Bounds
		fmt.Printf("scene bounds (%g, %g)-(%g, %g), %d strokes\n",
			bounds.Min.X, bounds.Min.Y, bounds.Max.X, bounds.Max.Y, len(sc.Strokes))
	}

	return nil
}

func renderOptions(cfg config.Render) (render.Options, error) {
	background, err := config.ParseColor(cfg.Background)
	if err != nil {
		return render.Options{}, err
	}

	return render.Options{
		Width:      cfg.Width,
		Height:     cfg.Height,
		Margin:     float32(cfg.Margin),
		Background: background,
	}, nil
}

func viewerOptions(cfg config.Viewer) (viewer.Options, error) {
	background, err := config.ParseColor(cfg.Background)
	if err != nil {
		return viewer.Options{}, err
	}

	return viewer.Options{
		Width:      cfg.Width,
		Height:     cfg.Height,
		Background: background,
		Antialias:  cfg.Antialias,
	}, nil
}
