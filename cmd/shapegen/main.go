// Command shapegen builds the generated shape registry from the SVG asset
// tree. It normalizes multi-slot assets in place, extracts shape geometry,
// and writes the registry package consumed at runtime.
//
// Usage:
//
//	shapegen generate [-config file] [-assets dir] [-out file] [-v]
//	shapegen normalize [-config file] [-assets dir] [-dir dir] [-n] [-v]
//	shapegen preview [-config file] [-assets dir] [-out file] [-cell n] [-columns n] [-all] [-v]
package main

import (
	"flag"
	"fmt"
	"image/png"
	"log"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/patternlab/shapegen"
	"github.com/patternlab/shapegen/internal/gen"
	"github.com/patternlab/shapegen/internal/normalize"
	"github.com/patternlab/shapegen/internal/preview"
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("shapegen: ")
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	var err error
	switch os.Args[1] {
	case "generate":
		err = runGenerate(os.Args[2:])
	case "normalize":
		err = runNormalize(os.Args[2:])
	case "preview":
		err = runPreview(os.Args[2:])
	case "help", "-h", "-help", "--help":
		usage()
		return
	default:
		log.Printf("unknown command %q", os.Args[1])
		usage()
		os.Exit(2)
	}
	if err != nil {
		log.Fatal(err)
	}
}

func usage() {
	fmt.Fprint(os.Stderr, `usage: shapegen <command> [flags]

Commands:
  generate    build the registry and write the generated package
  normalize   inject slot-1 backgrounds into multi-slot assets
  preview     render a contact sheet of the registry

Run "shapegen <command> -h" for command flags.
`)
}

// initLogger routes pipeline logging to stderr. Warnings (dropped regions,
// skipped assets) always show; -v adds per-asset detail.
func initLogger(verbose bool) {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	shapegen.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})))
}

func runGenerate(args []string) error {
	fs := flag.NewFlagSet("generate", flag.ExitOnError)
	var (
		configPath = fs.String("config", "assets/shapegen.yaml", "pipeline config file")
		assetRoot  = fs.String("assets", "assets", "asset root directory")
		out        = fs.String("out", "shapes/shapes.go", "generated file path")
		verbose    = fs.Bool("v", false, "verbose pipeline logging")
	)
	fs.Parse(args)
	initLogger(*verbose)

	cfg, err := gen.LoadConfig(*configPath)
	if err != nil {
		return err
	}
	rep, err := gen.Run(cfg, *assetRoot, *out)
	if err != nil {
		return err
	}

	log.Printf("wrote %s: %d shapes in %d sets (%d backgrounds injected, %d regions dropped)",
		*out, rep.Shapes, len(cfg.Sets), rep.Injected, rep.Dropped)
	for _, s := range rep.Skipped {
		log.Printf("skipped %s", s)
	}
	return nil
}

func runNormalize(args []string) error {
	fs := flag.NewFlagSet("normalize", flag.ExitOnError)
	var (
		configPath = fs.String("config", "assets/shapegen.yaml", "pipeline config file")
		assetRoot  = fs.String("assets", "assets", "asset root directory")
		oneDir     = fs.String("dir", "", "normalize a single directory instead of the configured sets")
		dryRun     = fs.Bool("n", false, "report what would change without writing")
		verbose    = fs.Bool("v", false, "verbose pipeline logging")
	)
	fs.Parse(args)
	initLogger(*verbose)

	var dirs []string
	if *oneDir != "" {
		dirs = []string{*oneDir}
	} else {
		cfg, err := gen.LoadConfig(*configPath)
		if err != nil {
			return err
		}
		for _, sc := range cfg.Sets {
			dirs = append(dirs, filepath.Join(*assetRoot, sc.Dir))
		}
	}

	var opts []normalize.DirOption
	if *dryRun {
		opts = append(opts, normalize.WithDryRun())
	}
	changed := 0
	for _, dir := range dirs {
		rep, err := normalize.Dir(dir, opts...)
		if err != nil {
			return err
		}
		changed += len(rep.Injected)
		for _, name := range rep.Injected {
			if *dryRun {
				log.Printf("%s: would inject background", filepath.Join(dir, name))
			} else {
				log.Printf("%s: background injected", filepath.Join(dir, name))
			}
		}
		for name, ferr := range rep.Failed {
			log.Printf("%s: %v", filepath.Join(dir, name), ferr)
		}
	}
	if changed == 0 {
		log.Print("all assets already normalized")
	}
	return nil
}

func runPreview(args []string) error {
	fs := flag.NewFlagSet("preview", flag.ExitOnError)
	var (
		configPath = fs.String("config", "assets/shapegen.yaml", "pipeline config file")
		assetRoot  = fs.String("assets", "assets", "asset root directory")
		out        = fs.String("out", "preview.png", "output image path")
		cell       = fs.Int("cell", 96, "cell size in pixels")
		columns    = fs.Int("columns", 8, "grid columns")
		all        = fs.Bool("all", false, "include disabled sets")
		verbose    = fs.Bool("v", false, "verbose pipeline logging")
	)
	fs.Parse(args)
	initLogger(*verbose)

	cfg, err := gen.LoadConfig(*configPath)
	if err != nil {
		return err
	}
	reg, _, err := gen.Build(cfg, *assetRoot)
	if err != nil {
		return err
	}
	img, err := preview.Sheet(reg, preview.Options{Cell: *cell, Columns: *columns, All: *all})
	if err != nil {
		return err
	}

	f, err := os.Create(*out)
	if err != nil {
		return err
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	log.Printf("wrote %s", *out)
	return nil
}
