// Command render is an offline harness: it reads a resume document from
// disk (a raw completion payload or clean JSON, fenced or not), sanitizes
// it, and writes the PDF and DOCX renderings next to the input.
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"golang.org/x/sync/errgroup"

	"resume-composer/internal/render"
	"resume-composer/internal/sanitize"
)

func main() {
	in := flag.String("in", "", "input resume JSON (fenced completion output or clean document)")
	outDir := flag.String("out", "", "output directory (default: alongside the input)")
	flag.Parse()

	if *in == "" {
		fmt.Fprintln(os.Stderr, "usage: render -in resume.json [-out dir]")
		os.Exit(2)
	}

	raw, err := os.ReadFile(*in)
	if err != nil {
		fmt.Fprintf(os.Stderr, "read input: %v\n", err)
		os.Exit(2)
	}

	doc, err := sanitize.Resume(string(raw))
	if err != nil {
		fmt.Fprintf(os.Stderr, "sanitize: %v\n", err)
		os.Exit(2)
	}

	dir := *outDir
	if dir == "" {
		dir = filepath.Dir(*in)
	}

	engine := render.NewEngine(render.DefaultStyle())

	var g errgroup.Group
	for _, format := range []render.Format{render.FormatPDF, render.FormatDOCX} {
		g.Go(func() error {
			out, err := engine.Render(doc, format)
			if err != nil {
				return err
			}
			path := filepath.Join(dir, render.OutputFilename(doc.Name, format))
			if err := os.WriteFile(path, out, 0o644); err != nil {
				return err
			}
			fmt.Printf("wrote %s (%d bytes)\n", path, len(out))
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		fmt.Fprintf(os.Stderr, "render: %v\n", err)
		os.Exit(1)
	}
}
