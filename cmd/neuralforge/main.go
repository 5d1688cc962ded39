package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	neuralforge "github.com/ansfaiz/NeuralForge"
	"github.com/ansfaiz/NeuralForge/pkg/behaviors"
	"github.com/ansfaiz/NeuralForge/pkg/console"
	"github.com/ansfaiz/NeuralForge/pkg/prefs"
	"github.com/ansfaiz/NeuralForge/pkg/schema"
	"github.com/ansfaiz/NeuralForge/pkg/testsupport"
)

func main() {
	mode := flag.String("mode", "render", "render, form, toggle, or timeline")
	output := flag.String("output", "", "output file (stdout if empty)")
	title := flag.String("title", "NeuralForge", "page title for rendered output")
	prefsPath := flag.String("prefs", defaultPrefsPath(), "preferences file")
	override := flag.String("form-schema", "", "form definition file overriding the embedded contract")
	scrollArg := flag.String("scroll", "400,1200,2400", "comma separated scroll offsets for timeline mode")
	flag.Parse()

	ctx := context.Background()

	opts := []behaviors.Option{behaviors.WithPreferences(prefs.New(*prefsPath))}
	if *override != "" {
		form, err := schema.OverrideFrom(ctx, parseSource(*override))
		if err != nil {
			log.Fatalf("Failed to load form schema: %v", err)
		}
		opts = append(opts, behaviors.WithFormModel(form))
	}

	binder, err := neuralforge.Bind(ctx, testsupport.LandingDocument(), opts...)
	if err != nil {
		log.Fatalf("Failed to bind page: %v", err)
	}
	defer binder.Close()

	switch *mode {
	case "render":
		err = runRender(ctx, binder, *title, *output)
	case "form":
		err = runForm(ctx, binder)
	case "toggle":
		err = runToggle(binder)
	case "timeline":
		err = runTimeline(ctx, binder, *scrollArg, *title, *output)
	default:
		log.Fatalf("unknown mode: %q", *mode)
	}
	if err != nil {
		log.Fatalf("Failed to run %s: %v", *mode, err)
	}
}

func runRender(ctx context.Context, binder *neuralforge.Binder, title, output string) error {
	html, err := neuralforge.RenderHTML(ctx, binder, title)
	if err != nil {
		return err
	}
	return emit(html, output)
}

func runForm(ctx context.Context, binder *neuralforge.Binder) error {
	validator := binder.Validator()
	if validator == nil {
		return fmt.Errorf("document has no contact form")
	}
	session, err := console.NewSession(binder.Form(), validator)
	if err != nil {
		return err
	}
	return session.Run(ctx)
}

func runToggle(binder *neuralforge.Binder) error {
	mode := binder.Theme().Toggle()
	fmt.Printf("Theme is now %s\n", mode)
	return nil
}

func runTimeline(ctx context.Context, binder *neuralforge.Binder, scrollArg, title, output string) error {
	offsets, err := parseOffsets(scrollArg)
	if err != nil {
		return err
	}
	for _, offset := range offsets {
		binder.Scroll(offset)
	}
	binder.Animator().Wait()

	html, err := neuralforge.RenderHTML(ctx, binder, title)
	if err != nil {
		return err
	}
	return emit(html, output)
}

func parseOffsets(raw string) ([]float64, error) {
	var out []float64
	for _, part := range strings.Split(raw, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		offset, err := strconv.ParseFloat(part, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid scroll offset %q", part)
		}
		out = append(out, offset)
	}
	return out, nil
}

func parseSource(raw string) schema.Source {
	path := strings.TrimSpace(raw)
	if strings.HasPrefix(path, "http://") || strings.HasPrefix(path, "https://") {
		return schema.SourceFromURL(path)
	}
	return schema.SourceFromFile(path)
}

func emit(html []byte, output string) error {
	if output != "" {
		if err := os.WriteFile(output, html, 0o644); err != nil {
			return err
		}
		fmt.Printf("Page written to %s\n", output)
		return nil
	}
	fmt.Println(string(html))
	return nil
}

func defaultPrefsPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ".neuralforge/prefs.json"
	}
	return dir + "/neuralforge/prefs.json"
}
