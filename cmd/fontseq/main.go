// Command fontseq compiles a JSON draw script into a bitmap font sequence.
//
// Usage:
//
//	fontseq -script gui.json -pack packs/main -pack packs/legacy [-zip main.zip] [-v]
//
// Generated textures and the font definition are written to every pack.
// The chat component rendering the sequence is printed to stdout.
//
// A script looks like:
//
//	{
//	  "font": "minecraft:gui",
//	  "origin": "top-left",
//	  "frame": {"left": -8, "top": -13, "width": 176, "height": 166},
//	  "ops": [
//	    {"draw": "minecraft:gui/background", "x": 0, "y": 0},
//	    {"origin": "center"},
//	    {"shift": 4},
//	    {"draw": "minecraft:gui/icon", "x": -8, "y": -8}
//	  ]
//	}
package main

import (
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/gogpu/fontseq"
	"github.com/gogpu/fontseq/font"
	"github.com/gogpu/fontseq/pack"
)

func main() {
	log.SetFlags(0)
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		log.Fatalf("fontseq: %v", err)
	}
}

// packFlags collects repeated -pack flags.
type packFlags []string

func (p *packFlags) String() string { return strings.Join(*p, ",") }

func (p *packFlags) Set(v string) error {
	*p = append(*p, v)
	return nil
}

type script struct {
	Font               string         `json:"font"`
	GeneratedNamespace string         `json:"generated_namespace"`
	Origin             string         `json:"origin"`
	Frame              *fontseq.Frame `json:"frame"`
	Ops                []op           `json:"ops"`
}

// op is one script step. Exactly one of Draw, Shift and Origin is set.
type op struct {
	Draw   string `json:"draw"`
	X      int    `json:"x"`
	Y      int    `json:"y"`
	Shift  *int   `json:"shift"`
	Origin string `json:"origin"`
}

func run(args []string, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("fontseq", flag.ContinueOnError)
	fs.SetOutput(stderr)
	var (
		packs      packFlags
		scriptPath = fs.String("script", "", "draw script (JSON)")
		zipPath    = fs.String("zip", "", "bake the first pack into this zip file")
		verbose    = fs.Bool("v", false, "log every glyph")
	)
	fs.Var(&packs, "pack", "resource pack directory (repeatable)")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *scriptPath == "" || len(packs) == 0 {
		fs.Usage()
		return errors.New("-script and at least one -pack are required")
	}

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	fontseq.SetLogger(slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level})))
	defer fontseq.SetLogger(nil)

	sc, err := loadScript(*scriptPath)
	if err != nil {
		return err
	}

	list := pack.NewList()
	dirs := make([]*pack.Dir, len(packs))
	for i, p := range packs {
		dirs[i] = pack.NewDir(p)
		list.Add(dirs[i])
	}

	msg, err := compile(sc, list)
	if err != nil {
		return err
	}
	if err := json.NewEncoder(stdout).Encode(msg); err != nil {
		return err
	}

	if *zipPath != "" {
		hash, err := bake(dirs[0], *zipPath)
		if err != nil {
			return err
		}
		fmt.Fprintf(stderr, "baked %s to %s (sha1 %s)\n", dirs[0].Root(), *zipPath, hash)
	}
	return nil
}

func loadScript(path string) (*script, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var sc script
	if err := json.Unmarshal(data, &sc); err != nil {
		return nil, fmt.Errorf("script %s: %w", path, err)
	}
	if sc.Font == "" {
		return nil, fmt.Errorf("script %s: missing font", path)
	}
	return &sc, nil
}

// compile runs the script and saves one font per pack. It returns the
// component rendering the sequence.
func compile(sc *script, list *pack.List) (any, error) {
	fontKey, err := pack.ParseKey(sc.Font)
	if err != nil {
		return nil, err
	}
	fonts := font.ForList(list, fontKey)

	opts := []fontseq.Option{
		fontseq.WithRegistries(font.Registries(fonts)...),
		fontseq.WithGeneratedNamespace(sc.GeneratedNamespace),
	}
	if sc.Frame != nil {
		opts = append(opts, fontseq.WithOriginResolver(*sc.Frame))
	}
	if sc.Origin != "" {
		o, err := fontseq.ParseOrigin(sc.Origin)
		if err != nil {
			return nil, err
		}
		opts = append(opts, fontseq.WithOrigin(o))
	}
	b := fontseq.NewBuilder(list, opts...)

	for i, o := range sc.Ops {
		if err := apply(b, o); err != nil {
			return nil, fmt.Errorf("op %d: %w", i, err)
		}
	}

	if err := font.SaveAll(list, fonts); err != nil {
		return nil, err
	}
	return fonts[0].Component(b.Build())
}

func apply(b *fontseq.Builder, o op) error {
	switch {
	case o.Draw != "":
		key, err := pack.ParseKey(o.Draw)
		if err != nil {
			return err
		}
		return b.DrawImage(key, o.X, o.Y)
	case o.Shift != nil:
		return b.ShiftRight(*o.Shift)
	case o.Origin != "":
		origin, err := fontseq.ParseOrigin(o.Origin)
		if err != nil {
			return err
		}
		b.SetOrigin(origin)
		return nil
	default:
		return errors.New("empty op")
	}
}

// bake zips d into path. The archive must live outside the pack, or the
// walk would pick up the half-written zip itself.
func bake(d *pack.Dir, path string) (string, error) {
	if within(d.Root(), path) {
		return "", fmt.Errorf("zip %s is inside pack %s", path, d.Root())
	}
	f, err := os.Create(path)
	if err != nil {
		return "", err
	}
	hash, err := d.Bake(f)
	if err != nil {
		_ = f.Close()
		return "", err
	}
	return hash, f.Close()
}

// within reports whether path names root or a file below it.
func within(root, path string) bool {
	absRoot, err := filepath.Abs(root)
	if err != nil {
		return false
	}
	absPath, err := filepath.Abs(path)
	if err != nil {
		return false
	}
	rel, err := filepath.Rel(absRoot, absPath)
	return err == nil && filepath.IsLocal(rel)
}
