package raytracer

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"time"
)

// Options select a scenario and where its frames go.
type Options struct {
	Name    string   // scenario name; empty lists the scenarios
	Input   string   // config or script path for "scene" and "script"
	OutDir  string   // output directory, default "."
	Formats []string // extensions such as "ppm", "png", "gif"; "pngs" writes one PNG per frame
	Raw     bool     // also dump the last frame as raw float64 RGB
	Output  OutputOptions
	List    io.Writer // where the scenario list goes, default os.Stdout
}

// ListScenarios writes one "name  description" line per scenario.
func ListScenarios(w io.Writer) {
	for _, s := range Scenarios("") {
		fmt.Fprintf(w, "%-12s%s\n", s.Name(), s.Description())
	}
}

// merge fills unset fields of o from the scenario's own settings.
func (o OutputOptions) merge(from OutputOptions) OutputOptions {
	if o.Gamma <= 0 {
		o.Gamma = from.Gamma
	}
	if o.Scale <= 0 {
		o.Scale = from.Scale
	}
	if o.Caption == "" {
		o.Caption = from.Caption
	}
	if o.GIFDelay <= 0 {
		o.GIFDelay = from.GIFDelay
	}
	return o
}

// Run renders the named scenario and writes every requested format. It
// returns the paths written.
func Run(ctx context.Context, opt Options) ([]string, error) {
	if opt.Name == "" {
		w := opt.List
		if w == nil {
			w = os.Stdout
		}
		ListScenarios(w)
		return nil, nil
	}
	sc, err := lookupScenario(opt.Name, opt.Input)
	if err != nil {
		return nil, err
	}
	if RayLogging {
		resetRayLog()
	}

	start := time.Now()
	frames, err := sc.Render(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", sc.Name(), err)
	}
	Logger().Info("rendered", "scenario", sc.Name(), "frames", len(frames), "time", time.Since(start))
	if RayLogging {
		raysStats()
	}

	base, out := sc.Name(), opt.Output
	formats := opt.Formats
	if o, ok := sc.(outputter); ok {
		cfgOut, cfgOpt := o.Output()
		out = out.merge(cfgOpt)
		if cfgOut != "" {
			ext := filepath.Ext(cfgOut)
			base = strings.TrimSuffix(cfgOut, ext)
			if len(formats) == 0 && ext != "" {
				formats = []string{ext}
			}
		}
	}
	if len(formats) == 0 {
		formats = []string{"ppm"}
	}
	if opt.Raw && !slices.Contains(formats, "raw") {
		formats = append(slices.Clone(formats), "raw")
	}
	dir := opt.OutDir
	if dir == "" {
		dir = "."
	}

	written := make([]string, 0, len(formats))
	for _, f := range formats {
		f = strings.TrimPrefix(strings.ToLower(strings.TrimSpace(f)), ".")
		if f == "" {
			continue
		}
		path := filepath.Join(dir, base+"."+f)
		if f == "pngs" {
			prefix := filepath.Join(dir, base)
			if err := os.MkdirAll(filepath.Dir(prefix), 0o755); err != nil {
				return written, err
			}
			if err := SavePNGSequence16(frames, prefix, out.withDefaults().Gamma); err != nil {
				return written, err
			}
			written = append(written, prefix+"_*.png")
			continue
		}
		if err := SaveFrames(frames, path, out); err != nil {
			return written, err
		}
		Logger().Info("saved", "path", path)
		written = append(written, path)
	}
	return written, nil
}
