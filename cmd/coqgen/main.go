package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/term"

	"github.com/verigate/coqgen/features"
	"github.com/verigate/coqgen/generate"
	"github.com/verigate/coqgen/signature"
	"github.com/verigate/coqgen/vernac"
	"github.com/verigate/coqgen/witsig"
)

func main() {
	var (
		jsonFile    = flag.String("json", "", "Path to a JSON interface signature")
		wasmFile    = flag.String("wasm", "", "Path to a core wasm module")
		modName     = flag.String("m", "", "Module name (default: input file stem)")
		featStr     = flag.String("f", "", "Ordered feature settings (feature or no-feature, comma-separated)")
		reqStr      = flag.String("r", "", "Required target modules, comma-separated, in search order")
		outFile     = flag.String("o", "", "Output file (default stdout)")
		interactive = flag.Bool("i", false, "Interactive preview with feature toggles")
	)
	flag.Parse()

	if (*jsonFile == "") == (*wasmFile == "") {
		fmt.Fprintln(os.Stderr, "Usage: coqgen -json <sig.json> [-m name] [-f feature,...] [-r mod,...] [-o out.v]")
		fmt.Fprintln(os.Stderr, "       coqgen -wasm <mod.wasm> [same flags]")
		fmt.Fprintln(os.Stderr, "       coqgen -json <sig.json> -i  (interactive preview)")
		os.Exit(1)
	}

	input := *jsonFile
	if input == "" {
		input = *wasmFile
	}
	name := *modName
	if name == "" {
		name = strings.TrimSuffix(filepath.Base(input), filepath.Ext(input))
	}

	raw, err := load(*jsonFile, *wasmFile, name)
	if err != nil {
		fatal(err)
	}

	settings, err := parseSettings(*featStr)
	if err != nil {
		fatal(err)
	}
	requires := splitList(*reqStr)

	if *interactive {
		if err := runInteractive(input, raw, settings, requires); err != nil {
			fatal(err)
		}
		return
	}

	if err := run(raw, settings, requires, *outFile); err != nil {
		fatal(err)
	}
}

func load(jsonFile, wasmFile, name string) (signature.Raw, error) {
	if jsonFile != "" {
		f, err := os.Open(jsonFile)
		if err != nil {
			return signature.Raw{}, err
		}
		defer f.Close()
		raw, err := witsig.FromJSON(f)
		if err != nil {
			return signature.Raw{}, err
		}
		if raw.Name == "" {
			raw.Name = name
		}
		return raw, nil
	}

	bin, err := os.ReadFile(wasmFile)
	if err != nil {
		return signature.Raw{}, err
	}
	return witsig.FromWasm(context.Background(), name, bin)
}

func run(raw signature.Raw, settings []features.Setting, requires []string, outFile string) error {
	cfg, dups, err := features.New(settings)
	if err != nil {
		return err
	}
	for _, d := range dups {
		warnf("duplicate feature setting %s ignored (already %v)", d.Setting.Feature, d.Previous)
	}

	mod, err := signature.Normalize(raw, cfg)
	if err != nil {
		return err
	}
	sentences, err := generate.Generate(mod, cfg, requires)
	if err != nil {
		return err
	}
	out := vernac.Render(sentences)

	if outFile == "" {
		_, err := os.Stdout.WriteString(out)
		return err
	}
	return os.WriteFile(outFile, []byte(out), 0o644)
}

func parseSettings(s string) ([]features.Setting, error) {
	names := splitList(s)
	settings := make([]features.Setting, 0, len(names))
	for _, n := range names {
		st, err := features.ParseSetting(n)
		if err != nil {
			return nil, err
		}
		settings = append(settings, st)
	}
	return settings, nil
}

func splitList(s string) []string {
	if s == "" {
		return nil
	}
	var out []string
	for _, p := range strings.Split(s, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func warnf(format string, args ...any) {
	msg := fmt.Sprintf("Warning: "+format, args...)
	if term.IsTerminal(int(os.Stderr.Fd())) {
		msg = warnStyle.Render(msg)
	}
	fmt.Fprintln(os.Stderr, msg)
}

func fatal(err error) {
	msg := fmt.Sprintf("Error: %v", err)
	if term.IsTerminal(int(os.Stderr.Fd())) {
		msg = errStyle.Render(msg)
	}
	fmt.Fprintln(os.Stderr, msg)
	os.Exit(1)
}
