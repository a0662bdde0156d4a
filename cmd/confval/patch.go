package main

import (
	"fmt"
	"io"
	"os"

	jsonpatch "github.com/evanphx/json-patch"
	"github.com/scott-cotton/cli"

	"github.com/confval/go-confval/compat"
	"github.com/confval/go-confval/debug"
)

func patch(cfg *PatchConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Patch.Parse(cc, args)
	if err != nil {
		cfg.Patch.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: patch requires 2 arguments, a patch object, and a file to which to apply it", cli.ErrUsage)
	}
	patchData, err := getPatchData(cfg, cc, args[0])
	if err != nil {
		return fmt.Errorf("%w: %w", cli.ErrUsage, err)
	}
	p, err := jsonpatch.DecodePatch(patchData)
	if err != nil {
		return fmt.Errorf("error decoding patch: %w", err)
	}
	if debug.Patch() {
		debug.LogAny(p)
	}
	target, err := getObjFile(cfg.MainConfig, cc, args[1])
	if err != nil {
		return fmt.Errorf("error decoding %s: %w", args[1], err)
	}
	doc, err := compat.ToJSON(target)
	if err != nil {
		return fmt.Errorf("error encoding %s: %w", args[1], err)
	}
	patched, err := p.Apply(doc)
	if err != nil {
		return fmt.Errorf("error patching %s: %w", args[1], err)
	}
	res, err := compat.FromJSON(patched)
	if err != nil {
		return fmt.Errorf("error decoding patched document: %w", err)
	}
	return cfg.writeValue(cc.Out, res)
}

// getPatchData resolves the patch argument to raw JSON: a literal when -s
// is given, a file when -f is given, and a file falling back to a literal
// otherwise.
func getPatchData(cfg *PatchConfig, cc *cli.Context, arg string) ([]byte, error) {
	if cfg.String {
		return []byte(arg), nil
	}
	if !cfg.File {
		if _, err := os.Stat(arg); err != nil {
			return []byte(arg), nil
		}
	}
	if arg == "-" {
		return io.ReadAll(cc.In)
	}
	return os.ReadFile(arg)
}
