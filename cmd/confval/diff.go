package main

import (
	"fmt"

	"github.com/scott-cotton/cli"
	"github.com/sergi/go-diff/diffmatchpatch"

	"github.com/confval/go-confval/encode"
	"github.com/confval/go-confval/value"
)

func diff(cfg *DiffConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Diff.Parse(cc, args)
	if err != nil {
		cfg.Diff.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: diff requires 2 args, got %v", cli.ErrUsage, args)
	}
	a, err := getObjFile(cfg.MainConfig, cc, args[0])
	if err != nil {
		return fmt.Errorf("error decoding %s: %w", args[0], err)
	}
	b, err := getObjFile(cfg.MainConfig, cc, args[1])
	if err != nil {
		return fmt.Errorf("error decoding %s: %w", args[1], err)
	}
	if value.Equal(a, b) {
		return nil
	}
	dmp := diffmatchpatch.New()
	diffs := dmp.DiffMain(encode.String(a), encode.String(b), false)
	if _, err := fmt.Fprintln(cc.Out, dmp.DiffPrettyText(diffs)); err != nil {
		return err
	}
	return cli.ExitCodeErr(1)
}
