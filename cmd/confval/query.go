package main

import (
	"fmt"

	"github.com/expr-lang/expr"
	"github.com/scott-cotton/cli"

	"github.com/confval/go-confval/convert"
	"github.com/confval/go-confval/debug"
)

func query(cfg *QueryConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Query.Parse(cc, args)
	if err != nil {
		cfg.Query.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: query requires one argument, an expression", cli.ErrUsage)
	}
	program, err := expr.Compile(args[0], expr.AllowUndefinedVariables())
	if err != nil {
		return fmt.Errorf("error compiling %q: %w", args[0], err)
	}
	files := args[1:]
	if len(files) == 0 {
		files = []string{"-"}
	}
	for _, file := range files {
		v, err := getObjFile(cfg.MainConfig, cc, file)
		if err != nil {
			return fmt.Errorf("error decoding %s: %w", file, err)
		}
		env, ok := convert.Native(v).(map[string]any)
		if !ok {
			return fmt.Errorf("%s: query requires a dictionary document", file)
		}
		out, err := expr.Run(program, env)
		if err != nil {
			return fmt.Errorf("error querying %s: %w", file, err)
		}
		if debug.Query() {
			debug.LogAny(out)
		}
		res, err := convert.FromNative(out)
		if err != nil {
			// Expression results that have no value form print as-is.
			if _, err := fmt.Fprintln(cc.Out, out); err != nil {
				return err
			}
			continue
		}
		if err := cfg.writeValue(cc.Out, res); err != nil {
			return err
		}
	}
	return nil
}
