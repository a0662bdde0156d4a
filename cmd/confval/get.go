package main

import (
	"fmt"

	"github.com/scott-cotton/cli"

	"github.com/confval/go-confval/convert"
)

func get(cfg *GetConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Get.Parse(cc, args)
	if err != nil {
		cfg.Get.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: get requires one argument, a dotted path", cli.ErrUsage)
	}
	path := args[0]
	if path == "" {
		return fmt.Errorf("%w: invalid path \"\"", cli.ErrUsage)
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
		d, err := convert.ToDict(v)
		if err != nil {
			return fmt.Errorf("%s: %w", file, err)
		}
		entry, ok := d.GetPath(path)
		if !ok {
			return fmt.Errorf("%s: no entry at %q", file, path)
		}
		if cfg.Target != "" {
			entry, err = convTo(entry, cfg.Target)
			if err != nil {
				return fmt.Errorf("%s: %w", file, err)
			}
		}
		if err := cfg.writeValue(cc.Out, entry); err != nil {
			return err
		}
	}
	return nil
}
