package main

import (
	"fmt"
	"strings"

	"github.com/scott-cotton/cli"

	"github.com/confval/go-confval/convert"
	"github.com/confval/go-confval/debug"
	"github.com/confval/go-confval/parse"
	"github.com/confval/go-confval/value"
)

func conv(cfg *ConvConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Conv.Parse(cc, args)
	if err != nil {
		cfg.Conv.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) != 1 {
		return fmt.Errorf("%w: conv requires one argument, a value literal", cli.ErrUsage)
	}
	if cfg.Target == "" {
		return fmt.Errorf("%w: conv requires -t <kind>", cli.ErrUsage)
	}
	v, err := parse.Parse(args[0])
	if err != nil {
		return fmt.Errorf("error parsing %q: %w", args[0], err)
	}
	if debug.Convert() {
		debug.LogAny(map[string]string{"kind": v.KindName(), "target": cfg.Target})
	}
	res, err := convTo(v, cfg.Target)
	if err != nil {
		return err
	}
	return cfg.writeValue(cc.Out, res)
}

func convTo(v *value.Value, target string) (*value.Value, error) {
	switch strings.ToLower(target) {
	case "boolean", "bool":
		b, err := convert.ToBoolean(v)
		if err != nil {
			return nil, err
		}
		return value.FromBool(b), nil
	case "integer", "int":
		n, err := convert.ToInteger(v)
		if err != nil {
			return nil, err
		}
		return value.FromInt(n), nil
	case "real", "float":
		f, err := convert.ToReal(v)
		if err != nil {
			return nil, err
		}
		return value.FromReal(f), nil
	case "timespan", "duration":
		d, err := convert.ToTimespan(v)
		if err != nil {
			return nil, err
		}
		return value.FromTimespan(d), nil
	case "string":
		return value.FromString(convert.ToString(v)), nil
	case "list":
		elems, err := convert.ToList(v)
		if err != nil {
			return nil, err
		}
		return value.FromList(elems), nil
	case "dictionary", "dict":
		d, err := convert.ToDict(v)
		if err != nil {
			return nil, err
		}
		return value.FromDict(d), nil
	}
	return nil, fmt.Errorf("%w: unknown target kind %q", cli.ErrUsage, target)
}
