package main

import (
	"fmt"
	"io"
	"os"

	"github.com/scott-cotton/cli"

	"github.com/mattn/go-isatty"

	"github.com/confval/go-confval/compat"
	"github.com/confval/go-confval/encode"
	"github.com/confval/go-confval/parse"
	"github.com/confval/go-confval/value"
)

type MainConfig struct {
	Color bool `cli:"name=color desc='encode with color'"`

	J bool `cli:"name=j aliases=json desc='do i/o in json'"`
	Y bool `cli:"name=y aliases=yaml desc='do i/o in yaml'"`

	Out      string
	CloseOut func() error

	Main *cli.Command
}

func (cfg *MainConfig) outOpt(cc *cli.Context, a string) (any, error) {
	cfg.Out = a
	if a == "-" {
		return nil, nil
	}
	f, err := os.OpenFile(cfg.Out, os.O_CREATE|os.O_TRUNC|os.O_RDWR, 0644)
	if err != nil {
		return nil, err
	}
	cc.Out = f
	cfg.CloseOut = f.Close
	return nil, nil
}

func (cfg *MainConfig) encOpts(w io.Writer) []encode.EncodeOption {
	var res []encode.EncodeOption
	if cfg.Color {
		return append(res, encode.EncodeColors(encode.NewColors()))
	}
	colorsSet := false
	for _, opt := range cfg.Main.Opts {
		if opt.Name != "color" {
			continue
		}
		colorsSet = opt.Value != nil
		break
	}
	if colorsSet {
		return res
	}
	f, ok := w.(*os.File)
	if !ok {
		return res
	}
	if isatty.IsTerminal(f.Fd()) {
		res = append(res, encode.EncodeColors(encode.NewColors()))
	}
	return res
}

// readValue decodes one input document according to the i/o format flags.
func (cfg *MainConfig) readValue(data []byte) (*value.Value, error) {
	switch {
	case cfg.J:
		return compat.FromJSON(data)
	case cfg.Y:
		return compat.FromYAML(data)
	}
	return parse.Parse(string(data))
}

// writeValue renders v according to the i/o format flags, followed by a
// newline.
func (cfg *MainConfig) writeValue(w io.Writer, v *value.Value) error {
	switch {
	case cfg.J:
		data, err := compat.ToJSON(v)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintf(w, "%s\n", data)
		return err
	case cfg.Y:
		data, err := compat.ToYAML(v)
		if err != nil {
			return err
		}
		_, err = w.Write(data)
		return err
	}
	if err := encode.Encode(v, w, cfg.encOpts(w)...); err != nil {
		return err
	}
	_, err := w.Write([]byte("\n"))
	return err
}

type ViewConfig struct {
	*MainConfig

	View *cli.Command
}

type GetConfig struct {
	*MainConfig
	Target string `cli:"name=t aliases=to desc='coerce the result to a target kind'"`

	Get *cli.Command
}

type ConvConfig struct {
	*MainConfig
	Target string `cli:"name=t aliases=to desc='target kind: boolean, integer, real, timespan, string, list, dictionary'"`

	Conv *cli.Command
}

type DiffConfig struct {
	*MainConfig

	Diff *cli.Command
}

type PatchConfig struct {
	*MainConfig
	String bool `cli:"name=s desc='patch arg as string'"`
	File   bool `cli:"name=f desc='patch arg as file'"`

	Patch *cli.Command
}

type QueryConfig struct {
	*MainConfig

	Query *cli.Command
}
