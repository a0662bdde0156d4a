package debug

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
)

type debug struct {
	Parse   bool
	Convert bool
	Query   bool
	Patch   bool
}

var d *debug

func init() {
	d = &debug{}
	d.Parse = boolEnv("CONFVAL_DEBUG_PARSE")
	d.Convert = boolEnv("CONFVAL_DEBUG_CONVERT")
	d.Query = boolEnv("CONFVAL_DEBUG_QUERY")
	d.Patch = boolEnv("CONFVAL_DEBUG_PATCH")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Parse() bool {
	return d.Parse
}
func Convert() bool {
	return d.Convert
}
func Query() bool {
	return d.Query
}
func Patch() bool {
	return d.Patch
}

func LogAny(v any) {
	d, err := json.Marshal(v)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", v)
		return
	}
	os.Stderr.Write(d)
}
