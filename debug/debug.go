// Package debug holds diagnostic switches read from the environment.
//
// Each switch is a boolean environment variable parsed once at start up:
//
//	JSONDOC_DEBUG_PARSE   log documents as they are parsed
//	JSONDOC_DEBUG_PATH    log path lookups
//	JSONDOC_DEBUG_SET     log path mutations
//	JSONDOC_DEBUG_PATCH   log patch application
//	JSONDOC_DEBUG_EVAL    log expression evaluation
package debug

import (
	"os"
	"strconv"
)

type debug struct {
	Parse bool
	Path  bool
	Set   bool
	Patch bool
	Eval  bool
}

var d *debug

func init() {
	d = &debug{}
	d.Parse = boolEnv("JSONDOC_DEBUG_PARSE")
	d.Path = boolEnv("JSONDOC_DEBUG_PATH")
	d.Set = boolEnv("JSONDOC_DEBUG_SET")
	d.Patch = boolEnv("JSONDOC_DEBUG_PATCH")
	d.Eval = boolEnv("JSONDOC_DEBUG_EVAL")
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
func Path() bool {
	return d.Path
}
func Set() bool {
	return d.Set
}
func Patch() bool {
	return d.Patch
}
func Eval() bool {
	return d.Eval
}
