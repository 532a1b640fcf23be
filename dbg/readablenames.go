// Package dbg provides human-readable debug names for trapmap's internal
// objects. Nothing in this package is required for
// correctness; it exists purely to make traces and rendered maps legible.
package dbg

import (
	"fmt"
	"reflect"
	"strings"

	petname "github.com/dustinkirkland/golang-petname"
)

// This converts arbitrary pointers into random readable names. It flagrantly
// leaks memory but generates the names lazily, so it's not a problem unless
// you're actually using it. This is helpful for turning pointer strings into
// something more easily distinguishable when debugging a trapezoidal map or
// a search DAG by eye.

var memo map[interface{}]string

func init() {
	memo = make(map[interface{}]string)
	// Since the ids are generated in order of demand, we make them
	// nondeterministic to remind the user that the same name doesn't refer
	// to the same object between runs.
	petname.NonDeterministicMode()
}

// Name returns a memoized, human-readable name for obj, keyed by its
// identity. A nil pointer always renders as "Ø".
func Name(obj interface{}) string {
	if obj == nil {
		return "Ø"
	}
	if v := reflect.ValueOf(obj); v.Kind() == reflect.Ptr && v.IsNil() {
		return "Ø"
	}

	if r, ok := memo[obj]; ok {
		return r
	}
	r := fmt.Sprintf("%s%s", strings.Title(petname.Adjective()), strings.Title(petname.Name()))
	memo[obj] = r
	return r
}
