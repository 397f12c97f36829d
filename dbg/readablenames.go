package dbg

import (
	"fmt"
	"reflect"
	"strings"
	"sync"

	petname "github.com/dustinkirkland/golang-petname"
)

// This converts kernel node pointers into random readable names, which are
// much easier to tell apart than addresses when stepping through a hull. Names
// are kept for as long as the process runs, so this is for debugging only.

var (
	mu   sync.Mutex
	memo = map[interface{}]string{}
)

func init() {
	// Names are handed out in order of demand, so they are nondeterministic to
	// remind the user that a name does not carry over between runs.
	petname.NonDeterministicMode()
}

func Name(obj interface{}) string {
	if obj == nil {
		return "Ø"
	}
	if v := reflect.ValueOf(obj); v.Kind() == reflect.Ptr && v.IsNil() {
		return "Ø"
	}

	mu.Lock()
	defer mu.Unlock()
	if r, ok := memo[obj]; ok {
		return r
	}
	r := fmt.Sprintf("%s%s", strings.Title(petname.Adjective()), strings.Title(petname.Name()))
	memo[obj] = r
	return r
}
