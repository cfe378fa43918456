package pe

import (
	"fmt"
	"os"
	"strings"
	"sync"

	"github.com/davecgh/go-spew/spew"
)

var (
	PE_DEBUG *bool
	mu       sync.Mutex
)

// Turn debug output on or off regardless of the environment.
func SetDebug(value bool) {
	mu.Lock()
	defer mu.Unlock()

	PE_DEBUG = &value
}

func isDebug() bool {
	mu.Lock()
	defer mu.Unlock()

	if PE_DEBUG == nil {
		// os.Environ() seems very expensive in Go so we cache
		// it.
		value := false
		for _, x := range os.Environ() {
			if strings.HasPrefix(x, "PE_DEBUG=") {
				value = true
				break
			}
		}
		PE_DEBUG = &value
	}

	return *PE_DEBUG
}

func DebugPrint(fmt_str string, v ...interface{}) {
	if isDebug() {
		fmt.Printf(fmt_str, v...)
	}
}

func Debug(arg interface{}) {
	if isDebug() {
		spew.Dump(arg)
	}
}
