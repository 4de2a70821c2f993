//go:build !js || !wasm

package env

import "os"

// Get returns the named environment variable and whether it is set.
func Get(name string) (string, bool) {
	return os.LookupEnv(name)
}
