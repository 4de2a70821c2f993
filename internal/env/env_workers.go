//go:build js && wasm

package env

import "github.com/syumai/workers/cloudflare"

// Get returns the named variable from the Workers runtime environment.
// Cloudflare's env object has no set/unset distinction, so an empty value is
// treated as unset.
func Get(name string) (string, bool) {
	v := cloudflare.Getenv(name)
	return v, v != ""
}
