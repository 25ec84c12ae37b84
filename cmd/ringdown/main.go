// Command ringdown computes informational diffusivity and characteristic
// speed for gravitational-wave ringdown events, from the built-in catalogue
// or user-supplied posterior parameters.
//
// Usage:
//
//	ringdown                                  # report the whole catalogue
//	ringdown --event GW150914 --json          # one event, machine-readable
//	ringdown --custom "tau_ms=4.0 freq_hz=251" --name "Posterior draw"
package main

import (
	"os"

	"github.com/couchcryptid/ringdown-toolkit/internal/cli"
)

func main() {
	os.Exit(cli.Run(os.Args[1:], os.Stdout, os.Stderr))
}
