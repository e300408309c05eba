// SPDX-License-Identifier: MIT

// Command lvenum enumerates combinations of values described in a YAML
// domain file, and subsets of a list of elements.
//
// Usage:
//
//	lvenum product -f domains.yaml [--limit N] [--count] [--distinct]
//	lvenum rank -f domains.yaml value...
//	lvenum at -f domains.yaml rank
//	lvenum powerset [--natural] [--count] [--limit N] element...
//
// Defaults come from the environment: LVENUM_LIMIT, LVENUM_LOG_LEVEL and
// LVENUM_SEPARATOR. Flags win over the environment.
package main

import "os"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
