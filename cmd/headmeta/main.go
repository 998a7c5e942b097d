// Command headmeta renders page descriptors to vue-meta documents and
// computes element identifiers from the command line.
//
//	headmeta render pages/home.yaml          # one JSON document per line
//	headmeta render --indent --site-name Example pages/*.yaml
//	headmeta hid og:title twitter:card        # value<TAB>hid
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
