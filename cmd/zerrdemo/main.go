// zerrdemo - Chained-error walkthroughs for the zerr library
package main

import (
	"fmt"
	"os"

	"github.com/zerr-io/zerr"
	"github.com/zerr-io/zerr/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		e := zerr.From(err)
		fmt.Fprintln(os.Stderr, "error:", zerr.String(e))
		os.Exit(zerr.Code(e, 1))
	}
}
