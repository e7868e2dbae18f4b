// SPDX-License-Identifier: MIT

// Command numla generates matrices and runs single matrix operations on JSON
// or YAML matrix documents.
package main

import (
	"context"
	"fmt"
	"os"
)

func main() {
	if err := newApp().Run(context.Background(), os.Args); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
