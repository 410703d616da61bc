// Command globalclass runs the globalclass analyzer.
//
//	globalclass [-config globalclass.yaml] [-host path/to/host] ./...
package main

import (
	"golang.org/x/tools/go/analysis/singlechecker"

	"github.com/sirkon/globalclass"
)

func main() {
	singlechecker.Main(globalclass.Analyzer)
}
