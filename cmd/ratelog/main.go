// ratelog - post-processing for worker timing logs.
//
// Worker processes of a verification service each append completion
// timestamps (seconds since epoch, one float per line) to their own log file.
// ratelog discovers the files of a group by shared base name, merges them,
// and derives per-second event rates, summary statistics, and charts.
package main

import (
	"os"

	"github.com/ratelog/ratelog/internal/cli"
)

func main() {
	os.Exit(cli.Execute())
}
