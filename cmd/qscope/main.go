// qscope inspects quantum backend calibration data and runs circuits
// through the runtime service.
package main

import (
	"os"

	"github.com/perclft/QubitScope/cmd/qscope/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
