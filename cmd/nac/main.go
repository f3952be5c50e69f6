// SPDX-License-Identifier: Apache-2.0
package main

import (
	"os"

	_ "github.com/tliron/commonlog/simple"

	"nac/cmd/nac/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
