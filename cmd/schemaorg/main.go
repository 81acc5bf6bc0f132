// Command schemaorg renders Schema.org JSON-LD script elements from YAML or
// JSON record files and checks rendered pages against the bundled schemas.
package main

import (
	"os"

	"go.uber.org/zap"
)

func main() {
	a := newApp()
	if err := a.rootCmd().Execute(); err != nil {
		a.log().Error("command failed", zap.Error(err))
		_ = a.log().Sync()
		os.Exit(1)
	}
}
