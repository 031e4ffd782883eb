// The main package for the insights-server executable.
package main

import (
	"github.com/brandsight/shopify-insights/cmd"
)

func main() {
	cmd.Execute()
}
