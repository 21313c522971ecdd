package main

import (
	"github.com/localnews-labs/localnews-cli/internal/adapters/driving/cli"
)

func main() {
	cli.Execute()
}
