package main

import (
	"github.com/mhowell/gameflow/internal/cli"
)

func main() {
	cli.Execute()
}
