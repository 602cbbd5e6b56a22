package main

import (
	"os"

	"github.com/idilsaglam/partbill/internal/cli"
)

func main() {
	os.Exit(cli.Main(os.Args[1:]))
}
