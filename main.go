package main

import (
	"os"

	"sablec/cmd"
)

func main() {
	os.Exit(cmd.Execute())
}
