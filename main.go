package main

import (
	"os"

	"pdf_splitter/command"
)

func main() {
	os.Exit(command.Main(os.Args))
}
