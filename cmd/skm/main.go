package main

import (
	"sshKeeper/internal/cli"
)

func main() {
	cli.Execute()
}
