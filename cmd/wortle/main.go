package main

import (
	"github.com/wortle/wortle-server/internal/cli"
)

func main() {
	cli.Execute()
}
