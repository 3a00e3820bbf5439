package main

import (
	"github.com/NVIDIA/tdd-katas/pkg/cli"
)

func main() {
	cli.Execute()
}
