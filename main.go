package main

import (
	"github.com/luma/seymour/cmd"
)

func main() {
	cmd.Execute()
}
