package main

import (
	"github.com/consensys/go-binpow/pkg/cmd"
)

func main() {
	cmd.Execute()
}
