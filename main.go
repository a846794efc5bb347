package main

import (
	"github.com/RyanBlaney/sonido-melody/cmd"
)

func main() {
	cmd.Execute()
}
