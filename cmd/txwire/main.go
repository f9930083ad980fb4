package main

import (
	"txwire/cmd/txwire/cmd"
)

func main() {
	cmd.Execute()
}
