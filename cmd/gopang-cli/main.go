package main

import "github.com/nfrund/gopang/cmd/gopang-cli/cmd"

func main() {
	cmd.Execute()
}
