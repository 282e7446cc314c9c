package main

import "github.com/harlequix/hamming3126/cmd"

func main() {
	cmd.Execute()
}
