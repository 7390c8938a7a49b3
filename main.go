package main

import "github.com/avery-linden/boardtext/cmd"

func main() {
	cmd.Execute()
}
