package main

import "github.com/newswatch/newswatch/cmd"

func main() {
	cmd.Execute()
}
