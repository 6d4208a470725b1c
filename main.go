package main

import "github.com/taskline/taskline/cmd"

func main() {
	cmd.Execute()
}
