package main

import "github.com/fakeyudi/vshell/cmd"

func main() {
	cmd.Execute()
}
