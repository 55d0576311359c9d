package main

import "github.com/nodeman/nodeman/src/cmd"

func main() {
	cmd.Execute()
}
