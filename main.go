package main

import "github.com/jsphweid/partgen/cmd"

func main() {
	cmd.Execute()
}
