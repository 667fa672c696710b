package main

import "github.com/jsphweid/cancrizans/cmd"

func main() {
	cmd.Execute()
}
