package main

import "pomoquest/cmd"

func main() {
	cmd.Execute()
}
