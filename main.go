package main

import "time-commander/cmd"

func main() {
	cmd.Execute()
}
