package main

import "go_pgraster/cmd"

func main() {
	cmd.Execute()
}
