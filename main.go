package main

import "fast-food/cmd"

func main() {
	cmd.Execute()
}
