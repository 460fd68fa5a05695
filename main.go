package main

import "tubeget/cmd"

func main() {
	cmd.Execute()
}
