package main

import "volunteer-board/cmd"

func main() {
	cmd.Execute()
}
