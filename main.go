package main

import "bookledger/cmd"

func main() {
	cmd.Execute()
}
