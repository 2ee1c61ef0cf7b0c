package main

import "nathanbeddoewebdev/ecoprint/cmd"

func main() {
	cmd.Execute()
}
