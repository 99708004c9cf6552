package main

import "obratrack/cmd"

func main() {
	cmd.Execute()
}
