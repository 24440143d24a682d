package main

import "country-info/cmd"

func main() {
	cmd.Execute()
}
