package main

import "currency-registry/cmd"

func main() {
	cmd.Execute()
}
