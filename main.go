package main

import "cleanstaff/cmd"

func main() {
	cmd.Execute()
}
