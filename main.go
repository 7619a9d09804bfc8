package main

import "github.com/urlaubsplaner/urlaubsplaner/cmd"

func main() {
	cmd.Execute()
}
