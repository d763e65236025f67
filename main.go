package main

import "github.com/vidnotes/vidnotes/cmd"

func main() {
	cmd.Execute()
}
