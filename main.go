package main

import "github.com/allen-go/allen/cmd"

func main() {
	cmd.Execute()
}
