package main

import "github.com/OJarrisonn/rlispy/cmd"

func main() {
	cmd.Execute()
}
