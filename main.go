package main

import "github.com/whiskerworks/catnip/cmd"

func main() {
	cmd.Execute()
}
