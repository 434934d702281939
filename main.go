package main

import "github.com/lzylstra0325/AMEJoistConverterJSON/cmd"

func main() {
	cmd.Execute()
}
