package main

import "github.com/snic/snic/cmd/snic/cmd"

func main() {
	cmd.Execute()
}
