package main

import "github.com/cmmoran/cstgen/cmd"

func main() {
	cmd.Execute()
}
