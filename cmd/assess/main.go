package main

import "github.com/careloop/assessment/cmd/assess/command"

func main() {
	command.Execute()
}
