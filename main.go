package main

import "github.com/careloop/assessment/api"

func main() {
	api.MainLoop()
}
