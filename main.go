package main

import "github.com/TonyOlaCodes/tracker/cmd/tracker"

func main() {
	tracker.Execute()
}
