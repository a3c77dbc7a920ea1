package main

import "github.com/kerbaras/seriestrack/cmd/tracker"

func main() {
	cmd.Execute()
}
