package main

import "github.com/moodlens/moodlens/internal/cli"

func main() {
	cli.Execute()
}
