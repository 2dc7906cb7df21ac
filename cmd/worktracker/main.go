package main

import "github.com/rpggio/worktracker/internal/cli"

func main() {
	cli.Execute()
}
