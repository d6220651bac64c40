package main

import "github.com/stevedore-sh/stevedore/internal/cmd"

func main() {
	cmd.Execute()
}
