package main

import (
	"github.com/harrybrwn/roster/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		cmd.Stop(err)
	}
}
