package main

import "github.com/sadopc/worklog/cmd"

func main() {
	cmd.Execute()
}
