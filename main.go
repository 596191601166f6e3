package main

import "todo-sync/cmd"

func main() {
	cmd.Execute()
}
