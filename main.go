package main

import "github.com/Arshadali10614941/cafe-system/cmd"

func main() {
	cmd.Execute()
}
