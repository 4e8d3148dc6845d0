package main

import "github.com/khrees2412/talentdesk/cmd"

func main() {
	cmd.Execute()
}
