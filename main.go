package main

import "github.com/Alijeyrad/complaintdesk/cmd"

func main() {
	cmd.Execute()
}
