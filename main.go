package main

import "github.com/Norgate-AV/koremake/cmd"

func main() {
	cmd.Execute()
}
