package main

import "fasta_buddy_go/cmd"

func main() {
	cmd.Execute() // initialize cobra commands
}
