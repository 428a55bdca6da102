package main

import "s3dropbox/cmd"

func main() {
	cmd.Execute()
}
