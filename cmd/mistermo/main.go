package main

import "misterMoAPI/cmd/mistermo/root"

func main() {
	root.Execute()
}
