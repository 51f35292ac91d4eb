package main

import (
	"fmt"
	"os"

	"ccs/repl"
)

func main() {
	fmt.Println("ccs repl — one process term per line, :ccs/:vp to switch dialect, :quit to exit")
	repl.Start(os.Stdin, os.Stdout)
}
