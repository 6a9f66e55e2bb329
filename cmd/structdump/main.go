package main

import (
	"fmt"
	"io"
	"os"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func fail(stderr io.Writer, err error) int {
	fmt.Fprintf(stderr, "structdump: %v\n", err)
	return 1
}
