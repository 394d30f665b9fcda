package main

import (
	"fmt"
	"os"

	"github.com/sjackson0109/ubuntu-docker-unifi-controller/internal/unifi"
)

func main() {
	if err := unifi.Run(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(unifi.ExitCode(err))
	}
}
