package main

import (
	"fmt"
	"os"
	"os/user"

	"github.com/fin-tools/report-atlas/pkg/runtime/terminal"
)

func main() {
	usr, _ := user.Current()
	defaultPath := fmt.Sprintf("%s/.report-atlas.ini", usr.HomeDir)

	cli := terminal.NewCLI(terminal.Options{
		ProfilesPath: defaultPath,
		Output:       os.Stdout,
	})

	if err := cli.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
