package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"

	"github.com/ziadboudadi/Food-Price-Analysis---ABC-Classification--Algerian-markets/pkg/runtime/terminal"
)

func main() {
	// A .env file may carry FOODPRICES_* overrides; absence is fine.
	_ = godotenv.Load()

	cli := terminal.NewCLI(terminal.Options{
		Output: os.Stdout,
	})

	if err := cli.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
