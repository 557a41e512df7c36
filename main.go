package main

import (
	"fmt"
	"os"

	"fjacquet/pdf2firefly/cmd/batch"
	"fjacquet/pdf2firefly/cmd/convert"
	"fjacquet/pdf2firefly/cmd/root"
	"fjacquet/pdf2firefly/cmd/serve"
	"fjacquet/pdf2firefly/internal/config"
)

func init() {
	// 1. Load environment variables before any logging happens
	config.LoadEnv()

	// 2. Configure the global log level from the environment
	config.ConfigureLogging()

	// 3. Initialize root command
	root.Init()

	// 4. Add all subcommands
	root.Cmd.AddCommand(convert.Cmd)
	root.Cmd.AddCommand(batch.Cmd)
	root.Cmd.AddCommand(serve.Cmd)
}

func main() {
	if err := root.Cmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
