package main

import (
	"embed"
	"os"

	"getthingsdone/internal/cli"
)

//go:embed templates/*
var templatesFS embed.FS

//go:embed static/*
var staticFS embed.FS

func main() {
	if err := cli.Execute(cli.Assets{Templates: templatesFS, Static: staticFS}); err != nil {
		os.Exit(1)
	}
}
