package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/idilsaglam/todomvc/internal/cli"
)

var version = "dev"

func main() {
	// Root flags
	theme := flag.String("theme", "classic", "color theme (classic|neon|mono)")
	showVersion := flag.Bool("version", false, "print version and exit")
	flag.Parse()

	if *showVersion {
		fmt.Println("todomvc " + version)
		os.Exit(0)
	}

	os.Exit(cli.Run(flag.Args(), cli.Options{
		Theme: *theme,
	}))
}
