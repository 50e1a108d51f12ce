package main

import (
	"os"

	"github.com/odakapp/odak/app"
	"github.com/odakapp/odak/report"
)

func main() {
	odakApp := app.Get()

	if err := odakApp.Run(os.Args); err != nil {
		report.Quit(err)
	}
}
