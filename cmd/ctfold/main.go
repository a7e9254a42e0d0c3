// cmd/ctfold/main.go
package main

import (
	"ctfold/internal/app"
	"ctfold/internal/appshell"
)

func main() { appshell.Main(app.RunContext) }
