// cmd/flowcheck/main.go
package main

import (
	"flowcheck/internal/app"
	"flowcheck/internal/appshell"
)

func main() {
	appshell.Main(app.RunContext)
}
