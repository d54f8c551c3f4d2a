package main

import (
	"github.com/nucleobets/backend/internal/cli"
)

func main() {
	cli.Execute()
}
