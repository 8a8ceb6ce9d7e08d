package main

import (
	"context"

	"cardtext/internal/cli"
)

func main() {
	cli.Execute(context.Background())
}
