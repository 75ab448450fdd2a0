package main

import (
	"github.com/fairfix/quote-engine/pkg/cli"
)

func main() {
	cli.Execute()
}
