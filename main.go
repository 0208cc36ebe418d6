// TabDeck - a start page deck for your terminal
package main

import "github.com/tabdeck/tabdeck-tui/internal/cli"

func main() {
	cli.Execute()
}
