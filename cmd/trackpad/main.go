// Command trackpad is the command-line client for TrackPad.
package main

import "github.com/pkordes/trackpad/internal/cli"

func main() {
	cli.Execute()
}
