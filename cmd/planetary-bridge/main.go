// Command planetary-bridge is a standalone binary bridging a local MCP
// client on stdin/stdout to either the built-in toolset or a remote
// SSE-session backend.
package main

import (
	"log"
	"os"

	_ "github.com/viant/scy/kms/blowfish"

	"github.com/axion-orbital/planetary-bridge/bridge"
)

func main() {
	if err := bridge.Run(os.Args[1:]); err != nil {
		log.Fatal(err)
	}
}
