// Generates the JSON schema for the wooadmin config file. The output is
// committed as pkg/config/schema.json and embedded into the binary, where
// config.Load uses it to verify loaded files. Run through go generate from
// pkg/config after changing config struct tags.
package main

import (
	"encoding/json"
	"fmt"
	"log"
	"os"

	"github.com/invopop/jsonschema"

	"github.com/wootools/wooadmin/pkg/config"
)

func main() {
	schema := jsonschema.Reflect(&config.Config{})

	data, err := json.MarshalIndent(schema, "", "  ")
	if err != nil {
		log.Fatalf("marshal schema: %v", err)
	}

	out := "schema.json"
	if len(os.Args) > 1 {
		out = os.Args[1]
	}
	if err := os.WriteFile(out, data, 0o600); err != nil { //nolint:gosec // schema file is not sensitive
		log.Fatalf("write %s: %v", out, err)
	}

	fmt.Printf("config schema written to %s\n", out)
}
