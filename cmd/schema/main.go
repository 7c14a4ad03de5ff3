package main

import (
	"encoding/json"
	"fmt"
	"log"
	"os"

	"github.com/rydeebs/product-browser/pkg/config"
)

func main() {
	schema, err := config.GenerateSchema()
	if err != nil {
		log.Fatalf("failed to generate schema: %v", err)
	}

	data, err := json.MarshalIndent(schema, "", "  ")
	if err != nil {
		log.Fatalf("failed to marshal schema: %v", err)
	}
	data = append(data, '\n')

	// default target is the copy embedded by config verification
	outputPath := "pkg/config/schema.json"
	if len(os.Args) > 1 {
		outputPath = os.Args[1]
	}

	// "-" prints to stdout, useful for diffing against the embedded copy
	if outputPath == "-" {
		if _, err := os.Stdout.Write(data); err != nil {
			log.Fatalf("failed to write schema: %v", err)
		}
		return
	}

	if err := os.WriteFile(outputPath, data, 0o600); err != nil { //nolint:gosec // schema file is not sensitive
		log.Fatalf("failed to write schema file: %v", err)
	}

	fmt.Printf("schema written to %s\n", outputPath)
}
