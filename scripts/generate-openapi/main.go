package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/goliatone/go-depselect/components/boxes"
)

func main() {
	output := flag.String("output", "", "output file (stdout if empty)")
	basePath := flag.String("base-path", "", "prefix the endpoint is mounted under")
	param := flag.String("param", boxes.DefaultParam, "query parameter carrying the warehouse id")
	flag.Parse()

	opts := boxes.NewOptions(boxes.WithParam(*param))
	pattern := boxes.MountPath(*basePath, boxes.WithParam(*param))

	doc, err := boxes.OpenAPIDocument(pattern, opts)
	if err != nil {
		log.Fatalf("build openapi document: %v", err)
	}
	payload, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		log.Fatalf("encode openapi document: %v", err)
	}
	payload = append(payload, '\n')

	if *output == "" {
		fmt.Print(string(payload))
		return
	}
	if err := os.MkdirAll(filepath.Dir(*output), 0o755); err != nil {
		log.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(*output, payload, 0o644); err != nil {
		log.Fatalf("write output: %v", err)
	}
	fmt.Printf("OpenAPI document written to %s\n", *output)
}
