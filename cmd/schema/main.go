// Command schema writes the JSON schema of the biospace config, or checks that a committed copy is current.
package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"

	"github.com/jessevdk/go-flags"

	"github.com/ytgebes/biospace/pkg/config"
)

type options struct {
	Check bool `long:"check" description:"fail if the schema file differs from the generated one"`
	Args  struct {
		Output string `positional-arg-name:"output" description:"schema file path"`
	} `positional-args:"yes"`
}

func main() {
	var opts options
	if _, err := flags.Parse(&opts); err != nil {
		if flagsErr, ok := err.(*flags.Error); ok && flagsErr.Type == flags.ErrHelp {
			os.Exit(0)
		}
		os.Exit(1)
	}

	path := opts.Args.Output
	if path == "" {
		path = "schema.json"
	}

	if err := run(path, opts.Check); err != nil {
		fmt.Fprintf(os.Stderr, "schema: %v\n", err)
		os.Exit(1)
	}
}

func run(path string, check bool) error {
	data, err := render()
	if err != nil {
		return err
	}

	if check {
		current, err := os.ReadFile(path) //nolint:gosec // path comes from the command line
		if err != nil {
			return fmt.Errorf("read %s: %w", path, err)
		}
		if !bytes.Equal(bytes.TrimSpace(current), bytes.TrimSpace(data)) {
			return fmt.Errorf("%s is stale, run go generate ./pkg/config", path)
		}
		fmt.Printf("%s is up to date\n", path)
		return nil
	}

	if err := os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	fmt.Printf("schema written to %s\n", path)
	return nil
}

func render() ([]byte, error) {
	schema, err := config.GenerateSchema()
	if err != nil {
		return nil, fmt.Errorf("generate schema: %w", err)
	}
	data, err := json.MarshalIndent(schema, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal schema: %w", err)
	}
	return append(data, '\n'), nil
}
