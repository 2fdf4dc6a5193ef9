package printer

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// Printer handles various output formats
type Printer struct {
	out        io.Writer
	outputType OutputType
}

// New creates a new printer with the specified output type
func New(outputType OutputType) *Printer {
	return &Printer{
		out:        os.Stdout,
		outputType: outputType,
	}
}

// SetOutput sets the output writer
func (p *Printer) SetOutput(out io.Writer) {
	p.out = out
}

// PrintJSON prints data in JSON format
func (p *Printer) PrintJSON(data any) error {
	encoder := json.NewEncoder(p.out)
	encoder.SetIndent("", "  ")
	return encoder.Encode(data)
}

// PrintYAML prints data in YAML format
func (p *Printer) PrintYAML(data any) error {
	encoder := yaml.NewEncoder(p.out)
	defer encoder.Close()
	return encoder.Encode(data)
}

// PrintError prints an error message
func PrintError(message string) {
	fmt.Fprintf(os.Stderr, "Error: %s\n", message)
}
