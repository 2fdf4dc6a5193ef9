package printer_test

import (
	"bytes"
	"testing"

	"github.com/bootstate-dev/bootstate/pkg/printer"
	"github.com/bootstate-dev/bootstate/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTablePrinterRender(t *testing.T) {
	var buf bytes.Buffer
	p := printer.NewTablePrinter(&buf)
	p.SetHeaders("booted", "osname", "checksum")
	p.AddRow("*", "fedora", "abc123def456")

	require.NoError(t, p.Render())
	out := buf.String()
	assert.Contains(t, out, "BOOTED")
	assert.Contains(t, out, "OSNAME")
	assert.Contains(t, out, "fedora")
	assert.Contains(t, out, "abc123def456")
}

func TestTablePrinterNoHeaders(t *testing.T) {
	var buf bytes.Buffer
	p := printer.NewTablePrinter(&buf, printer.WithNoHeaders())
	p.SetHeaders("osname")
	p.AddRow("fedora")

	require.NoError(t, p.Render())
	assert.NotContains(t, buf.String(), "OSNAME")
	assert.Contains(t, buf.String(), "fedora")
}

func TestPrintJSON(t *testing.T) {
	var buf bytes.Buffer
	p := printer.New(printer.OutputTypeJSON)
	p.SetOutput(&buf)

	status := &types.Status{Deployments: []types.Deployment{{Osname: "fedora", Checksum: "abc123", Origin: "o"}}}
	require.NoError(t, p.PrintJSON(status))
	assert.Contains(t, buf.String(), `"deployments"`)
	assert.Contains(t, buf.String(), `"checksum": "abc123"`)
}

func TestPrintYAML(t *testing.T) {
	var buf bytes.Buffer
	p := printer.New(printer.OutputTypeYAML)
	p.SetOutput(&buf)

	status := &types.Status{Deployments: []types.Deployment{{Osname: "fedora", Checksum: "abc123", Origin: "o"}}}
	require.NoError(t, p.PrintYAML(status))
	assert.Contains(t, buf.String(), "deployments:")
	assert.Contains(t, buf.String(), "checksum: abc123")
}

func TestShortChecksum(t *testing.T) {
	assert.Equal(t, "0123456789ab", printer.ShortChecksum("0123456789abcdef0123"))
	assert.Equal(t, "abc123", printer.ShortChecksum("abc123"))
}

func TestFormatBooted(t *testing.T) {
	assert.Equal(t, "*", printer.FormatBooted(true))
	assert.Equal(t, "", printer.FormatBooted(false))
}

func TestFormatOptionalBool(t *testing.T) {
	staged := false
	assert.Equal(t, "<unknown>", printer.FormatOptionalBool(nil))
	assert.Equal(t, "false", printer.FormatOptionalBool(&staged))
}
