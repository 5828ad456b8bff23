package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"quarkstart/internal/platform"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"gopkg.in/yaml.v3"
)

// RenderStreams writes the platform stream list in the requested format.
// Table output highlights the recommended stream.
func RenderStreams(w io.Writer, format OutputFormat, streams []platform.Stream) error {
	switch format {
	case OutputFormatJSON:
		return renderJSON(w, streams)
	case OutputFormatYAML:
		return renderYAML(w, streams)
	default:
		t := newTable(w)
		t.AppendHeader(table.Row{"STREAM", "KEY", "QUARKUS CORE"})
		for _, s := range streams {
			label := s.Label
			if s.Recommended {
				label = text.FgGreen.Sprint(label)
			}
			t.AppendRow(table.Row{label, s.Key, s.QuarkusCoreVersion})
		}
		t.Render()
		return nil
	}
}

// RenderExtensions writes the extension catalog in the requested format.
func RenderExtensions(w io.Writer, format OutputFormat, extensions []platform.Extension) error {
	switch format {
	case OutputFormatJSON:
		return renderJSON(w, extensions)
	case OutputFormatYAML:
		return renderYAML(w, extensions)
	default:
		t := newTable(w)
		t.AppendHeader(table.Row{"ID", "NAME", "CATEGORY"})
		for _, ext := range extensions {
			t.AppendRow(table.Row{ext.ID, ext.Name, ext.Category})
		}
		t.Render()
		return nil
	}
}

// RenderCapabilities writes the discovered capability flags.
func RenderCapabilities(w io.Writer, format OutputFormat, caps platform.Capabilities) error {
	switch format {
	case OutputFormatJSON:
		return renderJSON(w, caps)
	case OutputFormatYAML:
		return renderYAML(w, caps)
	default:
		t := newTable(w)
		t.AppendHeader(table.Row{"PARAMETER", "SUPPORTED"})
		t.AppendRow(table.Row{"no examples (ne)", yesNo(caps.SupportsNoExamplesParameter)})
		t.AppendRow(table.Row{"no starter code (nc)", yesNo(caps.SupportsNoCodeParameter)})
		t.Render()
		return nil
	}
}

func newTable(w io.Writer) table.Writer {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)
	return t
}

func renderJSON(w io.Writer, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, string(data))
	return err
}

func renderYAML(w io.Writer, v any) error {
	data, err := yaml.Marshal(v)
	if err != nil {
		return err
	}
	_, err = w.Write(data)
	return err
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}
