package cli

import (
	"encoding/json"
	"fmt"
	"html/template"
	"io"
	"os"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/ericfisherdev/tasktracker/internal/domain/model"
)

// exportFormats lists the formats accepted by --format.
var exportFormats = []string{"html", "json", "toml", "yaml"}

// exportTask is the serialized shape of a task in every export format.
type exportTask struct {
	ID          int64     `json:"id" yaml:"id" toml:"id"`
	Title       string    `json:"title" yaml:"title" toml:"title"`
	Description string    `json:"description" yaml:"description" toml:"description"`
	Completed   bool      `json:"completed" yaml:"completed" toml:"completed"`
	CreatedAt   time.Time `json:"created_at" yaml:"created_at" toml:"created_at"`
	UpdatedAt   time.Time `json:"updated_at" yaml:"updated_at" toml:"updated_at"`
}

type exportDocument struct {
	ExportedAt time.Time    `json:"exported_at" yaml:"exported_at" toml:"exported_at"`
	Tasks      []exportTask `json:"tasks" yaml:"tasks" toml:"tasks"`
}

func newExportCommand(a *app) *cobra.Command {
	var format, output string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Writes all tasks as HTML, JSON, TOML or YAML",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			if err := a.ensureAuthenticated(ctx); err != nil {
				return err
			}

			tasks, err := a.tasks.List(ctx)
			if err != nil {
				return err
			}

			if output == "" || output == "-" {
				return writeExport(a.opts.Out, format, tasks, time.Now().UTC())
			}

			f, err := os.Create(output)
			if err != nil {
				return fmt.Errorf("create export file: %w", err)
			}
			if err := writeExport(f, format, tasks, time.Now().UTC()); err != nil {
				f.Close()
				return err
			}
			if err := f.Close(); err != nil {
				return fmt.Errorf("close export file: %w", err)
			}

			a.printf("Exported %d tasks to %s\n", len(tasks), output)
			return nil
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "json", "Output format: "+strings.Join(exportFormats, ", "))
	cmd.Flags().StringVarP(&output, "output", "o", "", "Output file (default stdout)")
	return cmd
}

// writeExport serializes tasks to w in the requested format.
func writeExport(w io.Writer, format string, tasks []model.Task, now time.Time) error {
	doc := exportDocument{ExportedAt: now, Tasks: make([]exportTask, 0, len(tasks))}
	for _, t := range tasks {
		doc.Tasks = append(doc.Tasks, exportTask{
			ID:          t.ID,
			Title:       t.Title,
			Description: t.Description,
			Completed:   t.Completed,
			CreatedAt:   t.CreatedAt,
			UpdatedAt:   t.UpdatedAt,
		})
	}

	switch strings.ToLower(format) {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(doc)
	case "yaml", "yml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(doc); err != nil {
			return fmt.Errorf("encode yaml: %w", err)
		}
		return enc.Close()
	case "toml":
		if err := toml.NewEncoder(w).Encode(doc); err != nil {
			return fmt.Errorf("encode toml: %w", err)
		}
		return nil
	case "html":
		return writeHTML(w, tasks, now)
	default:
		return fmt.Errorf("unknown export format %q (want one of %s)", format, strings.Join(exportFormats, ", "))
	}
}

var htmlPage = template.Must(template.New("tasks").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>Tasks</title>
<style>
body { font-family: sans-serif; margin: 2rem; }
table { border-collapse: collapse; width: 100%; }
th, td { border: 1px solid #ccc; padding: .4rem .6rem; vertical-align: top; text-align: left; }
tr.done td { color: #777; }
.placeholder { color: #999; }
</style>
</head>
<body>
<h1>Tasks</h1>
<p>Exported {{.ExportedAt.Format "2006-01-02 15:04 MST"}}</p>
<table>
<thead><tr><th>Id</th><th>Task</th><th>Description</th><th>Status</th></tr></thead>
<tbody>
{{- range .Rows}}
<tr{{if .Completed}} class="done"{{end}}><td>{{.ID}}</td><td>{{.Title}}</td><td>{{.Description}}</td><td>{{.Status}}</td></tr>
{{- end}}
</tbody>
</table>
</body>
</html>
`))

type htmlRow struct {
	ID          int64
	Title       string
	Description template.HTML
	Completed   bool
	Status      string
}

func writeHTML(w io.Writer, tasks []model.Task, now time.Time) error {
	rows := make([]htmlRow, 0, len(tasks))
	for _, t := range tasks {
		rows = append(rows, htmlRow{
			ID:          t.ID,
			Title:       t.Title,
			Description: renderDescription(t),
			Completed:   t.Completed,
			Status:      t.Status(),
		})
	}

	data := struct {
		ExportedAt time.Time
		Rows       []htmlRow
	}{ExportedAt: now, Rows: rows}

	if err := htmlPage.Execute(w, data); err != nil {
		return fmt.Errorf("render html: %w", err)
	}
	return nil
}
