package ui

import (
	"encoding/json"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/arthur-debert/toss/pkg/history"
	"github.com/arthur-debert/toss/pkg/trash"
	"github.com/arthur-debert/toss/pkg/ui/styles"
)

// historyDoc is the structured form of the history view
type historyDoc struct {
	Path    string           `json:"path" yaml:"path"`
	Records []history.Record `json:"records" yaml:"records"`
}

// RenderHistory writes records, oldest first, in the given format
func (c *Console) RenderHistory(w io.Writer, logPath string, records []history.Record, format Format) error {
	if records == nil {
		records = []history.Record{}
	}

	switch format {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(historyDoc{Path: logPath, Records: records})

	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(historyDoc{Path: logPath, Records: records}); err != nil {
			return err
		}
		return enc.Close()

	default:
		if len(records) == 0 {
			_, err := fmt.Fprintln(w, c.render(styles.Muted, "history is empty"))
			return err
		}
		for _, r := range records {
			when := r.ID
			if t, err := trash.ParseID(r.ID); err == nil {
				when = t.Format("2006-01-02 15:04:05")
			}
			if _, err := fmt.Fprintf(w, "%s  %s -> %s\n",
				c.render(styles.ID, when),
				c.render(styles.Path, r.OriginalPath),
				r.TrashPath); err != nil {
				return err
			}
		}
		return nil
	}
}
