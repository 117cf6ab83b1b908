package generate

import (
	"encoding/json"
	"fmt"
	"os"
)

// WriteReport saves the run report as indented JSON. The report path is
// resolved against the working directory, not BasePath, so a report can live
// outside the generated tree.
func WriteReport(path string, report *Report) error {
	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, append(data, '\n'), 0o644); err != nil {
		return fmt.Errorf("write report %s: %w", path, err)
	}
	return nil
}
