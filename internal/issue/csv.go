package issue

import (
	"encoding/csv"
	"strconv"
	"strings"
	"time"
)

// csvHeaders is the fixed export column set.
var csvHeaders = []string{"id", "title", "description", "status", "priority", "severity", "createdAt"}

// renderCSV writes the standard quoted form: fields containing a comma,
// quote or newline are wrapped in quotes with embedded quotes doubled.
// encoding/csv does exactly that.
func renderCSV(rows []Issue) (string, error) {
	var sb strings.Builder
	w := csv.NewWriter(&sb)

	if err := w.Write(csvHeaders); err != nil {
		return "", err
	}
	for _, is := range rows {
		rec := []string{
			strconv.FormatUint(is.ID, 10),
			is.Title,
			is.Description,
			is.Status,
			is.Priority,
			is.Severity,
			is.CreatedAt.UTC().Format(time.RFC3339),
		}
		if err := w.Write(rec); err != nil {
			return "", err
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return "", err
	}
	return sb.String(), nil
}
