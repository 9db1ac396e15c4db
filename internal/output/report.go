package output

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/rpgo/sip-calculator/internal/domain"
)

// GenerateReport renders results in the named format and returns the file it
// wrote. With an empty path (or "-") the report is written to w and the
// returned name is empty. When path is a directory the report gets a
// timestamped name inside it.
func GenerateReport(results *domain.PlanComparison, format string, w io.Writer, path string) (string, error) {
	f := GetFormatterByName(format)
	if f == nil {
		return "", fmt.Errorf("%w: %q. Try one of: %s (aliases: %s)", ErrUnsupportedFormat, format, strings.Join(AvailableFormatterNames(), ", "), strings.Join(AvailableFormatAliases(), ", "))
	}
	if path == "" || path == "-" {
		return "", Write(w, f, results)
	}
	if info, err := os.Stat(path); err == nil && info.IsDir() {
		return WriteFormatted(f, results, path, Extension(format))
	}
	if err := WriteFile(f, results, path); err != nil {
		return "", err
	}
	return path, nil
}
