// Package writer merges fetched templates into the destination ignore
// file. Three mutually exclusive modes exist: append (the default,
// with a substring-based duplicate check), overwrite, and dry-run.
package writer

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/arthur-debert/igno/pkg/errors"
	"github.com/arthur-debert/igno/pkg/logging"
	"github.com/arthur-debert/igno/pkg/registry"
)

// Mode selects how templates are merged into the destination.
type Mode int

const (
	// ModeAppend appends templates not already present in the file
	ModeAppend Mode = iota
	// ModeOverwrite replaces the file's entire contents
	ModeOverwrite
	// ModeDryRun prints templates without touching the filesystem
	ModeDryRun
)

// String returns the string representation of the mode
func (m Mode) String() string {
	switch m {
	case ModeAppend:
		return "append"
	case ModeOverwrite:
		return "overwrite"
	case ModeDryRun:
		return "dry-run"
	default:
		return "unknown"
	}
}

// Result reports what a Write did, for the CLI to present.
type Result struct {
	Mode     Mode
	Path     string
	Appended []string
	Skipped  []string
}

// Write merges templates into the file at path according to mode.
// Dry-run output goes to out; the other modes never write to it.
func Write(path string, mode Mode, templates []registry.Template, out io.Writer) (*Result, error) {
	log := logging.GetLogger("writer")
	log.Debug().
		Str("path", path).
		Str("mode", mode.String()).
		Int("templates", len(templates)).
		Msg("Writing templates")

	result := &Result{Mode: mode, Path: path}

	switch mode {
	case ModeDryRun:
		for _, tpl := range templates {
			if _, err := io.WriteString(out, formatBlock(tpl)); err != nil {
				return nil, errors.Wrap(err, errors.ErrFilesystem, "failed to print template")
			}
		}
		return result, nil

	case ModeOverwrite:
		var buffer strings.Builder
		for _, tpl := range templates {
			buffer.WriteString(formatBlock(tpl))
		}
		if err := os.WriteFile(path, []byte(buffer.String()), 0644); err != nil {
			return nil, errors.Wrapf(err, errors.ErrFilesystem, "failed to write %s", path)
		}
		for _, tpl := range templates {
			result.Appended = append(result.Appended, tpl.Name)
		}
		return result, nil

	case ModeAppend:
		return appendTemplates(path, templates, result)

	default:
		return nil, errors.Newf(errors.ErrInternal, "unknown write mode %d", mode)
	}
}

// appendTemplates appends each template not already present. The
// duplicate check runs against a snapshot of the file taken once,
// before any appends this run, so two identical templates requested
// together are both written.
func appendTemplates(path string, templates []registry.Template, result *Result) (*Result, error) {
	existing, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return nil, errors.Wrapf(err, errors.ErrFilesystem, "failed to read %s", path)
	}
	snapshot := string(existing)

	// One handle for the whole run; every write lands at the tail.
	file, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrFilesystem, "failed to open %s", path)
	}
	defer func() { _ = file.Close() }()

	for _, tpl := range templates {
		if snapshot != "" && strings.Contains(snapshot, tpl.Content) {
			result.Skipped = append(result.Skipped, tpl.Name)
			continue
		}

		block := formatBlock(tpl)
		nonEmpty, err := fileNonEmpty(file)
		if err != nil {
			return nil, errors.Wrapf(err, errors.ErrFilesystem, "failed to stat %s", path)
		}
		if nonEmpty {
			block = "\n" + block
		}

		if _, err := file.WriteString(block); err != nil {
			return nil, errors.Wrapf(err, errors.ErrFilesystem, "failed to append to %s", path)
		}
		if err := file.Sync(); err != nil {
			return nil, errors.Wrapf(err, errors.ErrFilesystem, "failed to flush %s", path)
		}
		result.Appended = append(result.Appended, tpl.Name)
	}

	return result, nil
}

// formatBlock renders one template as a header line, the content with
// a guaranteed trailing newline, and one blank separator line.
func formatBlock(tpl registry.Template) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# --- %s ---\n", tpl.Name)
	b.WriteString(tpl.Content)
	if !strings.HasSuffix(tpl.Content, "\n") {
		b.WriteString("\n")
	}
	b.WriteString("\n")
	return b.String()
}

func fileNonEmpty(file *os.File) (bool, error) {
	info, err := file.Stat()
	if err != nil {
		return false, err
	}
	return info.Size() > 0, nil
}
