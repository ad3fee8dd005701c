package plastic

import (
	"strings"
)

// WorkspaceRow is one entry from `cm lwk`.
type WorkspaceRow struct {
	Name    string
	Path    string
	Machine string
}

// ListFormat is passed to cm lwk so rows come back as name#path#machine.
const ListFormat = "--format={0}#{1}#{2}"

// ParseWorkspaceList parses `cm lwk` output. Blank lines and rows with
// fewer than two fields are skipped; the machine field is optional.
func ParseWorkspaceList(output []byte) []WorkspaceRow {
	var rows []WorkspaceRow
	for _, line := range strings.Split(string(output), "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		fields := strings.Split(line, "#")
		if len(fields) < 2 {
			continue
		}
		row := WorkspaceRow{Name: fields[0], Path: fields[1]}
		if len(fields) > 2 {
			row.Machine = fields[2]
		}
		rows = append(rows, row)
	}
	return rows
}

// SelectorSpec is the client's parse of a selector: what repository,
// branch and label it resolves to. A selector the client cannot parse
// yields no spec at all.
type SelectorSpec struct {
	Repository string
	Branch     string
	Label      string
}

// ParseSelectorSpec parses `cm gss` output, lines of "key: value" form.
// Returns nil if the output contains no recognized fields, which is how
// the client reports an unparseable selector.
func ParseSelectorSpec(output []byte) *SelectorSpec {
	var spec SelectorSpec
	found := false
	for _, line := range strings.Split(string(output), "\n") {
		key, value, ok := strings.Cut(line, ":")
		if !ok {
			continue
		}
		value = strings.TrimSpace(value)
		switch strings.ToLower(strings.TrimSpace(key)) {
		case "repository":
			spec.Repository = value
			found = true
		case "branch":
			spec.Branch = value
			found = true
		case "label":
			spec.Label = value
			found = true
		}
	}
	if !found {
		return nil
	}
	return &spec
}
