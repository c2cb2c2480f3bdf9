package contractkit

import (
	"strings"

	"github.com/reoring/contractkit/i18n"
)

// FormatDiff renders a diff and its classification as a human-readable
// report, one item per line, localized through i18n.
func FormatDiff(d Diff, c Classification) string {
	lines := []string{
		i18n.T(i18n.ReportClassification, map[string]string{"classification": string(c)}),
		"",
	}
	section := func(code, mark string, items []string) {
		if len(items) == 0 {
			return
		}
		lines = append(lines, i18n.T(code, nil))
		for _, it := range items {
			lines = append(lines, "  "+mark+" "+it)
		}
	}
	section(i18n.ReportAdded, "+", d.Added)
	section(i18n.ReportRemoved, "-", d.Removed)
	changes := make([]string, len(d.TypeChanged))
	for i, tc := range d.TypeChanged {
		changes[i] = formatChange(tc)
	}
	section(i18n.ReportTypeChanges, "~", changes)
	section(i18n.ReportNewRequired, "!", d.NewRequired)
	if d.Identity != nil {
		section(i18n.ReportIdentity, "=", []string{formatChange(*d.Identity)})
	}
	if d.Empty() {
		lines = append(lines, i18n.T(i18n.ReportNoChanges, nil))
	}
	return strings.Join(lines, "\n")
}

func formatChange(tc TypeChange) string {
	return tc.Property + ": " + tc.From + " → " + tc.To
}
