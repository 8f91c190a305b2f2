package transfer

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"

	"draw-lab/domain"
)

// WriteGroupsCSV serializes a group set as delimited text: a
// "Group,Name" header followed by one row per participant per group,
// labeled with the group's 1-based index.
func WriteGroupsCSV(w io.Writer, set domain.GroupSet) error {
	writer := csv.NewWriter(w)
	if err := writer.Write([]string{"Group", "Name"}); err != nil {
		return err
	}
	for i, group := range set {
		label := fmt.Sprintf("Group %d", i+1)
		for _, p := range group {
			if err := writer.Write([]string{label, p.Name}); err != nil {
				return err
			}
		}
	}
	writer.Flush()
	return writer.Error()
}

// ExportGroupsFile writes the group set to path as a downloadable CSV
// artifact.
func ExportGroupsFile(path string, set domain.GroupSet) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return WriteGroupsCSV(f, set)
}
