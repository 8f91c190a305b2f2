package transfer

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"draw-lab/domain"
	apperrors "draw-lab/errors"
)

func TestParseLines(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []string
	}{
		{
			name:     "One name per line with surrounding whitespace",
			input:    "  Alice  \nBob\n\tCharlie\t\n",
			expected: []string{"Alice", "Bob", "Charlie"},
		},
		{
			name:     "Blank lines are ignored",
			input:    "Alice\n\n\nBob\n   \n",
			expected: []string{"Alice", "Bob"},
		},
		{
			name:     "Windows line endings",
			input:    "Alice\r\nBob\r\n",
			expected: []string{"Alice", "Bob"},
		},
		{
			name:     "Empty input yields nothing",
			input:    "",
			expected: nil,
		},
		{
			name:     "Whitespace-only input yields nothing",
			input:    "   \n\t\n \r\n",
			expected: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.expected, ParseLines(tt.input))
		})
	}
}

func TestFlattenRows(t *testing.T) {
	req := require.New(t)

	rows := [][]string{
		{"Alice", " Bob "},
		{""},
		{"Charlie", "", "Diana"},
	}

	req.Equal([]string{"Alice", "Bob", "Charlie", "Diana"}, FlattenRows(rows))
	req.Nil(FlattenRows(nil))
}

func TestReadNamesFile_PlainText(t *testing.T) {
	req := require.New(t)

	path := filepath.Join(t.TempDir(), "roster.txt")
	req.NoError(os.WriteFile(path, []byte("Alice\nBob\n\nCharlie\n"), 0o644))

	names, err := ReadNamesFile(path)
	req.NoError(err)
	req.Equal([]string{"Alice", "Bob", "Charlie"}, names)
}

func TestReadNamesFile_CSVFlattensAllCells(t *testing.T) {
	req := require.New(t)

	path := filepath.Join(t.TempDir(), "roster.csv")
	content := "Alice,Bob\nCharlie,Diana\nEve,\n"
	req.NoError(os.WriteFile(path, []byte(content), 0o644))

	names, err := ReadNamesFile(path)
	req.NoError(err)
	req.Equal([]string{"Alice", "Bob", "Charlie", "Diana", "Eve"}, names)
}

func TestReadNamesFile_BinaryContentIsRejected(t *testing.T) {
	req := require.New(t)

	path := filepath.Join(t.TempDir(), "roster.bin")
	req.NoError(os.WriteFile(path, []byte{0x00, 0x01, 0x02, 0xFF, 0xFE}, 0o644))

	_, err := ReadNamesFile(path)
	req.ErrorIs(err, apperrors.ErrUnsupportedFile)
}

func TestReadNamesFile_MissingFile(t *testing.T) {
	_, err := ReadNamesFile(filepath.Join(t.TempDir(), "nope.txt"))
	require.Error(t, err)
}

func TestWriteGroupsCSV(t *testing.T) {
	req := require.New(t)

	set := domain.GroupSet{
		{domain.NewParticipant("Alice"), domain.NewParticipant("Bob")},
		{domain.NewParticipant("Charlie")},
	}

	var buf bytes.Buffer
	req.NoError(WriteGroupsCSV(&buf, set))

	expected := "Group,Name\n" +
		"Group 1,Alice\n" +
		"Group 1,Bob\n" +
		"Group 2,Charlie\n"
	req.Equal(expected, buf.String())
}

func TestWriteGroupsCSV_EmptySetStillWritesHeader(t *testing.T) {
	req := require.New(t)

	var buf bytes.Buffer
	req.NoError(WriteGroupsCSV(&buf, nil))
	req.Equal("Group,Name\n", buf.String())
}
