package main

import (
	"encoding/csv"
	"flag"
	"fmt"
	"math/rand/v2"
	"os"
	"path/filepath"
	"strings"
)

var firstNames = []string{
	"Alice", "Bob", "Carol", "Dan", "Eve", "Frank", "Grace", "Heidi",
	"Ivan", "Judy", "Mallory", "Niaj", "Olivia", "Peggy", "Rupert",
	"Sybil", "Trent", "Victor", "Walter", "Yasmine",
}

var lastNames = []string{
	"Martin", "Bernard", "Dubois", "Thomas", "Robert", "Richard",
	"Petit", "Durand", "Leroy", "Moreau", "Simon", "Laurent",
}

// Generates sample roster files to feed the 'import' command: one plain
// text file (one name per line) and one two-column CSV.
func main() {
	outputDir := flag.String("out", "./test_data", "Destination directory")
	count := flag.Int("count", 30, "Number of names to generate")
	flag.Parse()

	if err := os.MkdirAll(*outputDir, 0755); err != nil {
		panic(fmt.Sprintf("Cannot create output directory: %v", err))
	}

	fmt.Println("Generating roster fixtures...")

	names := genNames(*count)

	txtPath := filepath.Join(*outputDir, "roster.txt")
	genText(txtPath, names)

	csvPath := filepath.Join(*outputDir, "roster.csv")
	genCSV(csvPath, names)

	fmt.Printf("\nDone. Try: import %s\n", txtPath)
}

func genNames(count int) []string {
	names := make([]string, 0, count)
	for i := 0; i < count; i++ {
		first := firstNames[rand.IntN(len(firstNames))]
		last := lastNames[rand.IntN(len(lastNames))]
		names = append(names, first+" "+last)
	}
	return names
}

func genText(path string, names []string) {
	if err := os.WriteFile(path, []byte(strings.Join(names, "\n")+"\n"), 0644); err != nil {
		fmt.Printf("Text roster failed: %v\n", err)
		return
	}
	fmt.Printf("Text roster written: %s\n", path)
}

// genCSV emits two names per row so content sniffing sees a real table.
func genCSV(path string, names []string) {
	f, err := os.Create(path)
	if err != nil {
		fmt.Printf("CSV roster failed: %v\n", err)
		return
	}
	defer f.Close()

	w := csv.NewWriter(f)
	for i := 0; i+1 < len(names); i += 2 {
		if err := w.Write([]string{names[i], names[i+1]}); err != nil {
			fmt.Printf("CSV roster failed: %v\n", err)
			return
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		fmt.Printf("CSV roster failed: %v\n", err)
		return
	}
	fmt.Printf("CSV roster written: %s\n", path)
}
