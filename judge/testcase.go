package judge

import (
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
)

// TestCase is one input/reference-output pair discovered in a test
// directory, keyed by its decimal case number.
type TestCase struct {
	Number        uint32
	InputPath     string
	ReferencePath string
}

// DiscoverTestCases lists dir for files named "<decimal>.in", pairs
// each with the matching "<decimal>.out", and returns them sorted by
// case number ascending. Names that don't match the pattern are
// ignored; a ".in" with no matching ".out" is still included (a
// missing reference surfaces as a read error when the case is run,
// not as a discovery error).
func DiscoverTestCases(dir string) ([]TestCase, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	numbers := make([]uint32, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		base, ok := strings.CutSuffix(name, ".in")
		if !ok {
			continue
		}
		n, err := strconv.ParseUint(base, 10, 32)
		if err != nil {
			continue
		}
		numbers = append(numbers, uint32(n))
	}
	sort.Slice(numbers, func(i, j int) bool { return numbers[i] < numbers[j] })

	cases := make([]TestCase, 0, len(numbers))
	for _, n := range numbers {
		numStr := strconv.FormatUint(uint64(n), 10)
		cases = append(cases, TestCase{
			Number:        n,
			InputPath:     filepath.Join(dir, numStr+".in"),
			ReferencePath: filepath.Join(dir, numStr+".out"),
		})
	}
	return cases, nil
}
