package reader

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// Option configures how a dataset file is parsed.
type Option func(*config)

type config struct {
	separator  rune
	colObs     bool // true: file holds one variable per row, one observation per column
	varNames   bool // true: first line carries variable names, under either orientation
	obsIndices bool // true: the first field of every line is an index and is discarded
}

// WithSeparator sets the field separator (default tab).
func WithSeparator(sep rune) Option {
	return func(c *config) { c.separator = sep }
}

// WithColObs tells the reader that observations run along columns and
// variables along rows, the transpose of the default row-observation
// layout.
func WithColObs(colObs bool) Option {
	return func(c *config) { c.colObs = colObs }
}

// WithVarNames tells the reader that the first header line carries
// variable names.
func WithVarNames(varNames bool) Option {
	return func(c *config) { c.varNames = varNames }
}

// WithObsIndices tells the reader that each data line is prefixed with a
// row-index field to be discarded.
func WithObsIndices(obsIndices bool) Option {
	return func(c *config) { c.obsIndices = obsIndices }
}

func newConfig(opts ...Option) config {
	cfg := config{separator: '\t'}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// Dataset is the (data, names) pair counter.NewTable expects: Data is
// column-major, Data[v] holding all nObs observations of variable v.
type Dataset struct {
	Data  [][]int
	Names []string
}

// Read parses path into a Dataset of nVars variables and nObs observations.
func Read(path string, nVars, nObs int, opts ...Option) (*Dataset, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("reader: %w", err)
	}
	defer f.Close()
	return read(f, nVars, nObs, newConfig(opts...))
}

func read(r io.Reader, nVars, nObs int, cfg config) (*Dataset, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)

	lines, err := nonEmptyLines(sc)
	if err != nil {
		return nil, fmt.Errorf("reader: %w", err)
	}

	names := make([]string, nVars)
	for i := range names {
		names[i] = fmt.Sprintf("V%d", i)
	}

	expectedLines := nObs
	if cfg.colObs {
		expectedLines = nVars
	}
	if cfg.varNames {
		expectedLines++
	}
	if len(lines) < expectedLines {
		return nil, fmt.Errorf("reader: %w: expected %d lines, got %d", ErrShortFile, expectedLines, len(lines))
	}

	idx := 0
	if cfg.varNames {
		fields := splitFields(lines[idx], cfg.separator)
		if cfg.obsIndices {
			fields = fields[1:]
		}
		for i := 0; i < nVars && i < len(fields); i++ {
			names[i] = unquote(fields[i])
		}
		idx++
	}

	var data [][]int
	if cfg.colObs {
		data, err = readColObs(lines[idx:idx+nVars], nObs, cfg)
	} else {
		data, err = readRowObs(lines[idx:idx+nObs], nVars, cfg)
	}
	if err != nil {
		return nil, err
	}
	return &Dataset{Data: data, Names: names}, nil
}

// readRowObs parses nObs lines, each one observation across nVars
// variables, into column-major data.
func readRowObs(lines []string, nVars int, cfg config) ([][]int, error) {
	data := make([][]int, nVars)
	for v := range data {
		data[v] = make([]int, len(lines))
	}
	for row, line := range lines {
		fields := splitFields(line, cfg.separator)
		if cfg.obsIndices {
			fields = fields[1:]
		}
		if len(fields) != nVars {
			return nil, fmt.Errorf("reader: %w: row %d has %d fields, want %d", ErrRowWidth, row, len(fields), nVars)
		}
		for v, field := range fields {
			n, err := strconv.Atoi(strings.TrimSpace(field))
			if err != nil {
				return nil, fmt.Errorf("reader: row %d field %d: %w", row, v, err)
			}
			data[v][row] = n
		}
	}
	return data, nil
}

// readColObs parses nVars lines, each one variable across nObs
// observations, directly into column-major data.
func readColObs(lines []string, nObs int, cfg config) ([][]int, error) {
	data := make([][]int, len(lines))
	for v, line := range lines {
		fields := splitFields(line, cfg.separator)
		if cfg.obsIndices {
			fields = fields[1:]
		}
		if len(fields) != nObs {
			return nil, fmt.Errorf("reader: %w: variable %d has %d fields, want %d", ErrRowWidth, v, len(fields), nObs)
		}
		data[v] = make([]int, nObs)
		for o, field := range fields {
			n, err := strconv.Atoi(strings.TrimSpace(field))
			if err != nil {
				return nil, fmt.Errorf("reader: variable %d observation %d: %w", v, o, err)
			}
			data[v][o] = n
		}
	}
	return data, nil
}

func nonEmptyLines(sc *bufio.Scanner) ([]string, error) {
	var lines []string
	for sc.Scan() {
		line := sc.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}
		lines = append(lines, line)
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return lines, nil
}

func splitFields(line string, sep rune) []string {
	return strings.FieldsFunc(line, func(r rune) bool { return r == sep })
}

func unquote(s string) string {
	s = strings.TrimSpace(s)
	if len(s) >= 2 && (s[0] == '"' || s[0] == '\'') && s[len(s)-1] == s[0] {
		return s[1 : len(s)-1]
	}
	return s
}
