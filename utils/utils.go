package utils

import (
	"fmt"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"gopkg.in/yaml.v3"

	"github.com/takoeight0821/kame/ast"
	"github.com/takoeight0821/kame/token"
)

// PosError decorates an error with the token where it was detected.
type PosError struct {
	Where token.Token
	Err   error
}

func (e PosError) Error() string {
	if e.Where.Kind == token.EOF {
		return fmt.Sprintf("at end: %s", e.Err.Error())
	}
	return fmt.Sprintf("at %d:%d: `%s`, %s", e.Where.Line, e.Where.Column, e.Where.Lexeme, e.Err.Error())
}

func (e PosError) Unwrap() error {
	return e.Err
}

type TestData struct {
	Label    string
	Enable   bool
	Input    string
	Expected map[string]string
}

func ReadTestData(s []byte) []TestData {
	var data []TestData
	if err := yaml.Unmarshal(s, &data); err != nil {
		panic(err)
	}

	// Remove disabled test cases.
	i := 0
	for _, d := range data {
		if d.Enable {
			data[i] = d
			i++
		}
	}
	data = data[:i]

	return data
}

// FindScripts lists the turtle scripts under dir. filepath.Glob returns them
// sorted, which keeps golden test order stable.
func FindScripts(dir string) ([]string, error) {
	pattern := filepath.Join(dir, "*.kame")
	files, err := filepath.Glob(pattern)
	if err != nil {
		return nil, fmt.Errorf("glob %s: %w", pattern, err)
	}

	return files, nil
}

// RunTest parses input with parse and compares the rendered program against
// expected, one command per line. parse is passed in because this package
// sits below the driver.
func RunTest(parse func(string) (ast.Program, error), t testing.TB, label, input, expected string) {
	t.Helper()

	program, err := parse(input)
	if err != nil {
		t.Errorf("%s: parse returned error: %v", label, err)

		return
	}

	var builder strings.Builder
	for _, command := range program {
		builder.WriteString(command.String())
		builder.WriteString("\n")
	}

	if diff := cmp.Diff(expected, builder.String()); diff != "" {
		t.Errorf("%s: parse mismatch (-want +got):\n%s", label, diff)
	}
}
