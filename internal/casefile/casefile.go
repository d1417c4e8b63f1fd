// Package casefile reads extra example cases for a day from a markdown file.
//
// Every fenced code block whose info string starts with "part1" or "part2"
// becomes an example case. An optional "want=<value>" attribute sets the
// expected answer; it is compared as an integer when it parses as one.
//
//	---
//	year: 2015
//	day: 1
//	---
//	```part1 want=-3
//	)))
//	```
package casefile

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
	"gopkg.in/yaml.v3"

	"github.com/harrison/aoc/internal/harness"
)

// frontmatter is the optional YAML header of a case file.
type frontmatter struct {
	Year int `yaml:"year"`
	Day  int `yaml:"day"`
}

// Path returns the case file for (year, day) inside dir.
func Path(dir string, year, day int) string {
	return filepath.Join(dir, fmt.Sprintf("%d-%02d.md", year, day))
}

// Load reads the case file for (year, day) from dir. A missing file yields no
// cases and no error.
func Load(dir string, year, day int) ([]harness.Case, error) {
	path := Path(dir, year, day)
	content, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read case file: %w", err)
	}

	cases, err := Parse(content, year, day)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cases, nil
}

// Parse extracts the example cases from markdown content. When the content
// has frontmatter naming a year or day, it must match the given ones.
func Parse(content []byte, year, day int) ([]harness.Case, error) {
	body, fm := extractFrontmatter(content)
	if fm != nil {
		var meta frontmatter
		if err := yaml.Unmarshal(fm, &meta); err != nil {
			return nil, fmt.Errorf("failed to parse frontmatter: %w", err)
		}
		if meta.Year != 0 && meta.Year != year {
			return nil, fmt.Errorf("frontmatter year %d does not match %d", meta.Year, year)
		}
		if meta.Day != 0 && meta.Day != day {
			return nil, fmt.Errorf("frontmatter day %d does not match %d", meta.Day, day)
		}
	}

	doc := goldmark.New().Parser().Parse(text.NewReader(body))

	var cases []harness.Case
	err := ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}

		block, ok := n.(*ast.FencedCodeBlock)
		if !ok || block.Info == nil {
			return ast.WalkContinue, nil
		}

		info := string(block.Info.Segment.Value(body))
		c, ok, err := parseBlock(info, codeContent(block, body))
		if err != nil {
			line := bytes.Count(body[:block.Info.Segment.Start], []byte("\n")) + 1
			return ast.WalkStop, fmt.Errorf("code block at line %d: %w", line, err)
		}
		if ok {
			cases = append(cases, c)
		}
		return ast.WalkSkipChildren, nil
	})
	if err != nil {
		return nil, err
	}

	return cases, nil
}

// parseBlock turns a fenced block into a case. ok is false for blocks that
// are not case blocks at all.
func parseBlock(info, content string) (c harness.Case, ok bool, err error) {
	fields := strings.Fields(info)
	if len(fields) == 0 {
		return c, false, nil
	}

	var part harness.Part
	switch fields[0] {
	case "part1":
		part = harness.Part1
	case "part2":
		part = harness.Part2
	default:
		return c, false, nil
	}

	var want *harness.Result
	for _, attr := range fields[1:] {
		key, value, found := strings.Cut(attr, "=")
		if !found || key != "want" {
			return c, false, fmt.Errorf("unknown attribute %q", attr)
		}
		var r harness.Result
		if strings.HasPrefix(value, `"`) {
			value, err = strconv.Unquote(value)
			if err != nil {
				return c, false, fmt.Errorf("bad quoted want value %q: %w", attr, err)
			}
			r = harness.Text(value)
		} else {
			r = harness.ParseResult(value)
		}
		want = &r
	}

	if want == nil {
		return harness.ExampleUnchecked(part, content), true, nil
	}
	return harness.Example(part, *want, content), true, nil
}

// codeContent joins the raw lines of block without the final newline.
func codeContent(block *ast.FencedCodeBlock, source []byte) string {
	var buf bytes.Buffer
	lines := block.Lines()
	for i := 0; i < lines.Len(); i++ {
		segment := lines.At(i)
		buf.Write(segment.Value(source))
	}
	return strings.TrimRight(buf.String(), "\r\n")
}

// extractFrontmatter splits a leading "---" delimited YAML header from content.
func extractFrontmatter(content []byte) ([]byte, []byte) {
	lines := bytes.Split(content, []byte("\n"))
	if len(lines) < 3 || !bytes.Equal(bytes.TrimSpace(lines[0]), []byte("---")) {
		return content, nil
	}

	for i := 1; i < len(lines); i++ {
		if bytes.Equal(bytes.TrimSpace(lines[i]), []byte("---")) {
			return bytes.Join(lines[i+1:], []byte("\n")), bytes.Join(lines[1:i], []byte("\n"))
		}
	}

	return content, nil
}
