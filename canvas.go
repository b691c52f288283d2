package asciiart

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

// Canvas is the character grid produced by a conversion
type Canvas struct {
	Grid Grid
	Rows []string
}

// String joins the rows, each followed by a newline
func (c *Canvas) String() string {
	var sb strings.Builder
	sb.Grow(len(c.Rows) * (c.Grid.Columns + 1))
	for _, row := range c.Rows {
		sb.WriteString(row)
		sb.WriteByte('\n')
	}
	return sb.String()
}

// WriteTo writes every row followed by a newline to w
func (c *Canvas) WriteTo(w io.Writer) (int64, error) {
	bw := bufio.NewWriter(w)

	var n int64
	for _, row := range c.Rows {
		m, err := bw.WriteString(row)
		n += int64(m)
		if err != nil {
			return n, err
		}
		if err := bw.WriteByte('\n'); err != nil {
			return n, err
		}
		n++
	}

	return n, bw.Flush()
}

// WriteFile writes the canvas to path, creating or truncating it. A path of
// "-" writes to stdout.
func (c *Canvas) WriteFile(path string) (err error) {
	if path == "" {
		return fmt.Errorf("path cannot be empty")
	}
	if path == "-" {
		_, err = c.WriteTo(os.Stdout)
		return err
	}

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer func() {
		if cerr := file.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("failed to close output file: %w", cerr)
		}
	}()

	if _, err := c.WriteTo(file); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}

	return nil
}

// Crop returns the rows cut to at most width characters
func (c *Canvas) Crop(width int) []string {
	if width <= 0 || width >= c.Grid.Columns {
		return c.Rows
	}
	rows := make([]string, len(c.Rows))
	for i, row := range c.Rows {
		rows[i] = row[:min(width, len(row))]
	}
	return rows
}
