package table

import (
	"bufio"
	"io"
)

const (
	DefaultTitle = "タイトル"
	DefaultLabel = "XXX"
)

// Document is a rendered LaTeX table environment.
type Document struct {
	Title  string
	Label  string
	Layout string
	// Header and Rows are complete lines including their terminators.
	Header string
	Rows   []string
}

// Lines returns the document line by line, without newlines.
func (d *Document) Lines() []string {
	lines := make([]string, 0, len(d.Rows)+10)
	lines = append(lines,
		`\begin{table}[!hb]`,
		`\begin{center}`,
		`\caption{`+d.Title+`}`,
		`\label{tab:`+d.Label+`}`,
		`\begin{tabular}{`+d.Layout+`} `+hline,
		d.Header,
	)
	lines = append(lines, d.Rows...)
	lines = append(lines,
		hline,
		`\end{tabular}`,
		`\end{center}`,
		`\end{table}`,
	)
	return lines
}

// WriteTo writes the document with a trailing newline after every line.
func (d *Document) WriteTo(w io.Writer) (int64, error) {
	bw := bufio.NewWriter(w)
	var n int64
	for _, line := range d.Lines() {
		m, err := bw.WriteString(line)
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
