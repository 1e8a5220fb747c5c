package table

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"csvtex/internal/cell"
	"csvtex/internal/diag"
)

func convertString(t *testing.T, in string, opts Options) (*Result, error) {
	t.Helper()
	return Convert(context.Background(), strings.NewReader(in), opts)
}

func TestConvertScenario(t *testing.T) {
	res, err := convertString(t, "Num,Label\n1E2,x\n3.0E+5,y\n", Options{})
	require.NoError(t, err)
	require.NotNil(t, res.Document)

	var buf bytes.Buffer
	_, err = res.Document.WriteTo(&buf)
	require.NoError(t, err)

	want := strings.Join([]string{
		`\begin{table}[!hb]`,
		`\begin{center}`,
		`\caption{タイトル}`,
		`\label{tab:XXX}`,
		`\begin{tabular}{cc} \hline`,
		`Num&Label \\ \hline`,
		`$1 \times 10^{2}$&x \\`,
		`$3.0 \times 10^{5}$&y \\`,
		`\hline`,
		`\end{tabular}`,
		`\end{center}`,
		`\end{table}`,
	}, "\n") + "\n"
	assert.Equal(t, want, buf.String())
	assert.Equal(t, 2, res.Rows)
	assert.Zero(t, res.Skipped)
}

func TestConvertOptions(t *testing.T) {
	res, err := convertString(t, "A,B,C\n1,2,3\n", Options{Title: "抵抗", Label: "res", Bordered: true})
	require.NoError(t, err)
	assert.Equal(t, "c|c|c", res.Document.Layout)
	lines := res.Document.Lines()
	assert.Contains(t, lines, `\caption{抵抗}`)
	assert.Contains(t, lines, `\label{tab:res}`)
	assert.Contains(t, lines, `\begin{tabular}{c|c|c} \hline`)
}

func TestConvertHeaderIsVerbatim(t *testing.T) {
	res, err := convertString(t, "1E2, Label \nx,y\n", Options{})
	require.NoError(t, err)
	assert.Equal(t, `1E2& Label  \\ \hline`, res.Document.Header)
}

func TestConvertRawExponent(t *testing.T) {
	res, err := convertString(t, "v\n1.5E+007\n", Options{Exponent: cell.ExponentRaw})
	require.NoError(t, err)
	assert.Equal(t, []string{`$1.5 \times 10^{+007}$ \\`}, res.Document.Rows)
}

func TestConvertSkipsMalformedRows(t *testing.T) {
	in := "a,b\n1,2\n3\n4,5\n6,7,8\n"
	res, err := convertString(t, in, Options{})
	require.NoError(t, err)
	assert.Equal(t, []string{`1&2 \\`, `4&5 \\`}, res.Document.Rows)
	assert.Equal(t, 2, res.Skipped)
	require.Equal(t, 2, res.Bag.Len())

	items := res.Bag.Items()
	for i, line := range []uint32{3, 5} {
		assert.Equal(t, diag.CSVFieldCount, items[i].Code)
		assert.Equal(t, line, items[i].Primary.Line)
		assert.Equal(t, diag.SevWarning, items[i].Severity)
	}
}

func TestConvertBareQuotesAreLiteral(t *testing.T) {
	res, err := convertString(t, "Size \"in\",Value\n5\" screen,1.5E3\n", Options{})
	require.NoError(t, err)
	assert.Equal(t, `Size "in"&Value \\ \hline`, res.Document.Header)
	assert.Equal(t, []string{`5" screen&$1.5 \times 10^{3}$ \\`}, res.Document.Rows)
	assert.Zero(t, res.Skipped)
	assert.Zero(t, res.Bag.Len())
}

func TestConvertStrictRejectsMalformedRows(t *testing.T) {
	res, err := convertString(t, "a,b\n1,2\n3\n", Options{Strict: true})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrMalformedRow))
	assert.Nil(t, res.Document)
	assert.True(t, res.Bag.HasWarnings())
}

func TestConvertBadExponentIsFatal(t *testing.T) {
	res, err := convertString(t, "a,b\n1,2\nx,1E+-3\n5E--1,y\n", Options{Jobs: 4})
	require.Error(t, err)

	var ce *CellError
	require.True(t, errors.As(err, &ce))
	assert.Equal(t, 3, ce.Line)
	assert.Equal(t, 2, ce.Column)
	assert.True(t, errors.Is(err, cell.ErrBadExponent))
	assert.Nil(t, res.Document)

	// both bad cells are reported
	assert.Equal(t, 2, res.Bag.Len())
	assert.True(t, res.Bag.HasErrors())
	for _, d := range res.Bag.Items() {
		require.Len(t, d.Notes, 1)
		assert.Equal(t, d.Primary, d.Notes[0].Pos)
		assert.Contains(t, d.Notes[0].Msg, "--exponent raw")
	}
}

func TestConvertHeaderFailure(t *testing.T) {
	res, err := convertString(t, "", Options{})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrHeader))
	assert.Equal(t, diag.CSVHeader, res.Bag.Items()[0].Code)
}

func TestConvertHeaderOnly(t *testing.T) {
	res, err := convertString(t, "a,b\n", Options{})
	require.NoError(t, err)
	assert.Empty(t, res.Document.Rows)
	assert.Equal(t, diag.CSVEmptyInput, res.Bag.Items()[0].Code)
	assert.False(t, res.Bag.HasWarnings())
}

func TestConvertPreservesOrderInParallel(t *testing.T) {
	var sb strings.Builder
	sb.WriteString("n\n")
	want := make([]string, 0, 500)
	for i := range 500 {
		sb.WriteString(strings.Repeat("1", i%7+1) + "E" + strings.Repeat("0", i%3) + "5\n")
		want = append(want, `$`+strings.Repeat("1", i%7+1)+` \times 10^{5}$ \\`)
	}
	res, err := convertString(t, sb.String(), Options{Jobs: 8})
	require.NoError(t, err)
	assert.Equal(t, want, res.Document.Rows)
}

func TestConvertCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := Convert(ctx, strings.NewReader("a\n1\n"), Options{})
	assert.ErrorIs(t, err, context.Canceled)
}
