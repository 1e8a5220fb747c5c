package diagfmt

// PrettyOpts controls Pretty output.
type PrettyOpts struct {
	Color bool
	// ShowNotes prints the notes under each diagnostic.
	ShowNotes bool
}
