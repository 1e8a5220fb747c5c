package diag

import "fmt"

type Code uint16

const (
	UnknownCode Code = 0

	// Чтение CSV
	CSVHeader       Code = 1001
	CSVMalformedRow Code = 1002
	CSVFieldCount   Code = 1003
	CSVEmptyInput   Code = 1004

	// Ячейки
	CellBadExponent Code = 2001

	// Вывод
	OutWrite Code = 3001
)

var codeDescription = map[Code]string{
	UnknownCode:     "Unknown error",
	CSVHeader:       "Header row could not be read",
	CSVMalformedRow: "Row is not a valid CSV record",
	CSVFieldCount:   "Row has the wrong number of fields",
	CSVEmptyInput:   "Input has no data rows",
	CellBadExponent: "Exponent is not an integer",
	OutWrite:        "Output could not be written",
}

// ID returns the stable short form, e.g. "CSV1002".
func (c Code) ID() string {
	switch ic := int(c); {
	case ic >= 3000:
		return fmt.Sprintf("OUT%04d", ic)
	case ic >= 2000:
		return fmt.Sprintf("CEL%04d", ic)
	case ic >= 1000:
		return fmt.Sprintf("CSV%04d", ic)
	}
	return "E0000"
}

func (c Code) Title() string {
	if d, ok := codeDescription[c]; ok {
		return d
	}
	return codeDescription[UnknownCode]
}

func (c Code) String() string { return c.ID() }
