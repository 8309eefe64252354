package manager

import (
	"fmt"
	"io"
	"strconv"

	"github.com/harrybrwn/errs"
	"github.com/harrybrwn/roster/cmd/internal"
	"github.com/harrybrwn/roster/roster"
)

// Format is the way students are printed when they are listed.
type Format string

const (
	// FormatDebug prints each student as a multi-line block.
	FormatDebug Format = "debug"
	// FormatTable prints all the students in one table.
	FormatTable Format = "table"
)

// ParseFormat validates a format name. An empty name
// is the debug format.
func ParseFormat(name string) (Format, error) {
	switch Format(name) {
	case "", FormatDebug:
		return FormatDebug, nil
	case FormatTable:
		return FormatTable, nil
	}
	return "", errs.New("unknown list format " + strconv.Quote(name))
}

func writeStudents(w io.Writer, f Format, color bool, students []roster.Student) {
	if len(students) == 0 {
		return
	}
	switch f {
	case FormatTable:
		tab := internal.NewTable(w)
		internal.SetTableHeader(tab, []string{"name", "age", "score"}, color)
		for _, s := range students {
			tab.Append([]string{
				s.Name,
				strconv.FormatUint(uint64(s.Age), 10),
				strconv.FormatUint(uint64(s.Score), 10),
			})
		}
		tab.Render()
	default:
		for _, s := range students {
			writeDebug(w, s)
		}
	}
}

func writeDebug(w io.Writer, s roster.Student) {
	fmt.Fprintf(w, "Student {\n    name: %q,\n    age: %d,\n    score: %d,\n}\n", s.Name, s.Age, s.Score)
}
