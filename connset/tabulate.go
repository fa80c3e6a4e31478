package connset

import (
	"fmt"
	"io"
)

// Tabulate writes every connection of c, one per line, as
// "source target value0 value1 ..." with the columns separated by
// tabs.
func Tabulate(w io.Writer, c Finite) error {
	for conn := range Pairs(c) {
		if _, err := fmt.Fprintf(w, "%d\t%d", conn.I, conn.J); err != nil {
			return err
		}
		for _, v := range conn.Values {
			if _, err := fmt.Fprintf(w, "\t%v", v); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintln(w); err != nil {
			return err
		}
	}
	return nil
}
