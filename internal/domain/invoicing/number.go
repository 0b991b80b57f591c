package invoicing

import (
	"fmt"
	"regexp"
	"strconv"
)

// NumberPrefix is the prefix of generated invoice numbers
const NumberPrefix = "INV"

// numberPattern matches generated numbers of the form INV-NNNN. Other
// numbering schemes a user typed in by hand are ignored when computing
// the next sequence.
var numberPattern = regexp.MustCompile(`^` + NumberPrefix + `-(\d+)$`)

// NextNumber scans existing invoice numbers for the INV-NNNN pattern,
// takes the highest numeric suffix and returns it incremented, zero
// padded to four digits (e.g. "INV-0004"). With no matching numbers the
// sequence starts at "INV-0001".
func NextNumber(existing []string) string {
	var max int64
	for _, number := range existing {
		m := numberPattern.FindStringSubmatch(number)
		if m == nil {
			continue
		}
		n, err := strconv.ParseInt(m[1], 10, 64)
		if err != nil {
			continue
		}
		if n > max {
			max = n
		}
	}
	return fmt.Sprintf("%s-%04d", NumberPrefix, max+1)
}
