package fetcher

import (
	"strconv"

	"github.com/sells-group/compliscore/internal/model"
)

var demoPrefixes = []string{
	"Alpha", "Beta", "Gamma", "Delta", "Epsilon", "Zeta", "Theta", "Lambda",
	"Orion", "Nova", "Apex", "Summit", "Pioneer", "Vertex", "Atlas", "Crown",
	"Harbor", "Cobalt", "Sterling", "Quantum", "Falcon", "Aurora", "Nimbus",
	"Horizon", "Frontier", "Regal", "Everest", "Beacon", "Crescent", "Keystone",
}

var demoSuffixes = []string{
	"Securities", "Capital", "Investments", "Wealth", "Brokerage", "Advisors",
	"Markets", "Partners", "Financial", "Holdings",
}

// DefaultDemoRows is the demo dataset size when none is configured.
const DefaultDemoRows = 30

// Demo synthesizes a deterministic table of n broker records. Every field
// is a fixed arithmetic function of the row index, so repeated calls yield
// identical tables and reproducible aggregate statistics.
func Demo(n int) *model.Table {
	if n <= 0 {
		n = DefaultDemoRows
	}

	t := &model.Table{
		Columns: model.RequiredColumns(),
		Rows:    make([][]string, 0, n),
	}

	for i := 0; i < n; i++ {
		kyc := "Y"
		if i%3 == 0 {
			kyc = "N"
		}
		t.Rows = append(t.Rows, []string{
			demoName(i),
			kyc,
			strconv.Itoa(90 + (i*11)%40), // 90% to 129%
			strconv.Itoa((i * 2) % 7),    // 0..6 complaints
			strconv.Itoa(i % 4),          // 0..3 days
		})
	}

	return t
}

// demoName composes a broker name from cycling prefix and suffix lists.
func demoName(i int) string {
	p := demoPrefixes[i%len(demoPrefixes)]
	s := demoSuffixes[(i*3)%len(demoSuffixes)]
	return p + " " + s
}
