package lattice

import (
	"bufio"
	"io"
	"strconv"

	"github.com/pointlander/pamc/internal/pamcerr"
)

// LoadNeighborTable parses N rows x z whitespace-separated non-negative
// integers. It fails with pamcerr.ErrIO on short or unparseable input.
func LoadNeighborTable(r io.Reader, n, z int) ([]int, error) {
	out := make([]int, n*z)
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1<<24)
	scanner.Split(bufio.ScanWords)
	for i := range out {
		if !scanner.Scan() {
			return nil, pamcerr.IO("lattice: neighbor table truncated at entry %d of %d", i, len(out))
		}
		v, err := strconv.Atoi(scanner.Text())
		if err != nil {
			return nil, pamcerr.IO("lattice: neighbor table entry %d unparseable (%q)", i, scanner.Text())
		}
		out[i] = v
	}
	return out, nil
}

// LoadBondTable parses N rows x z whitespace-separated real numbers.
func LoadBondTable(r io.Reader, n, z int) ([]float64, error) {
	out := make([]float64, n*z)
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1<<24)
	scanner.Split(bufio.ScanWords)
	for i := range out {
		if !scanner.Scan() {
			return nil, pamcerr.IO("lattice: bond table truncated at entry %d of %d", i, len(out))
		}
		v, err := strconv.ParseFloat(scanner.Text(), 64)
		if err != nil {
			return nil, pamcerr.IO("lattice: bond table entry %d unparseable (%q)", i, scanner.Text())
		}
		out[i] = v
	}
	return out, nil
}
