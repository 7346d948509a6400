// Package genome provides the GRCh38 chromosome catalogue and the
// linearized genome coordinate used by the GBID variant codec.
package genome

// Chromosome is one entry of the reference catalogue.
type Chromosome struct {
	Name   string
	Length int64
}

// chromosomes lists the GRCh38 primary assembly in canonical order.
// The order is load-bearing: offsets are exclusive prefix sums over it,
// so reordering or inserting entries changes every encoded position.
var chromosomes = []Chromosome{
	{"1", 248956422},
	{"2", 242193529},
	{"3", 198295559},
	{"4", 190214555},
	{"5", 181538259},
	{"6", 170805979},
	{"7", 159345973},
	{"8", 145138636},
	{"9", 138394717},
	{"10", 133797422},
	{"11", 135086622},
	{"12", 133275309},
	{"13", 114364328},
	{"14", 107043718},
	{"15", 101991189},
	{"16", 90338345},
	{"17", 83257441},
	{"18", 80373285},
	{"19", 58617616},
	{"20", 64444167},
	{"21", 46709983},
	{"22", 50818468},
	{"X", 156040895},
	{"Y", 57227415},
	{"M", 16569},
}

var (
	chromIndex  map[string]int
	offsets     []int64
	totalLength int64
)

func init() {
	chromIndex = make(map[string]int, len(chromosomes))
	offsets = make([]int64, len(chromosomes))
	var sum int64
	for i, c := range chromosomes {
		chromIndex[c.Name] = i
		offsets[i] = sum
		sum += c.Length
	}
	totalLength = sum
}

// Names returns the chromosome names in catalogue order.
func Names() []string {
	names := make([]string, len(chromosomes))
	for i, c := range chromosomes {
		names[i] = c.Name
	}
	return names
}

// LengthOf returns the reference length of a chromosome. Names are
// matched exactly; callers normalize ("chr" stripping, case) first.
func LengthOf(name string) (int64, bool) {
	i, ok := chromIndex[name]
	if !ok {
		return 0, false
	}
	return chromosomes[i].Length, true
}

// OffsetOf returns the cumulative length of all chromosomes preceding
// name in catalogue order.
func OffsetOf(name string) (int64, bool) {
	i, ok := chromIndex[name]
	if !ok {
		return 0, false
	}
	return offsets[i], true
}

// TotalLength returns the summed length of the whole catalogue. Global
// positions are valid in [0, TotalLength).
func TotalLength() int64 {
	return totalLength
}

// GlobalToChrom maps a global position back to (chromosome, 1-based
// position). Returns ok == false when gp is outside [0, TotalLength).
func GlobalToChrom(gp int64) (string, int64, bool) {
	if gp < 0 || gp >= totalLength {
		return "", 0, false
	}
	// Binary search for the last offset <= gp.
	lo, hi := 0, len(offsets)-1
	for lo < hi {
		mid := (lo + hi + 1) / 2
		if offsets[mid] <= gp {
			lo = mid
		} else {
			hi = mid - 1
		}
	}
	return chromosomes[lo].Name, gp - offsets[lo] + 1, true
}
