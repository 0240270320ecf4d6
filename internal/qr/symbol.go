package qr

import (
	"fmt"
	"strconv"
	"strings"

	qrcode "github.com/skip2/go-qrcode"
)

// moduleTenthsMM is the printed size of one QR module in tenths of a
// millimetre: 0.8mm, i.e. a box size of 8 pixels at the 10px/mm scale the
// clip hosting pages render at. Integer tenths keep the emitted path
// coordinates exact.
const moduleTenthsMM = 8

// Symbol is a rendered QR code: an SVG <path> element in millimetre units
// plus the physical side length of the module grid including its quiet
// zone. Consumers translate the symbol into place but never rescale it, so
// longer URLs simply produce larger symbols.
type Symbol struct {
	Path   string
	SideMM float64
}

// Generate encodes url as a QR symbol with medium error correction.
func Generate(url string) (Symbol, error) {
	code, err := qrcode.New(url, qrcode.Medium)
	if err != nil {
		return Symbol{}, fmt.Errorf("qr encode %q: %w", url, err)
	}

	grid := code.Bitmap()
	return Symbol{
		Path:   pathElement(grid),
		SideMM: float64(len(grid)*moduleTenthsMM) / 10,
	}, nil
}

// pathElement draws every dark module as part of one path, merging
// horizontal runs per row to keep the output compact.
func pathElement(grid [][]bool) string {
	var b strings.Builder
	b.WriteString(`<path d="`)
	for y, row := range grid {
		x := 0
		for x < len(row) {
			if !row[x] {
				x++
				continue
			}
			run := 0
			for x+run < len(row) && row[x+run] {
				run++
			}
			fmt.Fprintf(&b, "M%s %sh%sv%sh-%sz",
				tenths(x*moduleTenthsMM),
				tenths(y*moduleTenthsMM),
				tenths(run*moduleTenthsMM),
				tenths(moduleTenthsMM),
				tenths(run*moduleTenthsMM),
			)
			x += run
		}
	}
	b.WriteString(`" fill="#000000" fill-rule="evenodd"/>`)
	return b.String()
}

// tenths formats a tenth-of-millimetre count as a millimetre decimal.
func tenths(v int) string {
	if v%10 == 0 {
		return strconv.Itoa(v / 10)
	}
	return fmt.Sprintf("%d.%d", v/10, v%10)
}
