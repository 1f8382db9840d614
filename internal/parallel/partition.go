package parallel

// RowsPerBand returns the number of rows assigned to each band when height
// rows are split for the given number of workers.
//
// The result is height/workers + 1 with truncating division. This
// over-allocates slightly, so fewer than workers bands may be produced and
// the last band holds whatever rows remain. If workers <= 0 it is treated as 1.
func RowsPerBand(height, workers int) int {
	if workers <= 0 {
		workers = 1
	}
	return height/workers + 1
}

// Partition splits a row-major pixel buffer into consecutive bands of
// RowsPerBand(height, workers) rows each, the final band holding the
// remainder. Only non-empty bands are returned.
//
// Each band's Pix is a full slice expression over pix, so bands share the
// backing array but cannot grow into each other.
//
// Partition returns nil if width or height is <= 0 or if pix is shorter
// than width*height.
func Partition(pix []byte, width, height, workers int) []Band {
	if width <= 0 || height <= 0 || len(pix) < width*height {
		return nil
	}

	rows := RowsPerBand(height, workers)
	chunk := rows * width
	total := width * height

	bands := make([]Band, 0, (height+rows-1)/rows)
	for i, start := 0, 0; start < total; i, start = i+1, start+chunk {
		end := min(start+chunk, total)

		bands = append(bands, Band{
			Index:  i,
			Top:    rows * i,
			Width:  width,
			Height: (end - start) / width,
			Pix:    pix[start:end:end],
		})
	}

	return bands
}

// Covers reports whether bands exactly cover rows [0,height) in order, with
// no gaps and no overlaps.
func Covers(bands []Band, height int) bool {
	next := 0
	for i := range bands {
		if bands[i].Top != next || bands[i].Height <= 0 {
			return false
		}
		next = bands[i].Bottom()
	}
	return next == height
}
