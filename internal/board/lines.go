package board

// ClearFullLines removes every full row and compacts the grid once.
// Rows are scanned top to bottom. It returns the number of rows removed.
func (g *Grid) ClearFullLines() int {
	removed := 0
	for r := 0; r < g.rows; r++ {
		if g.IsRowFull(r) {
			g.RemoveRow(r)
			removed++
		}
	}
	if removed > 0 {
		g.Compact()
	}
	return removed
}
