package ndlz

import "testing"

func TestGridShape_ExactAndPadded(t *testing.T) {
	cases := []struct {
		shape          [2]int32
		wantR, wantC   int
	}{
		{[2]int32{8, 8}, 1, 1},
		{[2]int32{16, 8}, 2, 1},
		{[2]int32{10, 10}, 2, 2},
		{[2]int32{1, 1}, 1, 1},
		{[2]int32{256, 256}, 32, 32},
	}
	for _, c := range cases {
		gr, gc := gridShape(c.shape)
		if gr != c.wantR || gc != c.wantC {
			t.Fatalf("gridShape(%v) = (%d,%d), want (%d,%d)", c.shape, gr, gc, c.wantR, c.wantC)
		}
	}
}

func TestIsPaddedCell(t *testing.T) {
	shape := [2]int32{10, 10}
	gridRows, gridCols := gridShape(shape)

	cases := []struct {
		gi, gj               int
		wantPadded           bool
		wantPadRows, wantPadCols int
	}{
		{0, 0, false, 8, 8},
		{0, 1, true, 8, 2},
		{1, 0, true, 2, 8},
		{1, 1, true, 2, 2},
	}
	for _, c := range cases {
		padded, pr, pc := isPaddedCell(shape, c.gi, c.gj, gridRows, gridCols)
		if padded != c.wantPadded || pr != c.wantPadRows || pc != c.wantPadCols {
			t.Fatalf("isPaddedCell(%d,%d) = (%v,%d,%d), want (%v,%d,%d)",
				c.gi, c.gj, padded, pr, pc, c.wantPadded, c.wantPadRows, c.wantPadCols)
		}
	}
}

func TestExtractCell_RowMajorLayout(t *testing.T) {
	shape := [2]int32{8, 16}
	src := make([]byte, 8*16)
	for i := range src {
		src[i] = byte(i)
	}

	cell := extractCell(src, shape, 0, 1)
	if len(cell) != cellSize {
		t.Fatalf("extracted cell length = %d, want %d", len(cell), cellSize)
	}
	for r := 0; r < cellShape; r++ {
		want := src[r*16+8 : r*16+16]
		got := cellRow(cell, r)
		for i := range want {
			if got[i] != want[i] {
				t.Fatalf("row %d byte %d = %d, want %d", r, i, got[i], want[i])
			}
		}
	}
}

func TestExtractPaddedCell_LiveExtentOnly(t *testing.T) {
	shape := [2]int32{10, 10}
	src := make([]byte, 100)
	for i := range src {
		src[i] = byte(i)
	}

	buf := extractPaddedCell(src, shape, 1, 1, 2, 2)
	if len(buf) != 4 {
		t.Fatalf("padded corner cell payload length = %d, want 4", len(buf))
	}
	want := []byte{src[8*10+8], src[8*10+9], src[9*10+8], src[9*10+9]}
	for i, b := range want {
		if buf[i] != b {
			t.Fatalf("byte %d = %d, want %d", i, buf[i], b)
		}
	}
}

func TestBuildSixRowBuf_ExcludesGivenPair(t *testing.T) {
	cell := make([]byte, cellSize)
	for r := 0; r < cellShape; r++ {
		for c := 0; c < cellShape; c++ {
			cell[r*cellShape+c] = byte(r)
		}
	}

	buf := buildSixRowBuf(cell, 2, 5)
	if len(buf) != sixRowBufLen {
		t.Fatalf("six-row buffer length = %d, want %d", len(buf), sixRowBufLen)
	}

	wantRows := []int{0, 1, 3, 4, 6, 7}
	for idx, r := range wantRows {
		got := buf[idx*cellShape : (idx+1)*cellShape]
		for _, b := range got {
			if b != byte(r) {
				t.Fatalf("six-row buffer segment %d should be row %d's content, got byte %d", idx, r, b)
			}
		}
	}
}

func TestBuildTripleBuf_AndPairBuf(t *testing.T) {
	cell := make([]byte, cellSize)
	for r := 0; r < cellShape; r++ {
		for c := 0; c < cellShape; c++ {
			cell[r*cellShape+c] = byte(0x10 + r)
		}
	}

	tri := buildTripleBuf(cell, 1, 3, 6)
	if len(tri) != tripleBufLen {
		t.Fatalf("triple buffer length = %d, want %d", len(tri), tripleBufLen)
	}
	wantTri := []byte{0x11, 0x13, 0x16}
	for i, want := range wantTri {
		if tri[i*cellShape] != want {
			t.Fatalf("triple row %d starts with %02x, want %02x", i, tri[i*cellShape], want)
		}
	}

	pair := buildPairBuf(cell, 0, 7)
	if len(pair) != pairBufLen {
		t.Fatalf("pair buffer length = %d, want %d", len(pair), pairBufLen)
	}
	if pair[0] != 0x10 || pair[cellShape] != 0x17 {
		t.Fatalf("pair buffer rows = %02x,%02x, want 10,17", pair[0], pair[cellShape])
	}
}

func TestAllBytesEqual(t *testing.T) {
	uniform := make([]byte, cellSize)
	for i := range uniform {
		uniform[i] = 0x5A
	}
	if !allBytesEqual(uniform) {
		t.Fatal("uniform cell should report all-equal")
	}

	mixed := make([]byte, cellSize)
	copy(mixed, uniform)
	mixed[cellSize-1] = 0x5B
	if allBytesEqual(mixed) {
		t.Fatal("a single differing byte should break all-equal")
	}
}
