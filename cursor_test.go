package ndlz

import "testing"

func TestOutCursor_BoundsChecking(t *testing.T) {
	buf := make([]byte, 4)
	out := newOutCursor(buf)

	if !out.writeU16LE(0x1234) {
		t.Fatal("writeU16LE should fit in 4 bytes")
	}
	if out.remaining() != 2 {
		t.Fatalf("remaining = %d, want 2", out.remaining())
	}
	if out.writeU32LE(0) {
		t.Fatal("writeU32LE should not fit in the remaining 2 bytes")
	}
	if !out.writeU16LE(0x5678) {
		t.Fatal("second writeU16LE should exactly fill the buffer")
	}
	if out.remaining() != 0 {
		t.Fatalf("remaining = %d, want 0", out.remaining())
	}
	if out.writeU8(0) {
		t.Fatal("writeU8 into a full buffer should fail")
	}

	want := []byte{0x34, 0x12, 0x78, 0x56}
	for i, b := range want {
		if buf[i] != b {
			t.Fatalf("buf[%d] = %02x, want %02x", i, buf[i], b)
		}
	}
}

func TestOutCursor_BigEndianFields(t *testing.T) {
	buf := make([]byte, 5)
	out := newOutCursor(buf)

	if !out.writeU16BE(0xABCD) {
		t.Fatal("writeU16BE failed")
	}
	if !out.writeU24BE(0x00EF0102) {
		t.Fatal("writeU24BE failed")
	}

	want := []byte{0xAB, 0xCD, 0xEF, 0x01, 0x02}
	for i, b := range want {
		if buf[i] != b {
			t.Fatalf("buf[%d] = %02x, want %02x", i, buf[i], b)
		}
	}
}

func TestInCursor_RoundTripsOutCursorFields(t *testing.T) {
	buf := make([]byte, 16)
	out := newOutCursor(buf)
	out.writeU8(0x9A)
	out.writeU16LE(0x1122)
	out.writeU32LE(0xAABBCCDD)
	out.writeU16BE(0x3344)
	out.writeU24BE(0x556677)

	in := newInCursor(buf[:out.pos])

	if v, ok := in.readU8(); !ok || v != 0x9A {
		t.Fatalf("readU8 = %02x,%v want 9a,true", v, ok)
	}
	if v, ok := in.readU16LE(); !ok || v != 0x1122 {
		t.Fatalf("readU16LE = %04x,%v want 1122,true", v, ok)
	}
	if v, ok := in.readU32LE(); !ok || v != 0xAABBCCDD {
		t.Fatalf("readU32LE = %08x,%v want aabbccdd,true", v, ok)
	}
	if v, ok := in.readU16BE(); !ok || v != 0x3344 {
		t.Fatalf("readU16BE = %04x,%v want 3344,true", v, ok)
	}
	if v, ok := in.readU24BE(); !ok || v != 0x556677 {
		t.Fatalf("readU24BE = %06x,%v want 556677,true", v, ok)
	}
	if in.remaining() != 0 {
		t.Fatalf("remaining = %d, want 0", in.remaining())
	}
}

func TestInCursor_PeekDoesNotAdvance(t *testing.T) {
	in := newInCursor([]byte{0x42, 0x43})

	v, ok := in.peekU8()
	if !ok || v != 0x42 {
		t.Fatalf("peekU8 = %02x,%v want 42,true", v, ok)
	}
	v2, ok := in.readU8()
	if !ok || v2 != v {
		t.Fatalf("readU8 after peekU8 = %02x,%v want %02x,true", v2, ok, v)
	}
}

func TestInCursor_RewindReReadsAsWiderField(t *testing.T) {
	in := newInCursor([]byte{0x38, 0x10})

	first, ok := in.readU8()
	if !ok || first != 0x38 {
		t.Fatalf("readU8 = %02x,%v want 38,true", first, ok)
	}

	in.rewind(1)
	wide, ok := in.readU16BE()
	if !ok || wide != 0x3810 {
		t.Fatalf("readU16BE after rewind = %04x,%v want 3810,true", wide, ok)
	}
}

func TestInCursor_ReadBytesUnderrun(t *testing.T) {
	in := newInCursor([]byte{1, 2, 3})

	if _, ok := in.readBytes(4); ok {
		t.Fatal("readBytes should fail when fewer bytes remain than requested")
	}
	if in.pos != 0 {
		t.Fatal("a failed readBytes should not advance the cursor")
	}

	p, ok := in.readBytes(3)
	if !ok || len(p) != 3 {
		t.Fatalf("readBytes(3) = %v,%v", p, ok)
	}
}
