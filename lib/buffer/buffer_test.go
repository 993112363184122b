package buffer

import (
	"bytes"
	"testing"
)

func TestNewGrowsOnWrite(t *testing.T) {
	b := New(0)
	if b.Len() != 0 {
		t.Errorf("initial len should be 0, got %d", b.Len())
	}
	if err := b.Write([]byte("hello")); err != nil {
		t.Fatalf("Write failed: %v", err)
	}
	if b.Len() != 5 {
		t.Errorf("after Write, len should be 5, got %d", b.Len())
	}
	if !bytes.Equal(b.Bytes(), []byte("hello")) {
		t.Errorf("Bytes() = %q, want %q", b.Bytes(), "hello")
	}
}

func TestWriteByte(t *testing.T) {
	b := New(0)
	for i := range 4 {
		if err := b.WriteByte(byte(i)); err != nil {
			t.Fatalf("WriteByte %d failed: %v", i, err)
		}
	}
	if !bytes.Equal(b.Bytes(), []byte{0, 1, 2, 3}) {
		t.Errorf("Bytes() = %v, want [0 1 2 3]", b.Bytes())
	}
}

func TestReadAndReadByte(t *testing.T) {
	b := New(0)
	_ = b.Write([]byte{1, 2, 3, 4, 5})

	dst := make([]byte, 2)
	n := b.Read(dst)
	if n != 2 || !bytes.Equal(dst, []byte{1, 2}) {
		t.Fatalf("Read() = %d, %v, want 2, [1 2]", n, dst)
	}
	if b.Remaining() != 3 {
		t.Errorf("Remaining() = %d, want 3", b.Remaining())
	}

	v, ok := b.ReadByte()
	if !ok || v != 3 {
		t.Fatalf("ReadByte() = %d, %v, want 3, true", v, ok)
	}

	rest := make([]byte, 10)
	n = b.Read(rest)
	if n != 2 || !bytes.Equal(rest[:2], []byte{4, 5}) {
		t.Fatalf("Read() = %d, %v, want 2, [4 5 ...]", n, rest[:2])
	}

	if _, ok := b.ReadByte(); ok {
		t.Error("ReadByte() at end of input should return ok=false")
	}
}

func TestPeekDoesNotAdvance(t *testing.T) {
	b := New(0)
	_ = b.Write([]byte{9, 8, 7})

	dst := make([]byte, 2)
	n := b.Peek(dst)
	if n != 2 || !bytes.Equal(dst, []byte{9, 8}) {
		t.Fatalf("Peek() = %d, %v, want 2, [9 8]", n, dst)
	}
	if b.Remaining() != 3 {
		t.Errorf("Peek should not advance cursor; Remaining() = %d, want 3", b.Remaining())
	}
}

func TestViewZeroCopy(t *testing.T) {
	b := New(0)
	_ = b.Write([]byte("hello world"))

	view, ok := b.View(5)
	if !ok || string(view) != "hello" {
		t.Fatalf("View(5) = %q, %v, want \"hello\", true", view, ok)
	}
	if b.Remaining() != 6 {
		t.Errorf("Remaining() = %d, want 6", b.Remaining())
	}

	if _, ok := b.View(100); ok {
		t.Error("View() past Remaining() should return ok=false")
	}
}

func TestClearAndRewind(t *testing.T) {
	b := New(0)
	_ = b.Write([]byte{1, 2, 3})
	_, _ = b.ReadByte()

	b.Rewind()
	if b.Remaining() != 3 {
		t.Errorf("after Rewind, Remaining() = %d, want 3", b.Remaining())
	}

	b.Clear()
	if b.Len() != 0 || b.Remaining() != 0 {
		t.Errorf("after Clear, Len()=%d Remaining()=%d, want 0, 0", b.Len(), b.Remaining())
	}
	if err := b.Write([]byte{9}); err != nil {
		t.Fatalf("Write after Clear failed: %v", err)
	}
	if !bytes.Equal(b.Bytes(), []byte{9}) {
		t.Errorf("Bytes() after Clear+Write = %v, want [9]", b.Bytes())
	}
}

func TestBorrowedIsReadOnly(t *testing.T) {
	b := NewBorrowed([]byte{1, 2, 3})
	if !b.Borrowed() {
		t.Error("Borrowed() should be true")
	}
	if err := b.Write([]byte{4}); err != ErrBorrowedWrite {
		t.Errorf("Write on borrowed buffer = %v, want ErrBorrowedWrite", err)
	}
	if err := b.WriteByte(4); err != ErrBorrowedWrite {
		t.Errorf("WriteByte on borrowed buffer = %v, want ErrBorrowedWrite", err)
	}
	if b.Remaining() != 3 {
		t.Errorf("Remaining() = %d, want 3", b.Remaining())
	}
}

func TestGrowthPreservesBytes(t *testing.T) {
	b := New(1)
	var want []byte
	for i := range 64 {
		want = append(want, byte(i))
		if err := b.WriteByte(byte(i)); err != nil {
			t.Fatalf("WriteByte(%d) failed: %v", i, err)
		}
	}
	if !bytes.Equal(b.Bytes(), want) {
		t.Errorf("Bytes() after growth = %v, want %v", b.Bytes(), want)
	}
}
