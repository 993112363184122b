// Package buffer provides a growable, append-only byte store with a read
// cursor for Bond CompactBinary v1 encoding and decoding.
//
// # Overview
//
// Buffer is a single contiguous byte slice plus an independent read cursor.
// Writers append to the tail; readers consume from the cursor forward.
// A Buffer may either own its storage (allocated, growable) or borrow
// external bytes read-only (decode-only, zero-copy).
//
// # Key Features
//
//   - Dynamic buffer growth with doubling allocation strategy
//   - Zero-copy borrowing of externally-owned byte slices for decode
//   - Independent read cursor, separate from the write length
//   - Idempotent Clear/Rewind for buffer reuse
//
// # Dependencies
//
// Uses only the Go standard library (slices, for growth).
//
// # Scope
//
// This package is pure byte-level bookkeeping. It knows nothing about
// field headers, varints, or any Bond wire type; that belongs to lib/wire
// and lib/compact.
//
// # Thread Safety
//
// Buffer is NOT thread-safe. A Buffer is a single-writer/single-reader
// resource; callers sharing a Buffer across goroutines must synchronize
// externally.
package buffer

import (
	"errors"
	"slices"
)

// ErrAllocationFailure names the allocation-failure case of the error
// taxonomy. No Buffer method returns it: Reserve grows storage with
// slices.Grow, which panics (or the runtime aborts) instead of returning
// an error when the allocation cannot be made.
var ErrAllocationFailure = errors.New("buffer: allocation failure")

// ErrBorrowedWrite is returned when a write is attempted against a
// borrowed (non-owning) Buffer: borrowed buffers are read-only by
// contract.
var ErrBorrowedWrite = errors.New("buffer: write on borrowed buffer")

// Buffer is a growable append-only byte store with a read cursor.
//
// Invariants: 0 <= readPos <= writeLen <= len(data). When borrowed,
// writeLen == len(data) and Write/WriteByte/Reserve always fail.
type Buffer struct {
	data     []byte
	writeLen int
	readPos  int
	borrowed bool
}

// New allocates an owning Buffer with the given initial capacity.
// A capacity of 0 is valid; the buffer grows on first write.
func New(capacity int) *Buffer {
	return &Buffer{data: make([]byte, 0, capacity)}
}

// NewBorrowed wraps bytes read-only. The returned Buffer never allocates
// and never outlives the caller's ownership of bytes: the bytes must
// remain valid for as long as the Buffer (and any string views derived
// from it by a Reader) are in use.
func NewBorrowed(bytes []byte) *Buffer {
	return &Buffer{data: bytes, writeLen: len(bytes), borrowed: true}
}

// Reserve ensures capacity for at least additional more bytes beyond the
// current write length, growing by doubling if needed.
func (b *Buffer) Reserve(additional int) error {
	if b.borrowed {
		return ErrBorrowedWrite
	}
	if additional <= 0 {
		return nil
	}
	if cap(b.data) < b.writeLen+additional {
		needed := b.writeLen + additional
		newCap := max(cap(b.data)*2, needed)
		b.data = slices.Grow(b.data, newCap-len(b.data))
	}
	return nil
}

// Write appends data to the buffer, growing as needed.
func (b *Buffer) Write(data []byte) error {
	if b.borrowed {
		return ErrBorrowedWrite
	}
	if len(data) == 0 {
		return nil
	}
	if err := b.Reserve(len(data)); err != nil {
		return err
	}
	b.data = append(b.data[:b.writeLen], data...)
	b.writeLen += len(data)
	return nil
}

// WriteByte appends a single byte.
func (b *Buffer) WriteByte(value byte) error {
	return b.Write([]byte{value})
}

// Read copies up to len(dst) bytes starting at the read cursor into dst,
// advancing the cursor, and returns the number of bytes copied.
func (b *Buffer) Read(dst []byte) int {
	n := min(len(dst), b.writeLen-b.readPos)
	if n <= 0 {
		return 0
	}
	copy(dst, b.data[b.readPos:b.readPos+n])
	b.readPos += n
	return n
}

// ReadByte returns the next byte and true, or (0, false) if the cursor has
// reached the write length (end of input).
func (b *Buffer) ReadByte() (byte, bool) {
	if b.readPos >= b.writeLen {
		return 0, false
	}
	v := b.data[b.readPos]
	b.readPos++
	return v, true
}

// Peek copies up to len(dst) bytes starting at the read cursor into dst
// without advancing the cursor, returning the number of bytes copied.
func (b *Buffer) Peek(dst []byte) int {
	n := min(len(dst), b.writeLen-b.readPos)
	if n <= 0 {
		return 0
	}
	copy(dst, b.data[b.readPos:b.readPos+n])
	return n
}

// View returns a zero-copy slice of the next n bytes at the read cursor
// and advances the cursor by n. The caller must not hold the slice beyond
// the lifetime of the Buffer's backing storage, and must not mutate it.
// Returns ok=false without advancing if fewer than n bytes remain.
func (b *Buffer) View(n int) (view []byte, ok bool) {
	if n < 0 || b.Remaining() < n {
		return nil, false
	}
	view = b.data[b.readPos : b.readPos+n]
	b.readPos += n
	return view, true
}

// Remaining reports how many unread bytes are available.
func (b *Buffer) Remaining() int {
	return b.writeLen - b.readPos
}

// Len reports the number of bytes written so far.
func (b *Buffer) Len() int {
	return b.writeLen
}

// Clear resets write length and read cursor to zero, preserving capacity.
// No-op distinction for borrowed buffers: it simply re-reads from the
// start of the caller-supplied bytes, since there is no owned storage to
// release.
func (b *Buffer) Clear() {
	if b.borrowed {
		b.readPos = 0
		return
	}
	b.data = b.data[:0]
	b.writeLen = 0
	b.readPos = 0
}

// Rewind resets the read cursor to the start without touching write state.
func (b *Buffer) Rewind() {
	b.readPos = 0
}

// Bytes returns the written portion of the buffer. For an owning buffer
// this is a slice of the internal storage (not a copy); callers must not
// retain it across further writes.
func (b *Buffer) Bytes() []byte {
	return b.data[:b.writeLen]
}

// Borrowed reports whether this Buffer wraps external, read-only storage.
func (b *Buffer) Borrowed() bool {
	return b.borrowed
}
