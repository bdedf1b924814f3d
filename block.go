package memspace

import "strconv"

// Block is a contiguous region [Base, Base+Length) of the address space.
type Block struct {
	Base   int `json:"base"`
	Length int `json:"length"`
}

// End returns the first address past the block.
func (b Block) End() int {
	return b.Base + b.Length
}

// Contains reports whether addr falls inside the block.
func (b Block) Contains(addr int) bool {
	return addr >= b.Base && addr < b.End()
}

// Adjacent reports whether next starts exactly where b ends.
func (b Block) Adjacent(next Block) bool {
	return b.End() == next.Base
}

func (b Block) String() string {
	return string(b.appendTo(nil))
}

// appendTo renders "(base , length)".
func (b Block) appendTo(buf []byte) []byte {
	buf = append(buf, '(')
	buf = strconv.AppendInt(buf, int64(b.Base), 10)
	buf = append(buf, " , "...)
	buf = strconv.AppendInt(buf, int64(b.Length), 10)
	return append(buf, ')')
}
