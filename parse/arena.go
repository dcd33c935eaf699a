package parse

import "fmt"

// Node tag byte. Any value 0..254 read from the first byte of a node is a
// packed leaf's sibling-gap; 0xFF marks a full node.
const fullNodeTag = 0xff

// maxPackedValue is the largest value length a packed leaf can hold: the
// tag/gap byte stores len(value) directly (spec.md §3 invariant I3), so
// it must never reach 255, which would collide with fullNodeTag.
const maxPackedValue = 254

// MaxDataSize bounds the arena per spec.md §4.2: byte offsets are u32 and
// the top of the range is reserved to disambiguate "no sibling/child"(0)
// from a legitimate offset, so growth stops one short of 1<<32.
const MaxDataSize = 1<<32 - 1

// arena is the append-only backing store for a parsed document. Every
// node, packed or full, is written once and never moved except by the
// final shrink-to-fit truncation.
type arena struct {
	data []byte
}

func newArena(sizeHint int) *arena {
	if sizeHint < 64 {
		sizeHint = 64
	}
	return &arena{data: make([]byte, 0, sizeHint)}
}

func (a *arena) len() int { return len(a.data) }

// reserve ensures n more bytes can be appended without reallocating more
// than once, doubling capacity as needed up to MaxDataSize.
func (a *arena) reserve(n int) error {
	need := len(a.data) + n
	if need > MaxDataSize {
		return fmt.Errorf("tml: arena would exceed max size %d", MaxDataSize)
	}
	if need <= cap(a.data) {
		return nil
	}
	newCap := cap(a.data)
	if newCap == 0 {
		newCap = 64
	}
	for newCap < need {
		newCap *= 2
		if newCap > MaxDataSize {
			newCap = MaxDataSize
			break
		}
	}
	grown := make([]byte, len(a.data), newCap)
	copy(grown, a.data)
	a.data = grown
	return nil
}

// writePacked appends a packed leaf node: [gap byte][value][NUL]. gap is
// filled in later by patchNextSibling once the next sibling (if any) is
// known; it defaults to 0, meaning "last child".
func (a *arena) writePacked(value []byte) (offset int, err error) {
	if len(value) > maxPackedValue {
		panic("tml: writePacked called with an over-length value")
	}
	if err := a.reserve(1 + len(value) + 1); err != nil {
		return 0, err
	}
	offset = len(a.data)
	a.data = append(a.data, 0)
	a.data = append(a.data, value...)
	a.data = append(a.data, 0)
	return offset, nil
}

// writeFull appends a full node: [0xFF][next_sibling u32][first_child
// u32][value][NUL]. Both link fields default to 0 ("none") and are
// patched once known.
func (a *arena) writeFull(value []byte) (offset int, err error) {
	if err := a.reserve(1 + 4 + 4 + len(value) + 1); err != nil {
		return 0, err
	}
	offset = len(a.data)
	a.data = append(a.data, fullNodeTag)
	a.data = append(a.data, 0, 0, 0, 0) // next_sibling
	a.data = append(a.data, 0, 0, 0, 0) // first_child
	a.data = append(a.data, value...)
	a.data = append(a.data, 0)
	return offset, nil
}

func putU32(b []byte, v uint32) {
	b[0] = byte(v)
	b[1] = byte(v >> 8)
	b[2] = byte(v >> 16)
	b[3] = byte(v >> 24)
}

func getU32(b []byte) uint32 {
	return uint32(b[0]) | uint32(b[1])<<8 | uint32(b[2])<<16 | uint32(b[3])<<24
}

func (a *arena) isFull(offset int) bool {
	return a.data[offset] == fullNodeTag
}

// patchNextSibling back-patches a node's sibling link. For a full node
// this stores the absolute offset (0 meaning "none"). For a packed node
// the tag/gap byte stores the node's own value length, per spec.md §3
// invariant I3 and §8 ("sibling_offset_byte == value_length"), not the
// jump distance to the sibling; 0 is reserved for "no next sibling". The
// tokenizer emits an empty item only for a dangling '\' at end of input,
// which is always a last child, so 0 is never needed as a real length.
// nextSibling reconstructs the actual offset as offset+2+gap.
func (a *arena) patchNextSibling(offset, sibling int) {
	if a.isFull(offset) {
		putU32(a.data[offset+1:offset+5], uint32(sibling))
		return
	}
	if sibling == 0 {
		a.data[offset] = 0
		return
	}
	valueLen := sibling - offset - 2
	if valueLen <= 0 || valueLen > maxPackedValue {
		panic("tml: packed sibling gap out of range")
	}
	a.data[offset] = byte(valueLen)
}

func (a *arena) patchFirstChild(offset, child int) {
	if !a.isFull(offset) {
		panic("tml: patchFirstChild called on a packed (leafless) node")
	}
	putU32(a.data[offset+5:offset+9], uint32(child))
}

// nodeValue returns the node's value bytes: everything after its header
// up to (not including) the NUL terminator.
func (a *arena) nodeValue(offset int) []byte {
	start := offset + a.headerLen(offset)
	end := start
	for a.data[end] != 0 {
		end++
	}
	return a.data[start:end]
}

func (a *arena) headerLen(offset int) int {
	if a.isFull(offset) {
		return 1 + 4 + 4
	}
	return 1
}

// nextSibling returns the arena offset of offset's next sibling, or -1 if
// it is the last child.
func (a *arena) nextSibling(offset int) int {
	if a.isFull(offset) {
		v := getU32(a.data[offset+1 : offset+5])
		if v == 0 {
			return -1
		}
		return int(v)
	}
	gap := int(a.data[offset])
	if gap == 0 {
		return -1
	}
	return offset + 2 + gap
}

// firstChild returns the arena offset of offset's first child, or -1 if
// offset has no children (always true for packed nodes).
func (a *arena) firstChild(offset int) int {
	if !a.isFull(offset) {
		return -1
	}
	v := getU32(a.data[offset+5 : offset+9])
	if v == 0 {
		return -1
	}
	return int(v)
}

// shrinkToFit truncates the backing slice's capacity to its length,
// releasing any doubling headroom accumulated during the parse.
func (a *arena) shrinkToFit() {
	fit := make([]byte, len(a.data))
	copy(fit, a.data)
	a.data = fit
}
