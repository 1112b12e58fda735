package encoder

// Node is one encoded instruction: its 32-bit machine word and the
// 16-bit word address it was placed at.
type Node struct {
	Word    uint32
	Address uint16
}

// LineBuffer is the ordered pair of FIFO queues the translator runs on: raw
// source lines in, encoded nodes out. Both are modeled as plain slices used
// FIFO-style; the spec is indifferent to the concrete queue representation
// (any ordered container is acceptable) so no linked-list machinery is
// introduced for it.
type LineBuffer struct {
	lines []string
	nodes []Node
}

// NewLineBuffer returns an empty LineBuffer.
func NewLineBuffer() *LineBuffer {
	return &LineBuffer{}
}

// PushLine appends a raw source line to the line queue.
func (b *LineBuffer) PushLine(line string) {
	b.lines = append(b.lines, line)
}

// PopLine removes and returns the oldest queued line.
func (b *LineBuffer) PopLine() (string, bool) {
	if len(b.lines) == 0 {
		return "", false
	}
	line := b.lines[0]
	b.lines = b.lines[1:]
	return line, true
}

// PushNode appends an encoded node to the output queue.
func (b *LineBuffer) PushNode(n Node) {
	b.nodes = append(b.nodes, n)
}

// PopNode removes and returns the oldest queued node.
func (b *LineBuffer) PopNode() (Node, bool) {
	if len(b.nodes) == 0 {
		return Node{}, false
	}
	n := b.nodes[0]
	b.nodes = b.nodes[1:]
	return n, true
}

// LineLen returns the number of lines still queued.
func (b *LineBuffer) LineLen() int { return len(b.lines) }

// NodeLen returns the number of encoded nodes produced so far.
func (b *LineBuffer) NodeLen() int { return len(b.nodes) }
