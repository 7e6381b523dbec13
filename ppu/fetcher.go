package ppu

// fetchState is the five-state pixel-fetcher machine.
type fetchState int

const (
	fetchTile fetchState = iota
	fetchDataLow
	fetchDataHigh
	fetchIdle
	fetchPush
)

// fetcher tracks the pixel fetcher's progress through one 8-pixel tile
// column: which column of the background (or window) it is fetching,
// the tile ID and plane bytes collected so far, and whether the window
// has taken over this scanline.
type fetcher struct {
	state  fetchState
	halfDot bool // the fetcher advances one state every other dot

	fetchX int // tile column, 0..31 (wraps across the 256px BG plane)
	tileID  byte
	dataLow byte
	dataHigh byte

	inWindow bool
	winCol   int // tile column within the window tile map

	lineX   int // pixels popped from the FIFO so far this line
	pushedX int // pixel column already written into the framebuffer
}

func (f *fetcher) reset() {
	*f = fetcher{}
}

// pixelFIFO is a fixed-capacity ring buffer of composed ARGB pixels.
// Pixels are only ever pushed eight at a time, and only when the queue
// holds at most 8 entries already, which keeps it from ever exceeding
// its 16-slot capacity.
type pixelFIFO struct {
	data  [16]uint32
	head  int
	count int
}

func (q *pixelFIFO) reset() { *q = pixelFIFO{} }

func (q *pixelFIFO) len() int { return q.count }

func (q *pixelFIFO) push(v uint32) {
	idx := (q.head + q.count) % len(q.data)
	q.data[idx] = v
	q.count++
}

func (q *pixelFIFO) pop() uint32 {
	v := q.data[q.head]
	q.head = (q.head + 1) % len(q.data)
	q.count--
	return v
}

func (q *pixelFIFO) clear() {
	q.head, q.count = 0, 0
}
