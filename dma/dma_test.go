package dma

import "testing"

type fakeSource struct{ mem [0x10000]byte }

func (s *fakeSource) ReadDMA(addr uint16) byte { return s.mem[addr] }

type fakeDest struct{ oam [160]byte }

func (d *fakeDest) WriteOAMByte(index byte, v byte) { d.oam[index] = v }

func TestDMACopiesAfterStartDelay(t *testing.T) {
	src := &fakeSource{}
	for i := 0; i < 160; i++ {
		src.mem[0x4000+i] = byte(i)
	}
	dst := &fakeDest{}

	e := &Engine{}
	e.Start(0x40)

	// the first startDelay ticks do nothing but hold the engine active.
	for i := 0; i < startDelay; i++ {
		if !e.Active() {
			t.Fatalf("engine inactive during start delay at tick %d", i)
		}
		e.Tick(src, dst)
		if e.counter != 0 {
			t.Fatalf("copy progressed during start delay at tick %d", i)
		}
	}

	for i := 0; i < 160; i++ {
		if !e.Active() {
			t.Fatalf("engine went inactive early, at copy step %d", i)
		}
		e.Tick(src, dst)
	}

	if e.Active() {
		t.Fatal("engine still active after 160 bytes copied")
	}
	for i := 0; i < 160; i++ {
		if dst.oam[i] != byte(i) {
			t.Fatalf("oam[%d] = 0x%02X, want 0x%02X", i, dst.oam[i], byte(i))
		}
	}
}

func TestSnapshotRestoreRoundTrip(t *testing.T) {
	src, dst := &fakeSource{}, &fakeDest{}
	e := &Engine{}
	e.Start(0x40)
	for i := 0; i < startDelay+10; i++ {
		e.Tick(src, dst)
	}

	snap := e.Snapshot()
	if !snap.Active {
		t.Fatal("expected engine active mid-transfer for a meaningful snapshot")
	}

	e.Restore(State{}) // scramble to zero state
	e.Restore(snap)

	if e.page != snap.Page || e.counter != snap.Counter || e.delay != snap.Delay || e.active != snap.Active {
		t.Fatalf("engine state after restore = %+v, want snapshot %+v", e, snap)
	}
}

func TestDMARestartMidTransfer(t *testing.T) {
	src := &fakeSource{}
	src.mem[0x2000] = 0xAA
	src.mem[0x5000] = 0xBB
	dst := &fakeDest{}

	e := &Engine{}
	e.Start(0x20)
	for i := 0; i < startDelay+5; i++ {
		e.Tick(src, dst)
	}

	e.Start(0x50) // restart before the first transfer finished
	for i := 0; i < startDelay; i++ {
		e.Tick(src, dst)
	}
	e.Tick(src, dst)

	if dst.oam[0] != 0xBB {
		t.Fatalf("oam[0] = 0x%02X, want 0xBB from the restarted page", dst.oam[0])
	}
}
