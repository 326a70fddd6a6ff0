package flight

import "testing"

func TestInitializeStartsOnFreeCenter(t *testing.T) {
	for seed := int64(1); seed <= 30; seed++ {
		s := NewSession(SessionOptions{MatrixSize: 41, BlockSize: 50, DrawMax: 6, Seed: seed})
		s.Initialize(500, 300)

		pos := s.Position()
		if pos.X != 20 || pos.Y != 20 {
			t.Fatalf("seed %d: position = (%d, %d), expected (20, 20)", seed, pos.X, pos.Y)
		}
		if st, _ := s.Matrix().At(pos.X, pos.Y); st != Free {
			t.Fatalf("seed %d: start cell = %v, expected free", seed, st)
		}
		if pos.Heading != North {
			t.Errorf("seed %d: heading = %v, expected north", seed, pos.Heading)
		}
	}
}

func TestInitializeVisibleBlocks(t *testing.T) {
	tests := []struct {
		w, h   int
		vx, vy int
	}{
		{1820, 980, 36, 19},
		{50, 50, 1, 1},
		{49, 99, 0, 1},
		{0, 0, 0, 0},
		{-10, 100, 0, 2},
	}

	for _, tc := range tests {
		s := NewSession(SessionOptions{MatrixSize: 20, BlockSize: 50, Seed: 1})
		vp := s.Initialize(tc.w, tc.h)

		vx, vy := s.VisibleBlocks()
		if vx != tc.vx || vy != tc.vy {
			t.Errorf("Initialize(%d, %d) visible = %dx%d, expected %dx%d", tc.w, tc.h, vx, vy, tc.vx, tc.vy)
		}
		if vp.Width() != tc.vx || vp.Height() != tc.vy {
			t.Errorf("Initialize(%d, %d) viewport = %dx%d, expected %dx%d",
				tc.w, tc.h, vp.Width(), vp.Height(), tc.vx, tc.vy)
		}
	}
}

func TestInitializeDiscardsPriorState(t *testing.T) {
	s := NewSession(SessionOptions{MatrixSize: 30, BlockSize: 10, Seed: 8})
	s.Initialize(100, 100)
	first := s.Matrix()

	s.SetHeading(East)
	s.Tick()
	s.Initialize(200, 50)

	if s.Matrix() == first {
		t.Error("Initialize should generate a new matrix")
	}
	snap := s.Snapshot()
	if snap.X != 15 || snap.Y != 15 || snap.Heading != North {
		t.Errorf("snapshot = %+v, expected center heading north", snap)
	}
	if snap.Tick != 0 {
		t.Errorf("Tick = %d, expected 0 after reinitialize", snap.Tick)
	}
	if snap.Run != 2 {
		t.Errorf("Run = %d, expected 2", snap.Run)
	}
	if snap.VisibleX != 20 || snap.VisibleY != 5 {
		t.Errorf("visible = %dx%d, expected 20x5", snap.VisibleX, snap.VisibleY)
	}
}

func TestSessionDeterminism(t *testing.T) {
	opts := SessionOptions{MatrixSize: 101, BlockSize: 50, Seed: 12345}

	run := func() Snapshot {
		s := NewSession(opts)
		s.Initialize(800, 600)
		for i := range 40 {
			switch i {
			case 5:
				s.SetHeading(East)
			case 15:
				s.SetHeading(South)
			case 30:
				s.SetHeading(West)
			}
			if s.Tick().Outcome == OutcomeCrashed {
				break
			}
		}
		return s.Snapshot()
	}

	a, b := run(), run()
	if a != b {
		t.Errorf("same seed produced different snapshots:\n%+v\n%+v", a, b)
	}
}

func TestUninitializedSession(t *testing.T) {
	s := NewSession(SessionOptions{})

	if s.Initialized() {
		t.Error("new session should not be initialized")
	}
	if res := s.Tick(); res.Outcome != 0 {
		t.Errorf("Tick on uninitialized session = %v, expected zero result", res.Outcome)
	}
	if s.State() != Running {
		t.Errorf("State = %v, expected running", s.State())
	}
	if vp := s.Viewport(); vp.Width() != 0 || vp.Height() != 0 {
		t.Error("uninitialized viewport should be empty")
	}

	opts := s.Options()
	if opts.MatrixSize != DefaultMatrixSize || opts.BlockSize != DefaultBlockSize || opts.DrawMax != DefaultDrawMax {
		t.Errorf("Options() = %+v, expected defaults", opts)
	}
}
