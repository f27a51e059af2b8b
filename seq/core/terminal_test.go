package core

import "testing"

func TestSpread(t *testing.T) {
	tests := []struct {
		name     string
		input    []int
		expected []int
	}{
		{name: "empty", input: nil, expected: nil},
		{name: "single", input: []int{9}, expected: []int{9}},
		{name: "order preserved", input: []int{3, 1, 2}, expected: []int{3, 1, 2}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Spread(sliceTriple(tt.input))
			if len(got) != len(tt.expected) {
				t.Fatalf("expected %d elements, got %d", len(tt.expected), len(got))
			}
			for i, v := range got {
				if v != tt.expected[i] {
					t.Errorf("element %d: expected %d, got %d", i, tt.expected[i], v)
				}
			}
		})
	}
}

func TestSpreadLongSequence(t *testing.T) {
	// The accumulation loop must handle long sequences without stack
	// growth.
	const n = 500000
	xs := make([]int, n)
	for i := range xs {
		xs[i] = i
	}
	got := Spread(sliceTriple(xs))
	if len(got) != n {
		t.Fatalf("expected %d elements, got %d", n, len(got))
	}
	if got[n-1] != n-1 {
		t.Fatalf("last element: expected %d, got %d", n-1, got[n-1])
	}
}

func TestSpreadValuesRoundTrip(t *testing.T) {
	tuples := [][]int{
		nil,
		{1},
		{20, 4, 18, 6},
		{0, 0, 0},
	}
	for _, tuple := range tuples {
		got := Values(tuple...).Spread()
		if len(got) != len(tuple) {
			t.Fatalf("tuple %v: got %v", tuple, got)
		}
		for i := range tuple {
			if got[i] != tuple[i] {
				t.Errorf("tuple %v element %d: got %d", tuple, i, got[i])
			}
		}
	}
}

func keepEven(pos, v int) Verdict[int] {
	if v%2 == 0 {
		return Keep[int]()
	}
	return Drop[int]()
}

func TestFind(t *testing.T) {
	tests := []struct {
		name      string
		input     []int
		pred      Predicate[int, int]
		wantDone  bool
		wantValue int
	}{
		{
			name:      "first match returned",
			input:     []int{1, 3, 4, 6},
			pred:      keepEven,
			wantValue: 4,
		},
		{
			name:     "no match",
			input:    []int{1, 3, 5},
			pred:     keepEven,
			wantDone: true,
		},
		{
			name:     "empty source",
			input:    nil,
			pred:     keepEven,
			wantDone: true,
		},
		{
			name:  "replacement applies to the found element",
			input: []int{1, 2, 3},
			pred: func(pos, v int) Verdict[int] {
				if v%2 == 0 {
					return Replace(v * 100)
				}
				return Drop[int]()
			},
			wantValue: 200,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := Find(tt.pred, sliceTriple(tt.input))
			if r.IsDone() != tt.wantDone {
				t.Fatalf("IsDone() = %v, want %v", r.IsDone(), tt.wantDone)
			}
			if !tt.wantDone && r.Value() != tt.wantValue {
				t.Errorf("Value() = %d, want %d", r.Value(), tt.wantValue)
			}
		})
	}
}

func TestFindMatchesFilterSpreadHead(t *testing.T) {
	input := []int{7, 2, 5, 8}
	found := Find(keepEven, sliceTriple(input))
	filtered := Filter(keepEven, sliceTriple(input)).Spread()
	if found.IsDone() || len(filtered) == 0 {
		t.Fatal("expected a match in both paths")
	}
	if found.Value() != filtered[0] {
		t.Fatalf("Find = %d, head of filtered spread = %d", found.Value(), filtered[0])
	}
}

func TestFindStopsAtMatch(t *testing.T) {
	calls := 0
	src := counting(sliceTriple([]int{1, 2, 3, 4}), &calls)
	r := Find(keepEven, src)
	if r.Value() != 2 {
		t.Fatalf("expected 2, got %v", r)
	}
	// One dropped element plus the match; nothing past it.
	if calls != 2 {
		t.Fatalf("expected 2 source pulls, got %d", calls)
	}
}

func TestSome(t *testing.T) {
	even := func(pos, v int) bool { return v%2 == 0 }
	tests := []struct {
		name  string
		input []int
		want  bool
	}{
		{name: "empty source is false", input: nil, want: false},
		{name: "no element matches", input: []int{1, 3, 5}, want: false},
		{name: "one element matches", input: []int{1, 2, 3}, want: true},
		{name: "all elements match", input: []int{2, 4}, want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Some(even, sliceTriple(tt.input)); got != tt.want {
				t.Errorf("Some() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestSomeShortCircuits(t *testing.T) {
	calls := 0
	even := func(pos, v int) bool { return v%2 == 0 }
	src := counting(sliceTriple([]int{1, 2, 3, 4, 5}), &calls)
	if !Some(even, src) {
		t.Fatal("expected a match")
	}
	if calls != 2 {
		t.Fatalf("expected 2 source pulls, got %d", calls)
	}
}

func TestEvery(t *testing.T) {
	even := func(pos, v int) bool { return v%2 == 0 }
	tests := []struct {
		name  string
		input []int
		want  bool
	}{
		{name: "empty source is vacuously true", input: nil, want: true},
		{name: "all elements satisfy", input: []int{2, 4, 6}, want: true},
		{name: "one counter-example", input: []int{2, 3, 4}, want: false},
		{name: "no element satisfies", input: []int{1, 3}, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Every(even, sliceTriple(tt.input)); got != tt.want {
				t.Errorf("Every() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestEveryShortCircuits(t *testing.T) {
	calls := 0
	even := func(pos, v int) bool { return v%2 == 0 }
	src := counting(sliceTriple([]int{2, 3, 4, 6, 8}), &calls)
	if Every(even, src) {
		t.Fatal("expected a counter-example")
	}
	// One satisfying element plus the counter-example; nothing past it.
	if calls != 2 {
		t.Fatalf("expected 2 source pulls, got %d", calls)
	}
}

func TestReduce(t *testing.T) {
	sum := func(acc, v int) int { return acc + v }
	tests := []struct {
		name  string
		input []int
		init  int
		want  int
	}{
		{name: "empty returns init", input: nil, init: 7, want: 7},
		{name: "sum", input: []int{1, 2, 3, 4}, init: 0, want: 10},
		{name: "sum with init", input: []int{1, 2}, init: 10, want: 13},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Reduce(sum, tt.init, Values(tt.input...)); got != tt.want {
				t.Errorf("Reduce() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestCount(t *testing.T) {
	if got := Count(Values[int]()); got != 0 {
		t.Errorf("Count of empty = %d, want 0", got)
	}
	if got := Count(Values(1, 2, 3)); got != 3 {
		t.Errorf("Count = %d, want 3", got)
	}
}
