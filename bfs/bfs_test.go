package bfs_test

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"testing"

	"github.com/katalvlaran/advent/bfs"
)

// adjacency turns a map into a NeighborFunc; unknown vertices have no edges.
func adjacency(m map[string][]string) bfs.NeighborFunc[string] {
	return func(v string) ([]string, error) { return m[v], nil }
}

// cycle returns A–B–C–D–A as an undirected adjacency.
func cycle() bfs.NeighborFunc[string] {
	return adjacency(map[string][]string{
		"A": {"B", "D"},
		"B": {"A", "C"},
		"C": {"B", "D"},
		"D": {"C", "A"},
	})
}

// TestBFS_Errors verifies that invalid inputs and options are rejected.
func TestBFS_Errors(t *testing.T) {
	if _, err := bfs.BFS[string]("A", nil); !errors.Is(err, bfs.ErrNilNeighbors) {
		t.Errorf("nil neighbors: want ErrNilNeighbors, got %v", err)
	}
	if _, err := bfs.BFS("A", cycle(), bfs.WithMaxDepth[string](-1)); !errors.Is(err, bfs.ErrOptionViolation) {
		t.Errorf("negative depth: want ErrOptionViolation, got %v", err)
	}
	boom := errors.New("boom")
	failing := func(string) ([]string, error) { return nil, boom }
	if _, err := bfs.BFS("A", failing); !errors.Is(err, bfs.ErrNeighbors) {
		t.Errorf("failing neighbors: want ErrNeighbors, got %v", err)
	}
}

// TestBFS_SimpleTraversal covers the trivial one-vertex graph.
func TestBFS_SimpleTraversal(t *testing.T) {
	res, err := bfs.BFS("A", adjacency(nil))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if want := []string{"A"}; !reflect.DeepEqual(res.Order, want) {
		t.Errorf("Order = %v; want %v", res.Order, want)
	}
	if d := res.Depth["A"]; d != 0 {
		t.Errorf("Depth[A] = %d; want 0", d)
	}
	if res.MaxDepth() != 0 || res.Farthest() != "A" {
		t.Errorf("MaxDepth, Farthest = %d, %q; want 0, A", res.MaxDepth(), res.Farthest())
	}
}

// TestCycleAndDepths covers a simple cycle and checks depths.
func TestCycleAndDepths(t *testing.T) {
	res, err := bfs.BFS("A", cycle())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	wantOrder := []string{"A", "B", "D", "C"}
	if !reflect.DeepEqual(res.Order, wantOrder) {
		t.Errorf("Order = %v; want %v", res.Order, wantOrder)
	}
	wantDepth := map[string]int{"A": 0, "B": 1, "D": 1, "C": 2}
	if !reflect.DeepEqual(res.Depth, wantDepth) {
		t.Errorf("Depth = %v; want %v", res.Depth, wantDepth)
	}
	if res.Parent["C"] != "B" {
		t.Errorf("Parent[C] = %q; want B (first discoverer)", res.Parent["C"])
	}
	if res.MaxDepth() != 2 || res.Farthest() != "C" {
		t.Errorf("MaxDepth, Farthest = %d, %q; want 2, C", res.MaxDepth(), res.Farthest())
	}
}

// TestBFS_MaxDepth limits a chain 0→1→…→9 to depth 3.
func TestBFS_MaxDepth(t *testing.T) {
	chain := func(v int) ([]int, error) {
		if v >= 9 {
			return nil, nil
		}
		return []int{v + 1}, nil
	}
	res, err := bfs.BFS(0, chain, bfs.WithMaxDepth[int](3))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if want := []int{0, 1, 2, 3}; !reflect.DeepEqual(res.Order, want) {
		t.Errorf("Order = %v; want %v", res.Order, want)
	}
}

// TestBFS_FilterNeighbor blocks the A→D edge so D is reached through C.
func TestBFS_FilterNeighbor(t *testing.T) {
	res, err := bfs.BFS("A", cycle(), bfs.WithFilterNeighbor(func(curr, nbr string) bool {
		return !(curr == "A" && nbr == "D")
	}))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if d := res.Depth["D"]; d != 3 {
		t.Errorf("Depth[D] = %d; want 3", d)
	}
}

// TestBFS_Hooks records every hook invocation.
func TestBFS_Hooks(t *testing.T) {
	var enq, deq, vis []string
	_, err := bfs.BFS("A", cycle(),
		bfs.WithOnEnqueue(func(v string, d int) { enq = append(enq, fmt.Sprintf("%s%d", v, d)) }),
		bfs.WithOnDequeue(func(v string, d int) { deq = append(deq, v) }),
		bfs.WithOnVisit(func(v string, d int) error { vis = append(vis, v); return nil }),
	)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if want := []string{"A0", "B1", "D1", "C2"}; !reflect.DeepEqual(enq, want) {
		t.Errorf("enqueue = %v; want %v", enq, want)
	}
	if !reflect.DeepEqual(deq, vis) {
		t.Errorf("dequeue %v != visit %v", deq, vis)
	}

	stop := errors.New("stop")
	res, err := bfs.BFS("A", cycle(), bfs.WithOnVisit(func(v string, _ int) error {
		if v == "B" {
			return stop
		}
		return nil
	}))
	if !errors.Is(err, stop) {
		t.Errorf("OnVisit abort: err = %v; want %v", err, stop)
	}
	if want := []string{"A", "B"}; !reflect.DeepEqual(res.Order, want) {
		t.Errorf("partial Order = %v; want %v", res.Order, want)
	}
}

// TestBFS_PathTo reconstructs a shortest path and rejects unreachable targets.
func TestBFS_PathTo(t *testing.T) {
	res, _ := bfs.BFS("A", cycle())
	path, err := res.PathTo("C")
	if err != nil {
		t.Fatalf("PathTo error: %v", err)
	}
	if want := []string{"A", "B", "C"}; !reflect.DeepEqual(path, want) {
		t.Errorf("PathTo(C) = %v; want %v", path, want)
	}
	if _, err := res.PathTo("Z"); !errors.Is(err, bfs.ErrNoPath) {
		t.Errorf("PathTo(Z) err = %v; want ErrNoPath", err)
	}
}

// TestBFS_Cancellation aborts on an already-cancelled context.
func TestBFS_Cancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := bfs.BFS("A", cycle(), bfs.WithContext[string](ctx)); !errors.Is(err, context.Canceled) {
		t.Errorf("want context.Canceled, got %v", err)
	}
}

// TestBFS_StructVertices runs over a struct-keyed implicit grid.
func TestBFS_StructVertices(t *testing.T) {
	type cell struct{ r, c int }
	grid := func(v cell) ([]cell, error) {
		var out []cell
		for _, d := range []cell{{-1, 0}, {0, 1}, {1, 0}, {0, -1}} {
			n := cell{v.r + d.r, v.c + d.c}
			if n.r >= 0 && n.r < 3 && n.c >= 0 && n.c < 3 {
				out = append(out, n)
			}
		}
		return out, nil
	}
	res, err := bfs.BFS(cell{0, 0}, grid)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(res.Order) != 9 || res.Depth[cell{2, 2}] != 4 {
		t.Errorf("visited %d, Depth[(2,2)] = %d; want 9, 4", len(res.Order), res.Depth[cell{2, 2}])
	}
}
