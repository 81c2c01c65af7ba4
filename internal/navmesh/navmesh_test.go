package navmesh

import (
	"testing"

	"matchsim/internal/geom"
)

func openArena() *Navmesh {
	return NewNavmesh(0, 0, 20, 20, 1, []Region{
		{Kind: Walkable, MinX: 0, MinZ: 0, MaxX: 20, MaxZ: 20},
	})
}

func TestWalkableDefaultsFalseOutsideRegions(t *testing.T) {
	n := NewNavmesh(0, 0, 10, 10, 1, nil)
	if n.Walkable(geom.Vec3{X: 5, Z: 5}) {
		t.Fatal("expected no walkable cells without any Walkable region")
	}
}

func TestWalkableInsideRegion(t *testing.T) {
	n := openArena()
	if !n.Walkable(geom.Vec3{X: 10, Z: 10}) {
		t.Fatal("expected center of walkable region to be walkable")
	}
}

func TestBlockedRegionOverridesWalkable(t *testing.T) {
	n := NewNavmesh(0, 0, 20, 20, 1, []Region{
		{Kind: Walkable, MinX: 0, MinZ: 0, MaxX: 20, MaxZ: 20},
		{Kind: Blocked, MinX: 8, MinZ: 8, MaxX: 12, MaxZ: 12},
	})
	if n.Walkable(geom.Vec3{X: 10, Z: 10}) {
		t.Fatal("expected blocked region to override walkable")
	}
	if !n.Walkable(geom.Vec3{X: 1, Z: 1}) {
		t.Fatal("expected cell outside blocked region to stay walkable")
	}
}

func TestFindPathStraightLine(t *testing.T) {
	n := openArena()
	path := n.FindPath(geom.Vec3{X: 1, Z: 1}, geom.Vec3{X: 1, Z: 8})
	if len(path) == 0 {
		t.Fatal("expected a path across an open arena")
	}
	last := path[len(path)-1]
	if last.X != 1 || last.Z != 8 {
		t.Fatalf("expected path to end exactly at goal, got %v", last)
	}
}

func TestFindPathAroundObstacle(t *testing.T) {
	n := NewNavmesh(0, 0, 20, 20, 1, []Region{
		{Kind: Walkable, MinX: 0, MinZ: 0, MaxX: 20, MaxZ: 20},
		{Kind: Blocked, MinX: 5, MinZ: 0, MaxX: 9, MaxZ: 15},
	})
	path := n.FindPath(geom.Vec3{X: 2, Z: 2}, geom.Vec3{X: 15, Z: 2})
	if path == nil {
		t.Fatal("expected a path that routes around the blocked strip")
	}
}

func TestFindPathUnreachableReturnsNil(t *testing.T) {
	n := NewNavmesh(0, 0, 20, 20, 1, []Region{
		{Kind: Walkable, MinX: 0, MinZ: 0, MaxX: 9, MaxZ: 20},
		{Kind: Walkable, MinX: 11, MinZ: 0, MaxX: 20, MaxZ: 20},
	})
	path := n.FindPath(geom.Vec3{X: 1, Z: 1}, geom.Vec3{X: 19, Z: 1})
	if path != nil {
		t.Fatal("expected nil path between disconnected walkable islands")
	}
}

func TestFindPathSameCellReturnsGoalOnly(t *testing.T) {
	n := openArena()
	path := n.FindPath(geom.Vec3{X: 1, Z: 1}, geom.Vec3{X: 1.2, Z: 1.2})
	if len(path) != 1 {
		t.Fatalf("expected single-waypoint path within one cell, got %d", len(path))
	}
}
