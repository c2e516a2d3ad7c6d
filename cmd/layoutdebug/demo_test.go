package main

import "testing"

func TestBuildDemoTree_HasExpectedShape(t *testing.T) {
	root := buildDemoTree()
	children := root.Children()
	if len(children) != 3 {
		t.Fatalf("expected 3 children, got %d", len(children))
	}
	if !children[0].HasTag("header") {
		t.Error("expected the first child to carry the header tag")
	}
}
