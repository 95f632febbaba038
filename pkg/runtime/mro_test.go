package runtime

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func mroNames(c *Class) []string {
	var names []string
	for _, anc := range c.Mro() {
		names = append(names, anc.Name())
	}
	return names
}

func TestMroLinearChain(t *testing.T) {
	r := NewRegistry()
	a := NewHeapClass("A", r.BuiltinClass(BtObject))
	b := NewHeapClass("B", a)

	want := []string{"B", "A", "object"}
	if diff := cmp.Diff(want, mroNames(b)); diff != "" {
		t.Errorf("mro mismatch (-want +got):\n%s", diff)
	}
}

func TestMroDiamond(t *testing.T) {
	r := NewRegistry()
	object := r.BuiltinClass(BtObject)
	a := NewHeapClass("A", object)
	b := NewHeapClass("B", a)
	c := NewHeapClass("C", a)
	d := NewHeapClass("D", b, c)

	want := []string{"D", "B", "C", "A", "object"}
	if diff := cmp.Diff(want, mroNames(d)); diff != "" {
		t.Errorf("mro mismatch (-want +got):\n%s", diff)
	}
}

func TestMroMultipleBuiltinBases(t *testing.T) {
	r := NewRegistry()
	m := NewHeapClass("M", r.BuiltinClass(BtStr), r.BuiltinClass(BtInt))

	want := []string{"M", "str", "int", "object"}
	if diff := cmp.Diff(want, mroNames(m)); diff != "" {
		t.Errorf("mro mismatch (-want +got):\n%s", diff)
	}
}

func TestMroCachedUntilMutation(t *testing.T) {
	r := NewRegistry()
	object := r.BuiltinClass(BtObject)
	a := NewHeapClass("A", object)
	b := NewHeapClass("B", object)
	c := NewHeapClass("C", a)

	first := c.Mro()
	second := c.Mro()
	if &first[0] != &second[0] {
		t.Errorf("expected cached mro slice to be reused")
	}

	gen := Generation()
	c.SetBases(b)
	if Generation() == gen {
		t.Errorf("expected SetBases to bump the class generation")
	}

	want := []string{"C", "B", "object"}
	if diff := cmp.Diff(want, mroNames(c)); diff != "" {
		t.Errorf("mro after rebase mismatch (-want +got):\n%s", diff)
	}
}

func TestMroSubclassSeesAncestorRebase(t *testing.T) {
	r := NewRegistry()
	object := r.BuiltinClass(BtObject)
	a := NewHeapClass("A", object)
	b := NewHeapClass("B", object)
	mid := NewHeapClass("Mid", a)
	leaf := NewHeapClass("Leaf", mid)

	if diff := cmp.Diff([]string{"Leaf", "Mid", "A", "object"}, mroNames(leaf)); diff != "" {
		t.Fatalf("initial mro mismatch (-want +got):\n%s", diff)
	}

	// Mutating an ancestor must invalidate the leaf's cached chain too.
	mid.SetBases(b)
	if diff := cmp.Diff([]string{"Leaf", "Mid", "B", "object"}, mroNames(leaf)); diff != "" {
		t.Errorf("mro after ancestor rebase mismatch (-want +got):\n%s", diff)
	}
}

func TestMroInconsistentHierarchyPanics(t *testing.T) {
	r := NewRegistry()
	object := r.BuiltinClass(BtObject)
	a := NewHeapClass("A", object)
	b := NewHeapClass("B", a)
	// A before B contradicts B's own linearization.
	bad := NewHeapClass("Bad", a, b)

	defer func() {
		if recover() == nil {
			t.Errorf("expected inconsistent hierarchy to panic")
		}
	}()
	bad.Mro()
}
