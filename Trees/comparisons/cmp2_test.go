package comparisons

import (
	"testing"

	"github.com/alphadose/haxmap"
	"github.com/cornelk/hashmap"
	"github.com/emirpasic/gods/trees/avltree"
	"github.com/emirpasic/gods/utils"

	"github.com/g-m-twostay/go-ordered/Trees"
)

// Unordered baselines for pure membership load, using
// https://github.com/alphadose/haxmap and https://github.com/cornelk/hashmap.
// The tree pays O(log n) per lookup for keeping order; these pay ~O(1) and
// keep none.
func setupHaxMap(b *testing.B) *haxmap.Map[int, struct{}] {
	b.Helper()
	m := haxmap.New[int, struct{}]()
	for _, k := range keys {
		m.Set(k, struct{}{})
	}
	return m
}

func setupHashMap(b *testing.B) *hashmap.Map[int, struct{}] {
	b.Helper()
	m := hashmap.New[int, struct{}]()
	for _, k := range keys {
		m.Set(k, struct{}{})
	}
	return m
}

func Benchmark4MemberAVL(b *testing.B) {
	t := setupAVL(b)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		sideEff = t.Has(keys[i&(benchmarkItemCount-1)])
	}
}

func Benchmark4MemberHaxMap(b *testing.B) {
	m := setupHaxMap(b)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, sideEff = m.Get(keys[i&(benchmarkItemCount-1)])
	}
}

func Benchmark4MemberHashMap(b *testing.B) {
	m := setupHashMap(b)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, sideEff = m.Get(keys[i&(benchmarkItemCount-1)])
	}
}

// TestAgainstGods drives this AVL tree and the gods AVL tree with the same
// random operation stream and compares every observable at the end.
func TestAgainstGods(t *testing.T) {
	tree := Trees.New[int, uint16]()
	ref := avltree.NewWith(utils.IntComparator)
	for i := 0; i < 1<<16; i++ {
		k := rg.Intn(1 << 12)
		_, found := ref.Get(k)
		if rg.Intn(3) == 0 {
			if ok, _ := tree.Remove(k); ok != found {
				t.Fatalf("remove %d: got %v, reference %v", k, ok, found)
			}
			ref.Remove(k)
		} else {
			if tree.Add(k) == found {
				t.Fatalf("add %d disagrees with reference", k)
			}
			ref.Put(k, struct{}{})
		}
	}
	if int(tree.Size()) != ref.Size() {
		t.Fatalf("tree size is %d, reference %d", tree.Size(), ref.Size())
	}
	if !tree.IsBalanced() {
		t.Fatal("tree isn't balanced")
	}
	s := tree.Sorted()
	for i, k := range ref.Keys() {
		if s[i] != k.(int) {
			t.Fatalf("order mismatch at %d: %v vs %v", i, s[i], k)
		}
	}
}
