package comparisons

import (
	"math/rand"
	"testing"

	"github.com/emirpasic/gods/trees/avltree"
	"github.com/emirpasic/gods/utils"
	"github.com/google/btree"
	"github.com/petar/GoLLRB/llrb"

	"github.com/g-m-twostay/go-ordered/Trees"
)

const benchmarkItemCount = 1 << 14

var rg = rand.New(rand.NewSource(1))

var keys = rg.Perm(benchmarkItemCount)

var sideEff bool

// compares with the ordered containers commonly reached for:
// https://github.com/emirpasic/gods trees/avltree (interface keyed),
// https://github.com/google/btree (generic B-tree) and
// https://github.com/petar/GoLLRB (left-leaning red-black tree).
func setupAVL(b *testing.B) *Trees.AVLTree[int, uint32] {
	b.Helper()
	t := Trees.New[int, uint32]()
	for _, k := range keys {
		t.Add(k)
	}
	return t
}

func setupGods(b *testing.B) *avltree.Tree {
	b.Helper()
	t := avltree.NewWith(utils.IntComparator)
	for _, k := range keys {
		t.Put(k, struct{}{})
	}
	return t
}

func setupBTree(b *testing.B) *btree.BTreeG[int] {
	b.Helper()
	t := btree.NewOrderedG[int](32)
	for _, k := range keys {
		t.ReplaceOrInsert(k)
	}
	return t
}

func setupLLRB(b *testing.B) *llrb.LLRB {
	b.Helper()
	t := llrb.New()
	for _, k := range keys {
		t.ReplaceOrInsert(llrb.Int(k))
	}
	return t
}

func Benchmark1AddAVL(b *testing.B) {
	for i := 0; i < b.N; i++ {
		t := Trees.New[int, uint32]()
		for _, k := range keys {
			t.Add(k)
		}
	}
}

func Benchmark1AddGods(b *testing.B) {
	for i := 0; i < b.N; i++ {
		t := avltree.NewWith(utils.IntComparator)
		for _, k := range keys {
			t.Put(k, struct{}{})
		}
	}
}

func Benchmark1AddBTree(b *testing.B) {
	for i := 0; i < b.N; i++ {
		t := btree.NewOrderedG[int](32)
		for _, k := range keys {
			t.ReplaceOrInsert(k)
		}
	}
}

func Benchmark1AddLLRB(b *testing.B) {
	for i := 0; i < b.N; i++ {
		t := llrb.New()
		for _, k := range keys {
			t.ReplaceOrInsert(llrb.Int(k))
		}
	}
}

func Benchmark2HasAVL(b *testing.B) {
	t := setupAVL(b)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		sideEff = t.Has(keys[i&(benchmarkItemCount-1)])
	}
}

func Benchmark2HasGods(b *testing.B) {
	t := setupGods(b)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, sideEff = t.Get(keys[i&(benchmarkItemCount-1)])
	}
}

func Benchmark2HasBTree(b *testing.B) {
	t := setupBTree(b)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		sideEff = t.Has(keys[i&(benchmarkItemCount-1)])
	}
}

func Benchmark2HasLLRB(b *testing.B) {
	t := setupLLRB(b)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		sideEff = t.Has(llrb.Int(keys[i&(benchmarkItemCount-1)]))
	}
}

func Benchmark3RemoveAVL(b *testing.B) {
	for i := 0; i < b.N; i++ {
		b.StopTimer()
		t := setupAVL(b)
		b.StartTimer()
		for _, k := range keys {
			t.Remove(k)
		}
	}
}

func Benchmark3RemoveGods(b *testing.B) {
	for i := 0; i < b.N; i++ {
		b.StopTimer()
		t := setupGods(b)
		b.StartTimer()
		for _, k := range keys {
			t.Remove(k)
		}
	}
}

func Benchmark3RemoveBTree(b *testing.B) {
	for i := 0; i < b.N; i++ {
		b.StopTimer()
		t := setupBTree(b)
		b.StartTimer()
		for _, k := range keys {
			t.Delete(k)
		}
	}
}

func Benchmark3RemoveLLRB(b *testing.B) {
	for i := 0; i < b.N; i++ {
		b.StopTimer()
		t := setupLLRB(b)
		b.StartTimer()
		for _, k := range keys {
			t.Delete(llrb.Int(k))
		}
	}
}
