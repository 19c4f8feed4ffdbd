package main

import (
	"fmt"
	"io"

	"github.com/marcodamonte/mechanics/hashmap"
)

var seats = []struct {
	name string
	seat int
}{
	{"Lucie", 2},
	{"Tabouret", 5},
}

func fill(m *hashmap.Map[string, int]) {
	for _, s := range seats {
		m.Put(s.name, s.seat)
	}
}

// printValues writes the values in the map's own iteration order.
func printValues(w io.Writer, m *hashmap.Map[string, int]) {
	for _, v := range m.All() {
		fmt.Fprintf(w, "%d ", v)
	}
	fmt.Fprintln(w)
}

func demoWeightedSum(w io.Writer) {
	m := hashmap.New[string, int](hashmap.WeightedSum)
	fill(m)
	printValues(w, m)

	for _, s := range seats {
		fmt.Fprintf(w, "  hash(%q) = %d\n", s.name, hashmap.WeightedSum(s.name))
	}
}

func demoXXHash(w io.Writer) {
	m := hashmap.New[string, int](hashmap.XXHash)
	fill(m)
	printValues(w, m)
	fmt.Fprintf(w, "  len=%d buckets=%d load=%.2f\n", m.Len(), m.Buckets(), m.LoadFactor())
}
