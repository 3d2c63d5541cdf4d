package ecs

// intersect returns the ids present in every set, in the order of the
// smallest set.
func intersect(sets ...*SparseSet) []int {
	if len(sets) == 0 {
		return nil
	}
	smallest := 0
	for i, s := range sets {
		if s.Len() < sets[smallest].Len() {
			smallest = i
		}
	}
	out := make([]int, 0, sets[smallest].Len())
next:
	for _, id := range sets[smallest].Entities() {
		for i, s := range sets {
			if i != smallest && !s.Has(id) {
				continue next
			}
		}
		out = append(out, id)
	}
	return out
}
