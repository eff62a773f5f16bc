package hashtable

// Stats is a point-in-time occupancy snapshot, mainly useful for
// watching the rebuild policy at work.
type Stats struct {
	Size         int
	Capacity     int
	LoadFactor   float64
	EmptyBuckets int
	LongestChain int
}

// Stats scans the whole bucket array; O(capacity).
func (m *Map[K, V]) Stats() Stats {
	s := Stats{
		Size:       m.size,
		Capacity:   len(m.buckets),
		LoadFactor: float64(m.size) / float64(len(m.buckets)),
	}

	for _, chain := range m.buckets {
		if len(chain) == 0 {
			s.EmptyBuckets++
		}
		if len(chain) > s.LongestChain {
			s.LongestChain = len(chain)
		}
	}

	return s
}
