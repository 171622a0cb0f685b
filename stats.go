package chainmap

// Stats is a point-in-time summary of the table's shape.
type Stats struct {
	Length       int
	Capacity     int
	GrowAt       int
	LoadFactor   float64
	MaxChainLen  int
	EmptyBuckets int
}

func (m *Map[V]) Stats() Stats {
	s := Stats{
		Length:     m.size,
		Capacity:   m.capacity(),
		GrowAt:     m.growAt,
		LoadFactor: float64(m.size) / float64(m.capacity()),
	}

	for i := range m.chains {
		n := m.chains[i].size
		if n == 0 {
			s.EmptyBuckets++
		} else if n > s.MaxChainLen {
			s.MaxChainLen = n
		}
	}

	return s
}
