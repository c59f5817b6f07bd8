package lattice

// BuildCubic constructs a cubic L×L×L lattice with periodic boundaries
// and uniform unit ferromagnetic bonds (J=1). Sites are flattened
// row-major: idx = ((i*L)+j)*L+k. Neighbor slots are ordered
// {-x, +x, -y, +y, -z, +z}.
func BuildCubic(l int) (*Shared, error) {
	n := l * l * l
	const z = 6
	neighbor := make([]int, n*z)
	bond := make([]float64, n*z)

	idx := func(i, j, k int) int {
		return (mod(i, l)*l+mod(j, l))*l + mod(k, l)
	}

	for i := 0; i < l; i++ {
		for j := 0; j < l; j++ {
			for k := 0; k < l; k++ {
				site := idx(i, j, k)
				base := site * z
				neighbor[base+0] = idx(i-1, j, k)
				neighbor[base+1] = idx(i+1, j, k)
				neighbor[base+2] = idx(i, j-1, k)
				neighbor[base+3] = idx(i, j+1, k)
				neighbor[base+4] = idx(i, j, k-1)
				neighbor[base+5] = idx(i, j, k+1)
				for n := 0; n < z; n++ {
					bond[base+n] = 1.0
				}
			}
		}
	}

	return New(l, n, z, neighbor, bond)
}

func mod(i, m int) int {
	r := i % m
	if r < 0 {
		r += m
	}
	return r
}
