package matrix

import "strings"

// String renders the matrix canonically, one row per line:
//
//	[[2, 1],
//	 [0, 5/2]]
//
// The format is stable and used verbatim in solver traces.
func (m *Dense) String() string {
	if m == nil {
		return "[]"
	}
	var sb strings.Builder
	sb.WriteByte('[')
	for i := 0; i < m.r; i++ {
		if i > 0 {
			sb.WriteString(",\n ")
		}
		sb.WriteByte('[')
		for j := 0; j < m.c; j++ {
			if j > 0 {
				sb.WriteString(", ")
			}
			sb.WriteString(m.data[i*m.c+j].String())
		}
		sb.WriteByte(']')
	}
	sb.WriteByte(']')

	return sb.String()
}

// Strings returns every entry in canonical string form, row by row.
func (m *Dense) Strings() [][]string {
	out := make([][]string, m.r)
	for i := 0; i < m.r; i++ {
		out[i] = make([]string, m.c)
		for j := 0; j < m.c; j++ {
			out[i][j] = m.data[i*m.c+j].String()
		}
	}

	return out
}

// String renders the vector as "[1, 5/2, -3]".
func (v Vector) String() string {
	return "[" + strings.Join(v.Strings(), ", ") + "]"
}

// Strings returns every entry in canonical string form.
func (v Vector) Strings() []string {
	out := make([]string, len(v))
	for i, x := range v {
		out[i] = x.String()
	}

	return out
}
