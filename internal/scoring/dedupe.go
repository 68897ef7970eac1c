package scoring

// Dedupe drops every candidate whose label and card set match one already
// seen. The first occurrence is kept and input order is preserved.
func Dedupe(cands []Candidate) []Candidate {
	seen := make(map[Key]struct{}, len(cands))
	out := make([]Candidate, 0, len(cands))
	for _, c := range cands {
		k := c.Key()
		if _, dup := seen[k]; dup {
			continue
		}
		seen[k] = struct{}{}
		out = append(out, c)
	}
	return out
}
