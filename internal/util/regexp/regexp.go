package regexp

import "regexp"

// Match pairs a compiled expression with the value it stands for.
type Match[V any] struct {
	Regexp *regexp.Regexp
	Value  V
}

func MustCompile[V any](expr string, v V) *Match[V] {
	return &Match[V]{
		Regexp: regexp.MustCompile(expr),
		Value:  v,
	}
}

func MatchesAnyRegexp[V any](r []*Match[V], s string) (*Match[V], bool) {
	for _, regex := range r {
		if regex.Regexp.MatchString(s) {
			return regex, true
		}
	}

	return nil, false
}

// ExtractFields returns the named groups of the first match of r in s.
// Groups that did not participate in the match are left out.
func ExtractFields[V any](s string, r *Match[V]) map[string]string {
	match := r.Regexp.FindStringSubmatchIndex(s)
	result := make(map[string]string)
	if match == nil {
		return result
	}

	for i, name := range r.Regexp.SubexpNames() {
		if i == 0 || name == "" || match[2*i] < 0 {
			continue
		}
		result[name] = s[match[2*i]:match[2*i+1]]
	}

	return result
}
