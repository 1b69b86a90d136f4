package solve

import "math/bits"

// cellSet is a bitmask over the 81 linear cell indices, the working
// currency of the fish and uniqueness engines. Two machine words keep
// set algebra branch-free.
type cellSet [2]uint64

func (s cellSet) has(i int) bool { return s[i>>6]&(1<<uint(i&63)) != 0 }

func (s *cellSet) add(i int) { s[i>>6] |= 1 << uint(i&63) }

func (s cellSet) and(o cellSet) cellSet    { return cellSet{s[0] & o[0], s[1] & o[1]} }
func (s cellSet) or(o cellSet) cellSet     { return cellSet{s[0] | o[0], s[1] | o[1]} }
func (s cellSet) andNot(o cellSet) cellSet { return cellSet{s[0] &^ o[0], s[1] &^ o[1]} }

func (s cellSet) empty() bool { return s[0] == 0 && s[1] == 0 }

func (s cellSet) count() int { return bits.OnesCount64(s[0]) + bits.OnesCount64(s[1]) }

// cells returns the member indices in ascending order — the scan order
// every engine relies on for stable results.
func (s cellSet) cells() []int {
	out := make([]int, 0, s.count())
	for w := 0; w < 2; w++ {
		word := s[w]
		for word != 0 {
			b := bits.TrailingZeros64(word)
			out = append(out, w*64+b)
			word &= word - 1
		}
	}
	return out
}
