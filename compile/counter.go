package compile

import "strconv"

// counter generates the fresh internal wire names the splicing
// operations need, mirroring the source's single shared node_index
// variable threaded through regex_to_nfa.
type counter struct{ n int }

func (c *counter) name(offset int) string {
	return strconv.Itoa(c.n + offset)
}

func (c *counter) advance(by int) {
	c.n += by
}
