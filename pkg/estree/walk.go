package estree

// Walk calls fn for n and then, when fn returns true, for each of its descendants in depth-first
// source order.
func Walk(n Node, fn func(Node) bool) {
	if n == nil || !fn(n) {
		return
	}
	for _, c := range Children(n) {
		Walk(c, fn)
	}
}

// CountComments returns the number of comments attached anywhere in the tree rooted at n.
func CountComments(n Node) int {
	count := 0
	Walk(n, func(c Node) bool {
		b := c.Comments()
		count += len(b.LeadingComments) + len(b.TrailingComments)
		return true
	})
	return count
}
