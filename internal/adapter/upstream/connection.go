package upstream

type (
	PageInfo struct {
		HasNextPage     bool   `json:"hasNextPage"`
		HasPreviousPage bool   `json:"hasPreviousPage"`
		StartCursor     string `json:"startCursor"`
		EndCursor       string `json:"endCursor"`
	}

	Edge[T any] struct {
		Cursor string `json:"cursor"`
		Node   T      `json:"node"`
	}

	// A Connection is a paginated list as returned by the backends.
	Connection[T any] struct {
		PageInfo PageInfo  `json:"pageInfo"`
		Edges    []Edge[T] `json:"edges"`
	}
)

// Nodes drops the edge wrappers and returns the nodes in upstream order.
//
// A nil connection yields an empty, non-nil slice.
func (c *Connection[T]) Nodes() []T {
	if c == nil {
		return []T{}
	}
	nodes := make([]T, len(c.Edges))
	for i, e := range c.Edges {
		nodes[i] = e.Node
	}
	return nodes
}

// MapNodes flattens c and maps every node with fn.
func MapNodes[T, R any](c *Connection[T], fn func(T) R) []R {
	nodes := c.Nodes()
	res := make([]R, len(nodes))
	for i, n := range nodes {
		res[i] = fn(n)
	}
	return res
}
