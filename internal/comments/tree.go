// Package comments turns a post's flat comment list into the nested reply
// forest the client renders.
package comments

import "blog/internal/models"

type Node struct {
	models.Comment
	Replies []*Node `json:"replies"`
}

// Build materializes the reply forest. All nodes live in one arena slice and
// parents are resolved through an id index, so there are no ownership cycles.
// A comment whose parent id is missing from the input (or points at itself)
// becomes a root instead of being dropped. Input order is preserved among
// siblings. O(n) time and space, any nesting depth.
func Build(list []models.Comment) []*Node {
	nodes := make([]Node, len(list))
	index := make(map[int64]int, len(list))
	for i, c := range list {
		nodes[i] = Node{Comment: c, Replies: []*Node{}}
		index[c.ID] = i
	}
	roots := []*Node{}
	for i := range nodes {
		p := nodes[i].ParentID
		if p == nil {
			roots = append(roots, &nodes[i])
			continue
		}
		j, ok := index[*p]
		if !ok || j == i {
			roots = append(roots, &nodes[i])
			continue
		}
		nodes[j].Replies = append(nodes[j].Replies, &nodes[i])
	}
	return roots
}

// Flatten is Build's inverse: depth-first, parents before replies.
func Flatten(forest []*Node) []models.Comment {
	out := []models.Comment{}
	var walk func(ns []*Node)
	walk = func(ns []*Node) {
		for _, n := range ns {
			out = append(out, n.Comment)
			walk(n.Replies)
		}
	}
	walk(forest)
	return out
}
