package comments

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"blog/internal/models"
)

func ptr(v int64) *int64 { return &v }

func comment(id int64, parent *int64) models.Comment {
	return models.Comment{ID: id, PostID: 1, ParentID: parent, Name: "visitor", Content: "c"}
}

func TestBuildDanglingParentBecomesRoot(t *testing.T) {
	forest := Build([]models.Comment{
		comment(1, nil),
		comment(2, ptr(1)),
		comment(3, ptr(99)),
	})
	require.Len(t, forest, 2)
	assert.Equal(t, int64(1), forest[0].ID)
	assert.Equal(t, int64(3), forest[1].ID)
	require.Len(t, forest[0].Replies, 1)
	assert.Equal(t, int64(2), forest[0].Replies[0].ID)
	assert.Empty(t, forest[1].Replies)
}

func TestBuildDeepNesting(t *testing.T) {
	// A reply to a reply attaches to its immediate parent, not the root.
	forest := Build([]models.Comment{
		comment(1, nil),
		comment(2, ptr(1)),
		comment(3, ptr(2)),
	})
	require.Len(t, forest, 1)
	require.Len(t, forest[0].Replies, 1)
	require.Len(t, forest[0].Replies[0].Replies, 1)
	assert.Equal(t, int64(3), forest[0].Replies[0].Replies[0].ID)
}

func TestBuildSelfReferenceBecomesRoot(t *testing.T) {
	forest := Build([]models.Comment{comment(1, ptr(1))})
	require.Len(t, forest, 1)
	assert.Empty(t, forest[0].Replies)
}

func TestBuildEmpty(t *testing.T) {
	assert.Empty(t, Build(nil))
}

func TestBuildSiblingOrderStable(t *testing.T) {
	forest := Build([]models.Comment{
		comment(1, nil),
		comment(4, ptr(1)),
		comment(2, ptr(1)),
		comment(3, ptr(1)),
	})
	require.Len(t, forest, 1)
	ids := []int64{}
	for _, n := range forest[0].Replies {
		ids = append(ids, n.ID)
	}
	assert.Equal(t, []int64{4, 2, 3}, ids)
}

func TestFlattenRebuildRoundTrip(t *testing.T) {
	in := []models.Comment{
		comment(1, nil),
		comment(2, ptr(1)),
		comment(3, ptr(2)),
		comment(4, nil),
		comment(5, ptr(4)),
	}
	first := Build(in)
	second := Build(Flatten(first))

	a, err := json.Marshal(first)
	require.NoError(t, err)
	b, err := json.Marshal(second)
	require.NoError(t, err)
	assert.JSONEq(t, string(a), string(b))
}

func TestNodeJSONShape(t *testing.T) {
	forest := Build([]models.Comment{comment(1, nil)})
	raw, err := json.Marshal(forest)
	require.NoError(t, err)
	assert.Contains(t, string(raw), `"replies":[]`)
	assert.Contains(t, string(raw), `"postId":1`)
}
