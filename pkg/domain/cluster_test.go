package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCluster_Accessors(t *testing.T) {
	c := Cluster{Posts: []Post{
		{Title: "first", Upvotes: 10, Comments: 2},
		{Title: "second", Upvotes: 50, Comments: 10},
		{Title: "third", Upvotes: 55, Comments: 5},
	}}

	assert.Equal(t, 3, c.Size())
	assert.Equal(t, 132, c.TotalEngagement())
	assert.Equal(t, 60, c.PeakEngagement())

	rep := c.Representative()
	require.NotNil(t, rep)
	assert.Equal(t, "second", rep.Title, "engagement tie keeps the earlier member")
}

func TestCluster_Empty(t *testing.T) {
	c := Cluster{}
	assert.Equal(t, 0, c.Size())
	assert.Equal(t, 0, c.TotalEngagement())
	assert.Equal(t, 0, c.PeakEngagement())
	assert.Nil(t, c.Representative())
	assert.Empty(t, c.KeywordCounts())
}

func TestCluster_KeywordCounts(t *testing.T) {
	c := Cluster{Posts: []Post{
		{Keywords: []string{"Dog", "medication "}},
		{Keywords: []string{"ignored"}, Annotation: &Annotation{Keywords: []string{"dog", "reminder"}}},
		{Keywords: []string{"", "dog"}},
	}}

	counts := c.KeywordCounts()
	assert.Equal(t, map[string]int{"dog": 3, "medication": 1, "reminder": 1}, counts)
}
