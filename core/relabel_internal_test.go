// SPDX-License-Identifier: MIT

package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVertexAttrs_RemovedVertex(t *testing.T) {
	g := NewGraph()
	require.NoError(t, g.AddVertexWithAttrs("a", map[string]interface{}{"adm1": 3}))
	vmap := g.VerticesMap()
	require.NoError(t, g.RemoveVertex("a"))

	attrs, err := g.vertexAttrs(vmap, "a")
	require.NoError(t, err, "snapshot still holds the vertex")
	assert.Equal(t, 3, attrs["adm1"])

	_, err = g.vertexAttrs(g.VerticesMap(), "a")
	require.ErrorIs(t, err, ErrVertexNotFound)
}
