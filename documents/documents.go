// Package documents declares the event-model document types and drives
// batch schema generation for them.
package documents

import em "github.com/bluesky/event-model-go"

// dataFrame is a table fragment: each data key maps to a column array.
func dataFrame() *em.Shape { return em.Map(em.Array(em.Any())) }

// dataFrameForFilled is a dataFrame restricted to the values the
// 'filled' bookkeeping uses: booleans or foreign keys.
func dataFrameForFilled() *em.Shape {
	return em.Map(em.Array(em.Union(em.Boolean(), em.String())))
}
