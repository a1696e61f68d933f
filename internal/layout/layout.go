// Package layout reconstructs reading-order text lines from positioned
// OCR word boxes.
package layout

import (
	"math"
	"sort"
	"strings"

	visionpb "cloud.google.com/go/vision/v2/apiv1/visionpb"
)

// DefaultYThreshold is the maximum vertical-center distance, in input
// coordinate units (pixels), for two words to share a line.
const DefaultYThreshold = 10

// fullTextAnnotationOffset skips the first annotation returned by the
// text-detection service: it is the whole-image transcription, not a
// positioned word. This is an upstream convention, not inferred logic.
const fullTextAnnotationOffset = 1

// WordBox is a single recognized token with the average of its bounding
// polygon vertices as its 2-D center.
type WordBox struct {
	Text    string
	CenterX float64
	CenterY float64
}

// WordsFromAnnotations converts text annotations into word boxes,
// dropping the leading full-text aggregate and any annotation without
// polygon vertices.
func WordsFromAnnotations(annotations []*visionpb.EntityAnnotation) []WordBox {
	if len(annotations) <= fullTextAnnotationOffset {
		return nil
	}

	var words []WordBox
	for _, ann := range annotations[fullTextAnnotationOffset:] {
		if ann.GetBoundingPoly() == nil {
			continue
		}
		vertices := ann.GetBoundingPoly().GetVertices()
		if len(vertices) == 0 {
			continue
		}
		var sumX, sumY float64
		for _, v := range vertices {
			sumX += float64(v.GetX())
			sumY += float64(v.GetY())
		}
		n := float64(len(vertices))
		words = append(words, WordBox{
			Text:    ann.GetDescription(),
			CenterX: sumX / n,
			CenterY: sumY / n,
		})
	}
	return words
}

// GroupWordsByLines clusters word boxes into lines of text, top to bottom,
// each line's words ordered left to right.
//
// Clustering is greedy first-match: words are visited by ascending
// vertical center and assigned to the first open line whose anchor (the
// vertical center of its first word) is within yThreshold. The anchor
// never drifts as members are added, so the result is a cheap
// approximation that depends on visit order, not a geometric optimum.
func GroupWordsByLines(words []WordBox, yThreshold float64) []string {
	if len(words) == 0 {
		return []string{}
	}
	if yThreshold <= 0 {
		yThreshold = DefaultYThreshold
	}

	sorted := make([]WordBox, len(words))
	copy(sorted, words)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].CenterY < sorted[j].CenterY
	})

	type bucket struct {
		anchorY float64
		members []WordBox
	}

	var buckets []*bucket
	for _, w := range sorted {
		placed := false
		for _, b := range buckets {
			if math.Abs(b.anchorY-w.CenterY) <= yThreshold {
				b.members = append(b.members, w)
				placed = true
				break
			}
		}
		if !placed {
			buckets = append(buckets, &bucket{anchorY: w.CenterY, members: []WordBox{w}})
		}
	}

	lines := make([]string, 0, len(buckets))
	for _, b := range buckets {
		sort.SliceStable(b.members, func(i, j int) bool {
			return b.members[i].CenterX < b.members[j].CenterX
		})
		parts := make([]string, len(b.members))
		for i, w := range b.members {
			parts[i] = w.Text
		}
		lines = append(lines, strings.Join(parts, " "))
	}
	return lines
}

// GroupAnnotationsByLines is the annotation-level convenience used by the
// extraction pipeline.
func GroupAnnotationsByLines(annotations []*visionpb.EntityAnnotation, yThreshold float64) []string {
	return GroupWordsByLines(WordsFromAnnotations(annotations), yThreshold)
}
