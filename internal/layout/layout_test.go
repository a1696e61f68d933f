package layout

import (
	"reflect"
	"testing"

	visionpb "cloud.google.com/go/vision/v2/apiv1/visionpb"
)

func TestGroupWordsByLines(t *testing.T) {
	tests := []struct {
		name      string
		words     []WordBox
		threshold float64
		want      []string
	}{
		{
			name:      "empty input",
			words:     nil,
			threshold: 10,
			want:      []string{},
		},
		{
			name:      "single word",
			words:     []WordBox{{Text: "Total", CenterX: 4, CenterY: 9}},
			threshold: 10,
			want:      []string{"Total"},
		},
		{
			name: "two lines split by threshold",
			words: []WordBox{
				{Text: "A", CenterX: 0, CenterY: 0},
				{Text: "B", CenterX: 10, CenterY: 2},
				{Text: "C", CenterX: 0, CenterY: 50},
			},
			threshold: 10,
			want:      []string{"A B", "C"},
		},
		{
			name: "same line reordered left to right",
			words: []WordBox{
				{Text: "9.99", CenterX: 200, CenterY: 14},
				{Text: "Burger", CenterX: 10, CenterY: 12},
				{Text: "x1", CenterX: 90, CenterY: 13},
			},
			threshold: 10,
			want:      []string{"Burger x1 9.99"},
		},
		{
			name: "unsorted vertical input",
			words: []WordBox{
				{Text: "bottom", CenterX: 0, CenterY: 100},
				{Text: "top", CenterX: 0, CenterY: 0},
				{Text: "middle", CenterX: 0, CenterY: 50},
			},
			threshold: 10,
			want:      []string{"top", "middle", "bottom"},
		},
		{
			// Anchors do not drift: a word 8px below the anchor joins the
			// line, and a later word 8px below *that* one opens a new line
			// because it is 16px from the original anchor.
			name: "first-match against anchor not running average",
			words: []WordBox{
				{Text: "a", CenterX: 0, CenterY: 0},
				{Text: "b", CenterX: 10, CenterY: 8},
				{Text: "c", CenterX: 20, CenterY: 16},
			},
			threshold: 10,
			want:      []string{"a b", "c"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := GroupWordsByLines(tt.words, tt.threshold)
			if !reflect.DeepEqual(got, tt.want) {
				t.Fatalf("GroupWordsByLines() = %v, want %v", got, tt.want)
			}
		})
	}
}

func annotation(text string, xs, ys []int32) *visionpb.EntityAnnotation {
	vertices := make([]*visionpb.Vertex, len(xs))
	for i := range xs {
		vertices[i] = &visionpb.Vertex{X: xs[i], Y: ys[i]}
	}
	return &visionpb.EntityAnnotation{
		Description:  text,
		BoundingPoly: &visionpb.BoundingPoly{Vertices: vertices},
	}
}

func TestWordsFromAnnotations(t *testing.T) {
	anns := []*visionpb.EntityAnnotation{
		annotation("FULL TEXT\nAGGREGATE", []int32{0, 100, 100, 0}, []int32{0, 0, 200, 200}),
		annotation("Diner", []int32{0, 40, 40, 0}, []int32{10, 10, 20, 20}),
		annotation("Cafe", []int32{50, 90, 90, 50}, []int32{12, 12, 22, 22}),
	}

	words := WordsFromAnnotations(anns)
	if len(words) != 2 {
		t.Fatalf("expected 2 word boxes (aggregate skipped), got %d", len(words))
	}
	if words[0].Text != "Diner" || words[0].CenterX != 20 || words[0].CenterY != 15 {
		t.Fatalf("unexpected first word box: %+v", words[0])
	}

	lines := GroupAnnotationsByLines(anns, 10)
	if len(lines) != 1 || lines[0] != "Diner Cafe" {
		t.Fatalf("expected single line %q, got %v", "Diner Cafe", lines)
	}
}

func TestWordsFromAnnotationsEdgeCases(t *testing.T) {
	if got := WordsFromAnnotations(nil); got != nil {
		t.Fatalf("nil annotations should yield nil, got %v", got)
	}
	// Only the aggregate present: no detectable words.
	only := []*visionpb.EntityAnnotation{annotation("x", []int32{0}, []int32{0})}
	if got := WordsFromAnnotations(only); got != nil {
		t.Fatalf("aggregate-only input should yield nil, got %v", got)
	}
	// Annotation without vertices is dropped rather than crashing.
	anns := []*visionpb.EntityAnnotation{
		annotation("agg", []int32{0}, []int32{0}),
		{Description: "orphan"},
		annotation("kept", []int32{2, 4}, []int32{6, 8}),
	}
	words := WordsFromAnnotations(anns)
	if len(words) != 1 || words[0].Text != "kept" {
		t.Fatalf("expected only the vertexed annotation, got %v", words)
	}
}
