package segment

import (
	"strings"
	"testing"
)

func BenchmarkSegment(b *testing.B) {
	var sb strings.Builder
	for i := 0; i < 200; i++ {
		sb.WriteString("Hello World\nUnityEngine.Debug:Log(Object)\nFoo:Bar() (at Assets/Foo.cs:10)\nFoo:Baz() (at Assets/Foo.cs:20)\n\n")
	}
	text := sb.String()
	cfg := DefaultConfig()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		Segment(cfg, text)
	}
}

func BenchmarkSegmentFallback(b *testing.B) {
	var sb strings.Builder
	for i := 0; i < 200; i++ {
		sb.WriteString("NullReferenceException: oops\n  at Foo.Bar ()\n  at Foo.Baz ()\n\n")
	}
	text := sb.String()
	cfg := DefaultConfig()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		Segment(cfg, text)
	}
}
