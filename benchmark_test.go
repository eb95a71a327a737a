package anyerr

import (
	"errors"
	"testing"
)

func BenchmarkNewAdhoc(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_ = New("boom")
	}
}

func BenchmarkFrom(b *testing.B) {
	cause := errors.New("boom")
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = From(cause)
	}
}

func BenchmarkWrap(b *testing.B) {
	base := Message("boom")
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = Wrap(base, "layer")
	}
}

func BenchmarkWrapWithSuccessPath(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_ = WrapWith(nil, func() any { return "never built" })
	}
}

func buildDeepWrap(depth int) *Error {
	e := Message("leaf")
	for i := 0; i < depth; i++ {
		e = Wrap(e, "layer")
	}
	return e
}

func BenchmarkChainLenDeep(b *testing.B) {
	e := buildDeepWrap(64)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = e.Chain().Len()
	}
}

func BenchmarkExtendedDeep(b *testing.B) {
	e := buildDeepWrap(16)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = e.Extended()
	}
}

func BenchmarkDowncastRef(b *testing.B) {
	e := Wrap(From(&parseError{Line: 1, Msg: "x"}), "ctx")
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = DowncastRef[*parseError](e)
	}
}
