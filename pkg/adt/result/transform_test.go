package result

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ib-77/adt3/pkg/adt"
	"github.com/ib-77/adt3/pkg/adt/option"
)

func TestMap_PureTransform(t *testing.T) {
	require := require.New(t)

	calls := 0
	toStr := func(n int) string { calls++; return strconv.Itoa(n) }

	r := Map(Ok[int, string](5), toStr)
	require.Equal("5", r.Unwrap())
	require.Equal(1, calls)

	e := Map(Err[int, string]("bad"), toStr)
	require.Equal("bad", e.UnwrapErr())
	require.Equal(1, calls)
}

func TestBind_SwitchesResult(t *testing.T) {
	require := require.New(t)

	parse := func(s string) Result[int, string] {
		n, err := strconv.Atoi(s)
		if err != nil {
			return Err[int, string]("not a number: " + s)
		}
		return Ok[int, string](n)
	}

	require.Equal(5, Bind(Ok[string, string]("5"), parse).Unwrap())
	require.Equal("not a number: x", Bind(Ok[string, string]("x"), parse).UnwrapErr())
	require.Equal("bad", Bind(Err[string, string]("bad"), parse).UnwrapErr())
}

func TestMapErr_BindErr(t *testing.T) {
	require := require.New(t)

	wrap := func(s string) string { return "wrapped: " + s }
	require.Equal("wrapped: bad", MapErr(Err[int, string]("bad"), wrap).UnwrapErr())
	require.Equal(5, MapErr(Ok[int, string](5), wrap).Unwrap())

	recovered := func(s string) Result[int, int] {
		if s == "recoverable" {
			return Ok[int, int](0)
		}
		return Err[int, int](len(s))
	}
	require.Equal(0, BindErr(Err[int, string]("recoverable"), recovered).Unwrap())
	require.Equal(5, BindErr(Err[int, string]("fatal"), recovered).UnwrapErr())
	require.Equal(7, BindErr(Ok[int, string](7), recovered).Unwrap())
}

func TestMapOr_Folds(t *testing.T) {
	require := require.New(t)

	require.Equal("5", MapOr(Ok[int, string](5), strconv.Itoa, "x"))
	require.Equal("x", MapOr(Err[int, string]("bad"), strconv.Itoa, "x"))

	dCalls := 0
	require.Equal("5", MapOrElse(Ok[int, string](5), strconv.Itoa, func() string { dCalls++; return "x" }))
	require.Zero(dCalls)
	require.Equal("x", MapOrElse(Err[int, string]("bad"), strconv.Itoa, func() string { dCalls++; return "x" }))
	require.Equal(1, dCalls)
}

func TestMatch_ExactlyOneBranch(t *testing.T) {
	require := require.New(t)

	got := Match(Ok[int, string](5),
		func(n int) string { return "ok:" + strconv.Itoa(n) },
		func(s string) string { return "err:" + s })
	require.Equal("ok:5", got)

	got = Match(Err[int, string]("bad"),
		func(n int) string { return "ok:" + strconv.Itoa(n) },
		func(s string) string { return "err:" + s })
	require.Equal("err:bad", got)

	requirePanicKind(t, adt.ErrNilValue, func() {
		Match[int, string, string](Ok[int, string](5), nil, func(s string) string { return s })
	})
}

func TestFromOption_RoundTrip(t *testing.T) {
	require := require.New(t)

	// ok(v) narrowed to an option equals some(v)
	require.Equal(option.Some(5), Ok[int, string](5).ToOption())
	// err(e) narrowed to an option equals none
	require.Equal(option.None[int](), Err[int, string]("e").ToOption())

	// and lifting back up restores the ok channel
	require.Equal(Ok[int, string](5), FromOption(option.Some(5), "missing"))
	require.Equal(Err[int, string]("missing"), FromOption(option.None[int](), "missing"))

	calls := 0
	lifted := FromOptionElse(option.Some(5), func() string { calls++; return "missing" })
	require.Equal(Ok[int, string](5), lifted)
	require.Zero(calls)
	require.Equal(Err[int, string]("missing"),
		FromOptionElse(option.None[int](), func() string { calls++; return "missing" }))
	require.Equal(1, calls)
}
