package tests

import (
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/ib-77/adt3/pkg/adt"
	"github.com/ib-77/adt3/pkg/adt/chain"
	"github.com/ib-77/adt3/pkg/adt/option"
	"github.com/ib-77/adt3/pkg/adt/result"
)

// TestOptionScenario walks the documented option behavior end to end on
// concrete values.
func TestOptionScenario(t *testing.T) {
	five := option.Some(5)

	assert.Equal(t, 5, five.Filter(func(n int) bool { return n == 5 }).Unwrap())
	assert.True(t, five.Filter(func(n int) bool { return n != 5 }).IsNone())

	pair := option.Zip(five, option.Some(10))
	assert.Equal(t, adt.PairOf(5, 10), pair.Unwrap())

	got := option.Match(option.None[int](),
		func(n int) int {
			t.Fatalf("onSome must not run for none")
			return n
		},
		func() int { return 10 })
	assert.Equal(t, 10, got)
}

// TestRecordPipeline runs a realistic lookup pipeline: parse a raw id, find
// the record, gate it, and fold to a display string.
func TestRecordPipeline(t *testing.T) {
	knownID := uuid.New()
	records := map[uuid.UUID]string{
		knownID: "alice",
	}

	find := func(id uuid.UUID) option.Option[string] {
		if name, ok := records[id]; ok {
			return option.SomeUnsafe(name)
		}
		return option.None[string]()
	}

	process := func(raw string) string {
		parsed := chain.Try(uuid.Parse(raw))

		found := chain.Then(parsed, func(id uuid.UUID) result.Result[string, error] {
			return result.FromOptionElse(find(id), func() error {
				return fmt.Errorf("unknown id %s", id)
			})
		})

		return chain.Finally(found,
			func(name string) string { return "hello " + name },
			func(err error) string { return "invalid" })
	}

	assert.Equal(t, "hello alice", process(knownID.String()))
	assert.Equal(t, "invalid", process(uuid.New().String()))
	assert.Equal(t, "invalid", process("garbage"))
}

// TestResultOptionRoundTrip checks the narrowing conversion and the lift
// back against each other.
func TestResultOptionRoundTrip(t *testing.T) {
	id := uuid.New()

	ok := result.Ok[uuid.UUID, error](id)
	assert.Equal(t, option.Some(id), ok.ToOption())

	err := result.Err[uuid.UUID, error](fmt.Errorf("gone"))
	assert.Equal(t, option.None[uuid.UUID](), err.ToOption())

	lifted := result.FromOption(ok.ToOption(), fmt.Errorf("missing"))
	assert.Equal(t, id, lifted.Unwrap())
}

// TestValuesCollector gathers present payloads across a mixed batch.
func TestValuesCollector(t *testing.T) {
	batch := []adt.Getter[int]{
		option.Some(1),
		option.None[int](),
		result.Ok[int, error](2),
		result.Err[int, error](fmt.Errorf("skip")),
		option.Some(3),
	}

	assert.Equal(t, []int{1, 2, 3}, adt.Values(batch...))
}
