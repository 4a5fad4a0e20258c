package purefp

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOptional_String(t *testing.T) {
	assert.Equal(t, "5", Some(5.0).String())
	assert.Equal(t, "5.5", Some(5.5).String())
	assert.Equal(t, "None", None[float64]().String())
}

func TestMatchOptional(t *testing.T) {
	describe := func(o Optional[float64]) string {
		return MatchOptional(o,
			func() string { return "nothing" },
			func(v float64) string { return Sprint(v).WithPrefix("got ").String() },
		)
	}

	assert.Equal(t, "got 5", describe(Some(5.0)))
	assert.Equal(t, "nothing", describe(None[float64]()))
	assert.Equal(t, "nothing", describe(nil))
}

func TestGet(t *testing.T) {
	v, ok := Get(Some("x"))
	assert.True(t, ok)
	assert.Equal(t, "x", v)

	v, ok = Get(None[string]())
	assert.False(t, ok)
	assert.Equal(t, "", v)
}

func TestOrElse(t *testing.T) {
	assert.Equal(t, 3, OrElse(Some(3), 9))
	assert.Equal(t, 9, OrElse(None[int](), 9))
}

func TestMapOptional(t *testing.T) {
	half := func(x int) float64 { return float64(x) / 2 }

	assert.Equal(t, Some(1.5), MapOptional(Some(3), half))
	assert.Equal(t, None[float64](), MapOptional(None[int](), half))
}

func TestOptional_PresentValue(t *testing.T) {
	switch o := Some(5.0).(type) {
	case Present[float64]:
		assert.Equal(t, 5.0, o.Value())
	case Absent[float64]:
		t.Fatal("expected a present value")
	}
}
