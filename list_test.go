package purefp

import (
	"reflect"
	"strconv"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ============================================================================
// Construction
// ============================================================================

func TestEmpty(t *testing.T) {
	xs := Empty[int]()

	_, isNil := xs.(Nil[int])
	assert.True(t, isNil)
	assert.Equal(t, "[]", xs.String())
	assert.Nil(t, ToSlice(xs))
}

func TestCons(t *testing.T) {
	xs := Cons(4, Cons(1, Cons(2, Empty[int]())))

	node, ok := xs.(*Node[int])
	require.True(t, ok)
	assert.Equal(t, 4, node.Head())
	assert.Equal(t, "[1 2]", node.Tail().String())
	assert.Equal(t, "[4 1 2]", xs.String())
}

func TestCons_NilTail(t *testing.T) {
	var typedNil *Node[string]

	for _, tail := range []List[string]{nil, typedNil} {
		xs := Cons("a", tail)
		node := xs.(*Node[string])
		_, isNil := node.Tail().(Nil[string])
		assert.True(t, isNil, "tail %#v should become Empty", tail)
	}
}

func TestOf(t *testing.T) {
	if diff := cmp.Diff([]int{4, 1, 2}, ToSlice(Of(4, 1, 2))); diff != "" {
		t.Errorf("Of mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t, "[]", Of[int]().String())
}

func TestFromSlice(t *testing.T) {
	in := []string{"a", "b", "c"}
	xs := FromSlice(in)
	in[0] = "z"

	if diff := cmp.Diff([]string{"a", "b", "c"}, ToSlice(xs)); diff != "" {
		t.Errorf("FromSlice should not alias its input (-want +got):\n%s", diff)
	}
}

// ============================================================================
// Match
// ============================================================================

func TestMatch(t *testing.T) {
	describe := func(xs List[int]) string {
		return Match(xs,
			func() string { return "empty" },
			func(head int, tail List[int]) string {
				return Sprint(head).Join(" then ", Sprint(tail)).String()
			},
		)
	}

	assert.Equal(t, "empty", describe(Empty[int]()))
	assert.Equal(t, "4 then [1 2]", describe(Of(4, 1, 2)))
	assert.Equal(t, "empty", describe(nil))
}

func TestMatch_CallsExactlyOneBranch(t *testing.T) {
	var emptyCalls, nodeCalls int
	count := func(xs List[int]) {
		Match(xs,
			func() struct{} { emptyCalls++; return struct{}{} },
			func(int, List[int]) struct{} { nodeCalls++; return struct{}{} },
		)
	}

	count(Empty[int]())
	count(Of(1, 2, 3))

	assert.Equal(t, 1, emptyCalls)
	assert.Equal(t, 1, nodeCalls)
}

func TestList_TypeSwitch(t *testing.T) {
	var heads []int
	for xs := Of(3, 2, 1); ; {
		switch l := xs.(type) {
		case Nil[int]:
			assert.Equal(t, []int{3, 2, 1}, heads)
			return
		case *Node[int]:
			heads = append(heads, l.Head())
			xs = l.Tail()
		}
	}
}

// ============================================================================
// Sharing and traversal
// ============================================================================

func TestList_SharedTail(t *testing.T) {
	shared := Of(1, 2)
	a := Cons(0, shared)
	b := Cons(9, shared)
	c := Append(shared, Of(3))

	assert.Same(t, shared, a.(*Node[int]).Tail())
	assert.Same(t, shared, b.(*Node[int]).Tail())
	assert.Equal(t, "[0 1 2]", a.String())
	assert.Equal(t, "[9 1 2]", b.String())
	assert.Equal(t, "[1 2 3]", c.String())
	assert.Equal(t, "[1 2]", shared.String())
}

func TestAll_StopsEarly(t *testing.T) {
	var seen []int
	for v := range All(Of(1, 2, 3, 4)) {
		if v == 3 {
			break
		}
		seen = append(seen, v)
	}
	assert.Equal(t, []int{1, 2}, seen)
}

func TestReverse(t *testing.T) {
	assert.Equal(t, "[2 1 4]", Reverse(Of(4, 1, 2)).String())
	assert.Equal(t, "[]", Reverse(Empty[int]()).String())
}

func TestEqual(t *testing.T) {
	tests := []struct {
		name string
		xs   List[int]
		ys   List[int]
		want bool
	}{
		{"both empty", Empty[int](), Empty[int](), true},
		{"same elements", Of(4, 1, 2), Of(4, 1, 2), true},
		{"different element", Of(4, 1, 2), Of(4, 1, 3), false},
		{"xs shorter", Of(4, 1), Of(4, 1, 2), false},
		{"ys shorter", Of(4, 1, 2), Of(4, 1), false},
		{"empty against non-empty", Empty[int](), Of(1), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Equal(tt.xs, tt.ys))
		})
	}
}

func TestList_String(t *testing.T) {
	assert.Equal(t, "[true false]", Of(true, false).String())
	assert.Equal(t, "[a b]", Of("a", "b").String())
	assert.Equal(t, "[[1 2] []]", Of(Of(1, 2), Empty[int]()).String())
}

func TestList_StringLong(t *testing.T) {
	const n = 200_000
	items := make([]int, n)
	want := make([]string, n)
	for i := range items {
		items[i] = i
		want[i] = strconv.Itoa(i)
	}

	got := FromSlice(items).String()

	assert.Equal(t, "["+strings.Join(want, " ")+"]", got)
}

func TestList_InfersElementType(t *testing.T) {
	xs := Of(4, 1, 2)

	var seen []int
	for v := range All(xs) {
		seen = append(seen, v)
	}
	assert.Equal(t, []int{4, 1, 2}, seen)
	assert.Equal(t, 3, Length(xs))
	assert.Equal(t, 7, Sum(xs))
	assert.True(t, Equal(xs, Reverse(Reverse(xs))))
	assert.Equal(t, 7, OrElse(Some(7), 0))
}

func TestList_ElementTypeIsPartOfTheType(t *testing.T) {
	stringList := reflect.TypeOf((*List[string])(nil)).Elem()
	intList := reflect.TypeOf((*List[int])(nil)).Elem()

	assert.True(t, reflect.TypeOf(&Node[int]{}).Implements(intList))
	assert.True(t, reflect.TypeOf(Nil[int]{}).Implements(intList))
	assert.False(t, reflect.TypeOf(&Node[int]{}).Implements(stringList))
	assert.False(t, reflect.TypeOf(Nil[int]{}).Implements(stringList))

	stringOpt := reflect.TypeOf((*Optional[string])(nil)).Elem()
	assert.True(t, reflect.TypeOf(Present[string]{}).Implements(stringOpt))
	assert.False(t, reflect.TypeOf(Present[int]{}).Implements(stringOpt))
	assert.False(t, reflect.TypeOf(Absent[int]{}).Implements(stringOpt))
}
