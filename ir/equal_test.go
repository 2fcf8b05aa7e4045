package ir

import "testing"

func TestEqual(t *testing.T) {
	tests := []struct {
		name string
		a, b *Node
		want bool
	}{
		{"nil both", nil, nil, true},
		{"nil one", nil, Null(), false},
		{"null", Null(), Null(), true},
		{"bool", FromBool(true), FromBool(true), true},
		{"bool differ", FromBool(true), FromBool(false), false},
		{"string", FromString("a"), FromString("a"), true},
		{"string differ", FromString("a"), FromString("b"), false},
		{"kind differ", FromString("1"), FromInt(1), false},
		{"int", FromInt(3), FromInt(3), true},
		{"int float same value", FromInt(3), FromFloat(3), true},
		{"raw number", FromNumber("42"), FromInt(42), true},
		{
			"array",
			FromSlice([]*Node{FromInt(1), FromInt(2)}),
			FromSlice([]*Node{FromInt(1), FromInt(2)}),
			true,
		},
		{
			"array order matters",
			FromSlice([]*Node{FromInt(1), FromInt(2)}),
			FromSlice([]*Node{FromInt(2), FromInt(1)}),
			false,
		},
		{
			"object key order ignored",
			Object().Set("a", FromInt(1)).Set("b", FromInt(2)),
			Object().Set("b", FromInt(2)).Set("a", FromInt(1)),
			true,
		},
		{
			"object value differs",
			Object().Set("a", FromInt(1)),
			Object().Set("a", FromInt(9)),
			false,
		},
		{
			"object extra key",
			Object().Set("a", FromInt(1)),
			Object().Set("a", FromInt(1)).Set("b", Null()),
			false,
		},
	}
	for _, tt := range tests {
		if got := Equal(tt.a, tt.b); got != tt.want {
			t.Errorf("%s: Equal = %v, want %v", tt.name, got, tt.want)
		}
	}
}
