package ref

import "testing"

func TestRootNormalizes(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"a/b.yaml", "a/b.yaml"},
		{"./a/b.yaml", "a/b.yaml"},
		{"a//b.yaml", "a/b.yaml"},
		{"a/../b.yaml", "b.yaml"},
		{"/a/b.yaml", "a/b.yaml"},
		{"", ""},
		{".", ""},
	}
	for _, tt := range tests {
		if got := Root(tt.in).Document(); got != tt.want {
			t.Errorf("Root(%q).Document() = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestChildParent(t *testing.T) {
	r := Root("doc.yaml").Child("a", "b")
	if got := r.Segments(); len(got) != 2 || got[0] != "a" || got[1] != "b" {
		t.Fatalf("Segments = %v", got)
	}
	p, ok := r.Parent()
	if !ok {
		t.Fatal("Parent at a/b reported no parent")
	}
	if segs := p.Segments(); len(segs) != 1 || segs[0] != "a" {
		t.Errorf("parent segments = %v", segs)
	}
	p, ok = p.Parent()
	if !ok || !p.IsRoot() {
		t.Errorf("grandparent = %v, ok = %v", p, ok)
	}
	if _, ok := p.Parent(); ok {
		t.Errorf("root has a parent")
	}
}

func TestChildEmptySegmentNoOp(t *testing.T) {
	r := Root("doc.yaml").Child("a", "", "b")
	if r != Root("doc.yaml").Child("a", "b") {
		t.Errorf("empty segment changed the coordinate: %v", r)
	}
}

func TestChildNeverMutates(t *testing.T) {
	base := Root("doc.yaml").Child("a")
	_ = base.Child("b")
	if segs := base.Segments(); len(segs) != 1 {
		t.Errorf("Child mutated receiver: %v", segs)
	}
}

func TestEquality(t *testing.T) {
	a := Root("doc.yaml").Child("x", "y")
	b := Root("./doc.yaml").Child("x").Child("y")
	if a != b {
		t.Errorf("equivalent references differ: %v vs %v", a, b)
	}
	m := map[Reference]int{a: 1}
	if m[b] != 1 {
		t.Errorf("map lookup by equivalent reference failed")
	}
	if a == Root("doc.yaml").Child("x") {
		t.Errorf("different coordinates compare equal")
	}
	if a == Root("other.yaml").Child("x", "y") {
		t.Errorf("different documents compare equal")
	}
}

func TestResolve(t *testing.T) {
	base := Root("a/b.yaml")
	tests := []struct {
		name    string
		in      string
		wantDoc string
		want    []string
	}{
		{"fragment only", "#/foo/bar", "a/b.yaml", []string{"foo", "bar"}},
		{"fragment no slash", "#foo", "a/b.yaml", []string{"foo"}},
		{"empty", "", "a/b.yaml", nil},
		{"same dir", "c.yaml#/x", "a/c.yaml", []string{"x"}},
		{"dot same dir", "./c.yaml#/x", "a/c.yaml", []string{"x"}},
		{"up dir", "../c.yaml#/x/0", "c.yaml", []string{"x", "0"}},
		{"absolute", "/c.yaml#/x", "c.yaml", []string{"x"}},
		{"path only", "c.yaml", "a/c.yaml", nil},
		{"trailing empty segs", "#/foo//bar/", "a/b.yaml", []string{"foo", "bar"}},
		{"percent decoded", "#/%2Fslash/a%20b", "a/b.yaml", []string{"/slash", "a b"}},
	}
	for _, tt := range tests {
		got, err := base.Resolve(tt.in)
		if err != nil {
			t.Errorf("%s: %v", tt.name, err)
			continue
		}
		if got.Document() != tt.wantDoc {
			t.Errorf("%s: doc = %q, want %q", tt.name, got.Document(), tt.wantDoc)
		}
		segs := got.Segments()
		if len(segs) != len(tt.want) {
			t.Errorf("%s: segments = %v, want %v", tt.name, segs, tt.want)
			continue
		}
		for i := range tt.want {
			if segs[i] != tt.want[i] {
				t.Errorf("%s: segment %d = %q, want %q", tt.name, i, segs[i], tt.want[i])
			}
		}
	}
}

func TestResolveBadEscape(t *testing.T) {
	if _, err := Root("a.yaml").Resolve("#/%zz"); err == nil {
		t.Errorf("bad percent escape accepted")
	}
}

func TestResolveMatchesRootNormalization(t *testing.T) {
	// cache keys from Root and from relative resolution must agree
	viaRoot := Root("a/c.yaml")
	viaResolve, err := Root("a/b.yaml").Resolve("./x/../c.yaml")
	if err != nil {
		t.Fatal(err)
	}
	if viaRoot != viaResolve {
		t.Errorf("normalization mismatch: %v vs %v", viaRoot, viaResolve)
	}
}

func TestParse(t *testing.T) {
	r, err := Parse("specs/pets.yaml#/components/schemas/Pet")
	if err != nil {
		t.Fatal(err)
	}
	if r.Document() != "specs/pets.yaml" {
		t.Errorf("doc = %q", r.Document())
	}
	if segs := r.Segments(); len(segs) != 3 || segs[2] != "Pet" {
		t.Errorf("segments = %v", segs)
	}
}

func TestIsAncestorOf(t *testing.T) {
	root := Root("d.yaml")
	a := root.Child("a")
	ab := root.Child("a", "b")
	tests := []struct {
		name string
		r, o Reference
		want bool
	}{
		{"root of child", root, a, true},
		{"root of grandchild", root, ab, true},
		{"parent of child", a, ab, true},
		{"not self", a, a, false},
		{"not reversed", ab, a, false},
		{"prefix but not boundary", root.Child("a"), root.Child("ab"), false},
		{"other document", a, Root("e.yaml").Child("a", "b"), false},
	}
	for _, tt := range tests {
		if got := tt.r.IsAncestorOf(tt.o); got != tt.want {
			t.Errorf("%s: IsAncestorOf = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestStringForm(t *testing.T) {
	if got := Root("d.yaml").String(); got != "d.yaml" {
		t.Errorf("root string = %q", got)
	}
	if got := Root("d.yaml").Child("a", "b").String(); got != "d.yaml#a/b" {
		t.Errorf("string = %q", got)
	}
	if got := Root("d.yaml").Child("a/b").String(); got != "d.yaml#a%2Fb" {
		t.Errorf("escaped string = %q", got)
	}
}
