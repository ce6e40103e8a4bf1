package program

import "testing"

func TestPolicyTableComplete(t *testing.T) {
	for _, typ := range Types {
		pol := PolicyFor(typ)
		if len(pol.Ratios) == 0 {
			t.Errorf("%s: no ratios", typ)
		}
		if pol.AspectMin != 1.0 {
			t.Errorf("%s: AspectMin = %v, want 1.0 (normalized aspect)", typ, pol.AspectMin)
		}
		if pol.AspectMax < pol.AspectMin {
			t.Errorf("%s: AspectMax %v below AspectMin %v", typ, pol.AspectMax, pol.AspectMin)
		}
		if pol.MinWallCM < 100 || pol.MinWallCM > 300 {
			t.Errorf("%s: MinWallCM %v outside 100-300", typ, pol.MinWallCM)
		}
		for _, r := range pol.Ratios {
			if r.W <= 0 || r.D <= 0 {
				t.Errorf("%s: ratio %d:%d not positive", typ, r.W, r.D)
			}
			if r.W < r.D {
				t.Errorf("%s: ratio %d:%d should list the longer side first", typ, r.W, r.D)
			}
		}
	}
}

func TestPolicyForUnknownType(t *testing.T) {
	got := PolicyFor(RoomType("garage"))
	want := GenericPolicy()
	if got.AspectMax != want.AspectMax || got.MinWallCM != want.MinWallCM {
		t.Errorf("unknown type policy = %+v, want generic %+v", got, want)
	}
}

func TestGenericPolicyMatchesUnclassified(t *testing.T) {
	gen := GenericPolicy()
	unc := PolicyFor(Unclassified)
	if len(gen.Ratios) != len(unc.Ratios) || gen.MinWallCM != unc.MinWallCM {
		t.Error("generic policy should be the unclassified policy")
	}
}

func TestCategoryOf(t *testing.T) {
	tests := []struct {
		typ  RoomType
		want Category
	}{
		{Living, CategoryPublic},
		{Kitchen, CategoryPublic},
		{Unclassified, CategoryPublic},
		{Bedroom, CategoryPrivate},
		{Bathroom, CategoryPrivate},
		{Office, CategoryPrivate},
		{Utility, CategoryService},
		{Circulation, CategoryService},
	}
	for _, tt := range tests {
		if got := CategoryOf(tt.typ); got != tt.want {
			t.Errorf("CategoryOf(%s) = %s, want %s", tt.typ, got, tt.want)
		}
	}
}

func TestColorOf(t *testing.T) {
	for _, cat := range []Category{CategoryPublic, CategoryPrivate, CategoryService} {
		c := ColorOf(cat)
		if c == (Color{}) {
			t.Errorf("ColorOf(%s) is zero", cat)
		}
	}

	if ColorOf(CategoryPublic) == ColorOf(CategoryPrivate) {
		t.Error("public and private categories share a color")
	}
}
