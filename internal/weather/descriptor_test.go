package weather

import "testing"

func TestEveryKindHasADescriptor(t *testing.T) {
	for _, kind := range DescriptorKinds {
		d := NewDescriptor(kind, ScaleLarge.Config())
		if d.Label == "" {
			t.Errorf("%s: empty label", kind)
		}
		if _, ok := d.Main(); !ok {
			t.Errorf("%s: no shape named after main path %q", kind, d.MainPath)
		}

		parsed, err := ParseDescriptorKind(kind.String())
		if err != nil || parsed != kind {
			t.Errorf("ParseDescriptorKind(%q) = %v, %v", kind.String(), parsed, err)
		}
	}
}

func TestDescriptorFlags(t *testing.T) {
	tests := []struct {
		kind      DescriptorKind
		label     string
		mainPath  string
		secondary bool
		rotates   bool
	}{
		{DescriptorSunny, "Sunny", PathRing, true, true},
		{DescriptorStormy, "Stormy", PathCloud, true, false},
		{DescriptorRainy, "Rainy", PathCloud, true, false},
		{DescriptorRainbowy, "RainbowY", PathRainbow, false, false},
		{DescriptorSnowy, "Snowy", PathCloud, false, false},
	}

	for _, tt := range tests {
		d := NewDescriptor(tt.kind, ScaleSmall.Config())
		if d.Label != tt.label || d.MainPath != tt.mainPath {
			t.Errorf("%s: got label %q main %q", tt.kind, d.Label, d.MainPath)
		}
		if d.SecondaryAnimation != tt.secondary || d.Rotates != tt.rotates {
			t.Errorf("%s: got secondary=%v rotates=%v", tt.kind, d.SecondaryAnimation, d.Rotates)
		}
	}
}

func TestScaleAppliesToBounds(t *testing.T) {
	large := NewDescriptor(DescriptorSunny, ScaleLarge.Config())
	small := NewDescriptor(DescriptorSunny, ScaleSmall.Config())

	lm, _ := large.Main()
	sm, _ := small.Main()

	// ring spans 7..17 on the unit grid
	if lm.Bounds.MinX != 7*LargeScale+LargePadding || lm.Bounds.MaxY != 17*LargeScale {
		t.Errorf("unexpected large bounds: %+v", lm.Bounds)
	}
	if sm.Bounds.MinX != 7*SmallScale+SmallPadding || sm.Bounds.MaxY != 17*SmallScale {
		t.Errorf("unexpected small bounds: %+v", sm.Bounds)
	}

	c := lm.Bounds.Center()
	if c.X != 12*LargeScale+LargePadding || c.Y != 12*LargeScale {
		t.Errorf("unexpected centre: %+v", c)
	}
}

func TestColorHex(t *testing.T) {
	if got := ColorDarkGray.Hex(); got != "#444444" {
		t.Errorf("ColorDarkGray.Hex() = %q", got)
	}
}
