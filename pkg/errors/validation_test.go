package errors

import "testing"

func TestValidateModule(t *testing.T) {
	tests := []struct {
		module float64
		wantOK bool
	}{
		{50, true},
		{150, true},
		{300, true},
		{49.9, false},
		{300.1, false},
		{0, false},
		{-150, false},
	}
	for _, tt := range tests {
		err := ValidateModule(tt.module)
		if (err == nil) != tt.wantOK {
			t.Errorf("ValidateModule(%v) err = %v, wantOK %v", tt.module, err, tt.wantOK)
		}
		if err != nil && !Is(err, ErrCodeInvalidModule) {
			t.Errorf("ValidateModule(%v) code = %q", tt.module, GetCode(err))
		}
	}
}

func TestValidateTolerance(t *testing.T) {
	for _, tol := range []float64{0.001, 0.05, 0.5} {
		if err := ValidateTolerance(tol); err != nil {
			t.Errorf("ValidateTolerance(%v) = %v", tol, err)
		}
	}
	for _, tol := range []float64{0, -0.1, 0.51, 2} {
		if err := ValidateTolerance(tol); !Is(err, ErrCodeInvalidTolerance) {
			t.Errorf("ValidateTolerance(%v) = %v, want tolerance error", tol, err)
		}
	}
}

func TestValidateHeight(t *testing.T) {
	if err := ValidateHeight(300); err != nil {
		t.Errorf("ValidateHeight(300) = %v", err)
	}
	if err := ValidateHeight(0); !Is(err, ErrCodeInvalidHeight) {
		t.Errorf("ValidateHeight(0) = %v, want height error", err)
	}
}

func TestValidateMinWall(t *testing.T) {
	if err := ValidateMinWall(180); err != nil {
		t.Errorf("ValidateMinWall(180) = %v", err)
	}
	for _, w := range []float64{99, 301} {
		if err := ValidateMinWall(w); err == nil {
			t.Errorf("ValidateMinWall(%v) = nil, want error", w)
		}
	}
}

func TestValidateRoomName(t *testing.T) {
	tests := []struct {
		name   string
		wantOK bool
	}{
		{"Living Room", true},
		{"  Suite 2  ", true},
		{"w.c.", true},
		{"", false},
		{"   ", false},
		{"---", false},
		{"bad\x00name", false},
		{"tab\tname", false},
	}
	for _, tt := range tests {
		err := ValidateRoomName(tt.name)
		if (err == nil) != tt.wantOK {
			t.Errorf("ValidateRoomName(%q) err = %v, wantOK %v", tt.name, err, tt.wantOK)
		}
		if err != nil && !Is(err, ErrCodeInvalidInputRow) {
			t.Errorf("ValidateRoomName(%q) code = %q", tt.name, GetCode(err))
		}
	}
}

func TestValidateArea(t *testing.T) {
	if err := ValidateArea(18.5); err != nil {
		t.Errorf("ValidateArea(18.5) = %v", err)
	}
	for _, a := range []float64{0, -3} {
		if err := ValidateArea(a); !Is(err, ErrCodeInvalidInputRow) {
			t.Errorf("ValidateArea(%v) = %v, want input row error", a, err)
		}
	}
}
