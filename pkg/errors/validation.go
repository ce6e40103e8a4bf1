package errors

import (
	"strings"
	"unicode"
)

// Recognized configuration ranges, in centimeters. Modules below 50cm stop
// being construction modules and above 300cm stop producing usable rooms;
// the minimum wall bounds mirror the proportion policy table.
const (
	MinModuleCM = 50
	MaxModuleCM = 300

	MinWallFloorCM = 100
	MinWallCeilCM  = 300

	MaxAreaTolerance = 0.5
)

// ValidateModule checks that a construction module is inside the recognized
// 50-300cm range.
func ValidateModule(moduleCM float64) error {
	if moduleCM < MinModuleCM || moduleCM > MaxModuleCM {
		return New(ErrCodeInvalidModule, "module %.0fcm outside recognized range %d-%dcm", moduleCM, MinModuleCM, MaxModuleCM)
	}
	return nil
}

// ValidateMinWall checks a per-policy minimum wall length.
func ValidateMinWall(minWallCM float64) error {
	if minWallCM < MinWallFloorCM || minWallCM > MinWallCeilCM {
		return New(ErrCodeInvalidInput, "minimum wall %.0fcm outside recognized range %d-%dcm", minWallCM, MinWallFloorCM, MinWallCeilCM)
	}
	return nil
}

// ValidateTolerance checks a relative area tolerance.
func ValidateTolerance(tolerance float64) error {
	if tolerance <= 0 || tolerance > MaxAreaTolerance {
		return New(ErrCodeInvalidTolerance, "area tolerance %.3f must be in (0, %.1f]", tolerance, MaxAreaTolerance)
	}
	return nil
}

// ValidateHeight checks a floor-to-floor height.
func ValidateHeight(heightCM float64) error {
	if heightCM <= 0 {
		return New(ErrCodeInvalidHeight, "height %.0fcm must be greater than 0", heightCM)
	}
	return nil
}

// ValidateRoomName checks a room name from an input row.
// Empty names and names that are pure punctuation are rejected; control
// characters are rejected to keep downstream labels printable.
func ValidateRoomName(name string) error {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return New(ErrCodeInvalidInputRow, "room name cannot be empty")
	}
	hasPrintable := false
	for _, r := range trimmed {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidInputRow, "room name contains control characters")
		}
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			hasPrintable = true
		}
	}
	if !hasPrintable {
		return New(ErrCodeInvalidInputRow, "room name %q has no letters or digits", name)
	}
	return nil
}

// ValidateArea checks a target area from an input row.
func ValidateArea(areaM2 float64) error {
	if areaM2 <= 0 {
		return New(ErrCodeInvalidInputRow, "area %.2fm2 must be greater than 0", areaM2)
	}
	return nil
}
