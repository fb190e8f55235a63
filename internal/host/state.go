package host

import (
	"encoding/binary"
	"fmt"
)

// SavedState is what survives the window being destroyed: the camera
// heading in degrees and the last touch position.
type SavedState struct {
	Angle float32
	X, Y  int32
}

// SavedStateSize is the length of a serialized SavedState.
const SavedStateSize = 12

// MarshalBinary lays the fields out in declaration order, native endian.
func (s SavedState) MarshalBinary() ([]byte, error) {
	return binary.Append(make([]byte, 0, SavedStateSize), binary.NativeEndian, s)
}

// UnmarshalBinary decodes a blob written by MarshalBinary.
func (s *SavedState) UnmarshalBinary(data []byte) error {
	if len(data) != SavedStateSize {
		return fmt.Errorf("saved state is %d bytes, want %d", len(data), SavedStateSize)
	}
	_, err := binary.Decode(data, binary.NativeEndian, s)
	return err
}

// RestoreSavedState decodes blob, falling back to the zero state when the
// blob is missing or the wrong size.
func RestoreSavedState(blob []byte) SavedState {
	var s SavedState
	if err := s.UnmarshalBinary(blob); err != nil {
		return SavedState{}
	}
	return s
}
