// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package behaviors

// HintTags are the kinds of presentation hints.
type HintTags int32 //enums:enum -transform lower

const (
	// Checkbox presents a value as a checkbox.
	Checkbox HintTags = iota

	// Enum presents an integer value as a choice among labels.
	Enum

	// Slider presents a number as a slider with a range and step.
	Slider

	// Color presents a numeric array as a color.
	Color

	// File presents text as a file path, with a filter.
	File

	// Directory presents text as a directory path.
	Directory
)

// PresentationHint is pure metadata that tells a widget how to present
// a value. It has no effect on the value itself.
type PresentationHint struct {

	// Tag is the kind of hint.
	Tag HintTags

	// Labels are the choice labels for an [Enum] hint.
	Labels []string

	// Min is the minimum of a [Slider] hint.
	Min float64

	// Max is the maximum of a [Slider] hint.
	Max float64

	// Step is the step of a [Slider] hint.
	Step float64

	// Filter is the file name filter of a [File] hint (eg: "*.obj *.stl").
	Filter string
}

func (h *PresentationHint) BehaviorKind() Kinds { return HintBehavior }

// NewCheckbox returns a new [Checkbox] hint.
func NewCheckbox() *PresentationHint {
	return &PresentationHint{Tag: Checkbox}
}

// NewEnum returns a new [Enum] hint with the given labels.
func NewEnum(labels ...string) *PresentationHint {
	return &PresentationHint{Tag: Enum, Labels: labels}
}

// NewSlider returns a new [Slider] hint.
func NewSlider(min, max, step float64) *PresentationHint {
	return &PresentationHint{Tag: Slider, Min: min, Max: max, Step: step}
}

// NewColor returns a new [Color] hint.
func NewColor() *PresentationHint {
	return &PresentationHint{Tag: Color}
}

// NewFile returns a new [File] hint with the given filter.
func NewFile(filter string) *PresentationHint {
	return &PresentationHint{Tag: File, Filter: filter}
}

// NewDirectory returns a new [Directory] hint.
func NewDirectory() *PresentationHint {
	return &PresentationHint{Tag: Directory}
}

// SliderBounds returns the bounds of a [Slider] hint,
// and false for any other hint.
func (h *PresentationHint) SliderBounds() (min, max float64, ok bool) {
	if h.Tag != Slider {
		return 0, 0, false
	}
	return h.Min, h.Max, true
}
