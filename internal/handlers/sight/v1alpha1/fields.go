package v1alpha1

import (
	"math"

	"google.golang.org/protobuf/types/known/structpb"

	"github.com/KirkDiggler/rpg-lighting/internal/errors"
)

// Request field names
const (
	fieldCharacterID        = "character_id"
	fieldSpecies            = "species"
	fieldPreviousLighting   = "previous_lighting"
	fieldCurrentLighting    = "current_lighting"
	fieldRoundsOfAdaptation = "rounds_of_adaptation"
	fieldContrast           = "contrast"
	fieldFromDarkToLight    = "from_dark_to_light"
	fieldPerceptionCheck    = "perception_check"
	fieldSenses             = "senses"
	fieldWasPrepared        = "was_prepared"
)

// requestReader pulls typed fields out of a Struct and records every problem
type requestReader struct {
	fields map[string]*structpb.Value
	vb     *errors.ValidationBuilder
}

func newRequestReader(req *structpb.Struct) *requestReader {
	return &requestReader{
		fields: req.GetFields(),
		vb:     errors.NewValidationBuilder(),
	}
}

func (r *requestReader) has(name string) bool {
	value, ok := r.fields[name]
	if !ok {
		return false
	}
	_, isNull := value.GetKind().(*structpb.Value_NullValue)
	return !isNull
}

func (r *requestReader) string(name string) string {
	if !r.has(name) {
		return ""
	}
	value, ok := r.fields[name].GetKind().(*structpb.Value_StringValue)
	if !ok {
		r.vb.Field(name, "must be a string")
		return ""
	}
	return value.StringValue
}

func (r *requestReader) requiredString(name string) string {
	if !r.has(name) {
		r.vb.RequiredField(name)
		return ""
	}
	value := r.string(name)
	if value == "" {
		r.vb.RequiredField(name)
	}
	return value
}

func (r *requestReader) int(name string) int {
	value, ok := r.fields[name].GetKind().(*structpb.Value_NumberValue)
	if !ok {
		r.vb.Field(name, "must be a number")
		return 0
	}
	number := value.NumberValue
	if number != math.Trunc(number) || math.IsInf(number, 0) {
		r.vb.Field(name, "must be an integer")
		return 0
	}
	// float64(math.MaxInt) rounds up to 2^63, which no int holds; MinInt is exact
	if number >= math.MaxInt || number < math.MinInt {
		r.vb.Field(name, "out of range")
		return 0
	}
	return int(number)
}

func (r *requestReader) requiredInt(name string) int {
	if !r.has(name) {
		r.vb.RequiredField(name)
		return 0
	}
	return r.int(name)
}

func (r *requestReader) optionalInt(name string) *int {
	if !r.has(name) {
		return nil
	}
	value := r.int(name)
	return &value
}

func (r *requestReader) bool(name string) bool {
	if !r.has(name) {
		return false
	}
	value, ok := r.fields[name].GetKind().(*structpb.Value_BoolValue)
	if !ok {
		r.vb.Field(name, "must be a boolean")
		return false
	}
	return value.BoolValue
}

func (r *requestReader) err() error {
	return r.vb.Build()
}
