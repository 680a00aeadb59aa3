package v1alpha1

import (
	"encoding/json"
	"math"
	"strconv"

	"google.golang.org/protobuf/types/known/structpb"

	"github.com/foolchen/lifeRestart/internal/entities"
	"github.com/foolchen/lifeRestart/internal/errors"
)

func optionalInt(req *structpb.Struct, name string) (*int, error) {
	v, ok := req.GetFields()[name]
	if !ok {
		return nil, nil
	}
	if _, isNull := v.GetKind().(*structpb.Value_NullValue); isNull {
		return nil, nil
	}
	n, err := toInt(v, name)
	if err != nil {
		return nil, err
	}
	return &n, nil
}

func intField(req *structpb.Struct, name string) (int, error) {
	n, err := optionalInt(req, name)
	if err != nil || n == nil {
		return 0, err
	}
	return *n, nil
}

func toInt(v *structpb.Value, name string) (int, error) {
	switch kind := v.GetKind().(type) {
	case *structpb.Value_NumberValue:
		f := kind.NumberValue
		if f != math.Trunc(f) || math.IsInf(f, 0) {
			return 0, errors.InvalidArgumentf("%s must be an integer", name).WithMeta("field", name)
		}
		return int(f), nil
	case *structpb.Value_StringValue:
		n, err := strconv.Atoi(kind.StringValue)
		if err != nil {
			return 0, errors.InvalidArgumentf("%s must be an integer", name).WithMeta("field", name)
		}
		return n, nil
	default:
		return 0, errors.InvalidArgumentf("%s must be a number", name).WithMeta("field", name)
	}
}

func intList(req *structpb.Struct, name string) ([]int, error) {
	v, ok := req.GetFields()[name]
	if !ok {
		return nil, nil
	}
	list := v.GetListValue()
	if list == nil {
		return nil, errors.InvalidArgumentf("%s must be a list", name).WithMeta("field", name)
	}

	out := make([]int, 0, len(list.GetValues()))
	for _, item := range list.GetValues() {
		n, err := toInt(item, name)
		if err != nil {
			return nil, err
		}
		out = append(out, n)
	}
	return out, nil
}

func ints(ids []int) []any {
	out := make([]any, len(ids))
	for i, id := range ids {
		out[i] = id
	}
	return out
}

func summaryValue(s entities.Summary) map[string]any {
	return map[string]any{
		"id":          s.ID,
		"grade":       int(s.Grade),
		"name":        s.Name,
		"description": s.Description,
	}
}

func candidatesValue(c entities.Candidates) map[string]any {
	out := make(map[string]any, len(c))
	for k, w := range c {
		out[strconv.Itoa(k)] = w
	}
	return out
}

// effectValue decodes an opaque effect blob. Blobs that are not JSON are
// passed through as strings.
func effectValue(raw json.RawMessage) any {
	if len(raw) == 0 {
		return nil
	}
	var v any
	if err := json.Unmarshal(raw, &v); err != nil {
		return string(raw)
	}
	return v
}

func definitionValue(def *entities.Definition) map[string]any {
	out := map[string]any{
		"id":           def.ID,
		"grade":        int(def.Grade),
		"name":         def.Name,
		"description":  def.Description,
		"condition":    def.Condition,
		"max_triggers": def.MaxTriggers,
		"status":       def.Status,
		"exclusive":    ints(def.Exclusive),
	}
	if effect := effectValue(def.Effect); effect != nil {
		out["effect"] = effect
	}
	if !def.Replacement.Empty() {
		out["replacement"] = map[string]any{
			"grade":  candidatesValue(def.Replacement.Grade),
			"talent": candidatesValue(def.Replacement.Talent),
		}
	}
	return out
}

func toStruct(m map[string]any) (*structpb.Struct, error) {
	s, err := structpb.NewStruct(m)
	if err != nil {
		return nil, errors.Wrap(err, "failed to encode response")
	}
	return s, nil
}
