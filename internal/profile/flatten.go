package profile

import (
	"fmt"
	"strings"

	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/convert"
)

// flatten renders an HCL attribute value as argument text. include is false
// for values that mean "leave the key out" (null and false).
func flatten(v cty.Value) (text string, include bool, err error) {
	if !v.IsKnown() {
		return "", false, fmt.Errorf("value is not known")
	}
	if v.IsNull() {
		return "", false, nil
	}

	ty := v.Type()
	switch {
	case ty == cty.Bool:
		return "", v.True(), nil
	case ty.IsPrimitiveType():
		s, err := primitiveText(v)
		return s, err == nil, err
	case ty.IsListType() || ty.IsTupleType() || ty.IsSetType():
		parts := make([]string, 0, v.LengthInt())
		for it := v.ElementIterator(); it.Next(); {
			_, elem := it.Element()
			if elem.IsNull() {
				continue
			}
			if !elem.Type().IsPrimitiveType() {
				return "", false, fmt.Errorf("list elements must be strings, numbers or bools, got %s", elem.Type().FriendlyName())
			}
			s, err := primitiveText(elem)
			if err != nil {
				return "", false, err
			}
			parts = append(parts, s)
		}
		return strings.Join(parts, " "), true, nil
	default:
		return "", false, fmt.Errorf("unsupported value of type %s", ty.FriendlyName())
	}
}

func primitiveText(v cty.Value) (string, error) {
	s, err := convert.Convert(v, cty.String)
	if err != nil {
		return "", err
	}
	return s.AsString(), nil
}
