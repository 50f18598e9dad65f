package list

import (
	"fmt"
	"reflect"

	"github.com/go-viper/mapstructure/v2"
)

// DecodeHook returns a mapstructure decode hook that fills List[V] and
// *List[V] fields from a sequence. Items are decoded weakly using the
// "yaml" tag, the same options used for config files.
//
// The list is filled in place because elements point back to their list.
// Pass the hook to viper with viper.DecodeHook.
func DecodeHook[V any]() mapstructure.DecodeHookFuncValue {
	listType := reflect.TypeFor[List[V]]()
	return func(from reflect.Value, to reflect.Value) (any, error) {
		if !from.IsValid() {
			return nil, nil
		}
		data := from.Interface()
		if to.Type() != listType || !to.CanAddr() || from.Type() == listType {
			return data, nil
		}

		var values []V
		dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
			Result:           &values,
			TagName:          "yaml",
			WeaklyTypedInput: true,
		})
		if err != nil {
			return nil, err
		}
		if err := dec.Decode(data); err != nil {
			return nil, fmt.Errorf("failed to decode list, %w", err)
		}

		l := to.Addr().Interface().(*List[V])
		l.Clear()
		l.AppendSlice(values...)

		// The decoder copies l onto itself, which is a no-op.
		return l, nil
	}
}
