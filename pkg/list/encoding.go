package list

import (
	"encoding/json"
	"fmt"

	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"
)

// A List encodes as a plain sequence of its values, front first.

func (l *List[V]) MarshalJSON() ([]byte, error) {
	return json.Marshal(l.Slice())
}

// UnmarshalJSON replaces the content of l with the decoded sequence.
func (l *List[V]) UnmarshalJSON(b []byte) error {
	var values []V
	if err := json.Unmarshal(b, &values); err != nil {
		return fmt.Errorf("failed to decode list, %w", err)
	}
	l.Clear()
	l.AppendSlice(values...)
	return nil
}

func (l *List[V]) MarshalYAML() (any, error) {
	return l.Slice(), nil
}

// UnmarshalYAML replaces the content of l with the decoded sequence.
func (l *List[V]) UnmarshalYAML(n *yaml.Node) error {
	var values []V
	if err := n.Decode(&values); err != nil {
		return fmt.Errorf("failed to decode list, %w", err)
	}
	l.Clear()
	l.AppendSlice(values...)
	return nil
}

// MarshalLogArray implements zapcore.ArrayMarshaler, so a list can be
// logged with zap.Array.
func (l *List[V]) MarshalLogArray(enc zapcore.ArrayEncoder) error {
	for e := l.front; e != nil; e = e.next {
		if err := enc.AppendReflected(e.Value); err != nil {
			return err
		}
	}
	return nil
}
