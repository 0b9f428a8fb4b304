package errorkit

import "gopkg.in/yaml.v3"

// MarshalYAML implements yaml.Marshaler for Backing. Keys match MarshalJSON.
func (b Backing[S]) MarshalYAML() (interface{}, error) {
	return toWireBacking(b), nil
}

// UnmarshalYAML implements yaml.Unmarshaler for Backing.
func (b *Backing[S]) UnmarshalYAML(node *yaml.Node) error {
	var wire wireBacking[S]
	if err := node.Decode(&wire); err != nil {
		return decodeFailure("backing", err)
	}

	decoded, err := wire.backing()
	if err != nil {
		return err
	}
	*b = decoded
	return nil
}

// MarshalYAML implements yaml.Marshaler for Wrapper. Keys match MarshalJSON:
//
//	name: NetworkError
//	type: timeout
//	source: transport
//	reason: no response after 30s
func (w Wrapper[E, S]) MarshalYAML() (interface{}, error) {
	return toWireWrapper(w), nil
}

// UnmarshalYAML implements yaml.Unmarshaler for Wrapper.
// The same rules as UnmarshalJSON apply.
func (w *Wrapper[E, S]) UnmarshalYAML(node *yaml.Node) error {
	var wire wireWrapper[S]
	if err := node.Decode(&wire); err != nil {
		return decodeFailure(nameOf[E](), err)
	}

	decoded, err := fromWireWrapper[E](wire)
	if err != nil {
		return err
	}
	*w = decoded
	return nil
}
