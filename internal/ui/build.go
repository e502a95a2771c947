package ui

import "fmt"

// Build constructs a detached node tree from a declarative spec and returns
// its root. A spec is either a leaf text value (string) or an ordered list
// []any{tag, attrs?, children...}: the first element is the tag name, an
// optional map[string]string supplies attributes, and every remaining element
// is itself a spec. Build is a pure function over its input; the caller is
// responsible for inserting the result somewhere.
func Build(spec any) (*Node, error) {
	switch v := spec.(type) {
	case string:
		return &Node{Tag: TextTag, Text: v}, nil
	case []any:
		return buildElement(v)
	default:
		return nil, fmt.Errorf("ui: spec must be string or []any, got %T", spec)
	}
}

// BuildList is the flattened-argument convenience form of Build:
// BuildList("div", attrs, child) is equivalent to Build([]any{"div", attrs, child}).
func BuildList(parts ...any) (*Node, error) {
	return buildElement(parts)
}

func buildElement(parts []any) (*Node, error) {
	if len(parts) == 0 {
		return nil, fmt.Errorf("ui: empty element spec")
	}
	tag, ok := parts[0].(string)
	if !ok || tag == "" {
		return nil, fmt.Errorf("ui: element spec must start with a tag name, got %T", parts[0])
	}
	n := &Node{Tag: tag}
	rest := parts[1:]
	if len(rest) > 0 {
		if attrs, ok := rest[0].(map[string]string); ok {
			n.Attrs = attrs
			rest = rest[1:]
		}
	}
	for _, childSpec := range rest {
		child, err := Build(childSpec)
		if err != nil {
			return nil, err
		}
		n.Children = append(n.Children, child)
	}
	return n, nil
}
