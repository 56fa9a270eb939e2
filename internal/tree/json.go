package tree

import "jack-analyzer/internal/span"

// ToMap converts a tree to nested maps suitable for JSON or YAML encoding.
// Every node has a "kind" field: the production label for branches and the
// token category for leaves.
func ToMap(n *Node) map[string]interface{} {
	if n == nil {
		return nil
	}
	if n.IsLeaf() {
		result := m(n.Tag(), n.Token.Span, "value", n.Token.Lexeme)
		if n.Token.IntVal != 0 {
			result["int"] = n.Token.IntVal
		}
		return result
	}
	return m(n.Tag(), n.Span(), "children", nodeSlice(n.Children))
}

// ---- helpers ----

// m builds a map with kind, span, and extra key-value pairs.
func m(kind string, s span.Span, kvs ...interface{}) map[string]interface{} {
	result := map[string]interface{}{
		"kind": kind,
		"span": spanToMap(s),
	}
	for i := 0; i+1 < len(kvs); i += 2 {
		key := kvs[i].(string)
		result[key] = kvs[i+1]
	}
	return result
}

func spanToMap(s span.Span) map[string]interface{} {
	return map[string]interface{}{
		"start": map[string]interface{}{
			"offset": s.Start.Offset,
			"line":   s.Start.Line,
			"column": s.Start.Column,
		},
		"end": map[string]interface{}{
			"offset": s.End.Offset,
			"line":   s.End.Line,
			"column": s.End.Column,
		},
	}
}

func nodeSlice(nodes []*Node) []interface{} {
	result := make([]interface{}, len(nodes))
	for i, n := range nodes {
		result[i] = ToMap(n)
	}
	return result
}
