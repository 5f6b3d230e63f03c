// Package yamlsrc builds configuration trees from YAML documents.
package yamlsrc

import (
	"context"
	"fmt"

	"github.com/viant/afs"
	"github.com/viant/confmerge/tree"
	"gopkg.in/yaml.v3"
)

// Parse builds a configuration tree from a YAML document. Mappings become
// child nodes, sequences become repeated same-named children and scalars
// become node values; document order is preserved.
func Parse(data []byte) (*tree.Node, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse yaml: %w", err)
	}
	root := tree.NewNode("")
	if len(doc.Content) == 0 {
		return root, nil
	}
	if err := buildNode(root, doc.Content[0]); err != nil {
		return nil, err
	}
	return root, nil
}

// Load reads a YAML document from the given URL and builds its tree. The URL
// scheme selects the backing store (file://, mem://, s3://, ...).
func Load(ctx context.Context, URL string) (*tree.Node, error) {
	fs := afs.New()
	data, err := fs.DownloadWithURL(ctx, URL)
	if err != nil {
		return nil, fmt.Errorf("failed to load yaml from %v: %w", URL, err)
	}
	return Parse(data)
}

func buildNode(parent *tree.Node, node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		parent.Value = node.Value
	case yaml.MappingNode:
		for i := 0; i+1 < len(node.Content); i += 2 {
			key, value := node.Content[i], node.Content[i+1]
			if value.Kind == yaml.SequenceNode {
				for _, item := range value.Content {
					child := tree.NewNode(key.Value)
					if err := buildNode(child, item); err != nil {
						return err
					}
					parent.AddChild(child)
				}
				continue
			}
			child := tree.NewNode(key.Value)
			if err := buildNode(child, value); err != nil {
				return err
			}
			parent.AddChild(child)
		}
	case yaml.SequenceNode:
		return fmt.Errorf("unsupported top level yaml sequence at line %d", node.Line)
	case yaml.AliasNode:
		if node.Alias != nil {
			return buildNode(parent, node.Alias)
		}
	}
	return nil
}
