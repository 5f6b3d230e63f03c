// Package xmlconf builds configuration trees from XML documents and resolves
// XML external entities against locally registered URLs.
package xmlconf

import (
	"bytes"
	"context"
	"encoding/xml"
	"fmt"
	"io"
	"strings"

	"github.com/viant/afs"
	"github.com/viant/confmerge/tree"
)

// Parse builds a configuration tree from an XML document. Elements become
// child nodes, XML attributes become attribute nodes and trimmed character
// data becomes the element's value.
func Parse(data []byte) (*tree.Node, error) {
	return ParseReader(bytes.NewReader(data))
}

// ParseReader builds a configuration tree from an XML stream.
func ParseReader(reader io.Reader) (*tree.Node, error) {
	type frame struct {
		node *tree.Node
		text strings.Builder
	}
	decoder := xml.NewDecoder(reader)
	var stack []*frame
	var root *tree.Node
	for {
		token, err := decoder.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to parse xml: %w", err)
		}
		switch actual := token.(type) {
		case xml.StartElement:
			node := tree.NewNode(actual.Name.Local)
			for _, attr := range actual.Attr {
				node.AddAttribute(tree.NewValueNode(attr.Name.Local, attr.Value))
			}
			if len(stack) > 0 {
				stack[len(stack)-1].node.AddChild(node)
			}
			stack = append(stack, &frame{node: node})
		case xml.CharData:
			if len(stack) > 0 {
				stack[len(stack)-1].text.Write(actual)
			}
		case xml.EndElement:
			top := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			if value := strings.TrimSpace(top.text.String()); value != "" {
				top.node.Value = value
			}
			if len(stack) == 0 {
				root = top.node
			}
		}
	}
	if root == nil {
		return nil, fmt.Errorf("xml document has no root element")
	}
	return root, nil
}

// Load reads an XML document from the given URL and builds its tree. The URL
// scheme selects the backing store (file://, mem://, s3://, ...).
func Load(ctx context.Context, URL string) (*tree.Node, error) {
	fs := afs.New()
	data, err := fs.DownloadWithURL(ctx, URL)
	if err != nil {
		return nil, fmt.Errorf("failed to load xml from %v: %w", URL, err)
	}
	return Parse(data)
}
