package config

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"slices"

	"gopkg.in/yaml.v3"
)

// SaveDefinitions replaces the definitions list in the config file.
// This preserves comments and formatting in other sections by using yaml.Node.
func SaveDefinitions(configPath string, definitions []string) error {
	data, err := os.ReadFile(configPath)
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("reading config: %w", err)
	}

	var doc yaml.Node
	if len(data) > 0 {
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return fmt.Errorf("parsing config: %w", err)
		}
	}

	defsNode := buildDefinitionsNode(definitions)

	if doc.Kind == 0 {
		doc = yaml.Node{
			Kind: yaml.DocumentNode,
			Content: []*yaml.Node{
				{
					Kind: yaml.MappingNode,
					Content: []*yaml.Node{
						{Kind: yaml.ScalarNode, Value: "definitions"},
						defsNode,
					},
				},
			},
		}
	} else if doc.Kind == yaml.DocumentNode && len(doc.Content) > 0 {
		root := doc.Content[0]
		if root.Kind != yaml.MappingNode {
			return fmt.Errorf("parsing config: top level must be a mapping")
		}
		found := false
		for i := 0; i < len(root.Content)-1; i += 2 {
			if root.Content[i].Value == "definitions" {
				root.Content[i+1] = defsNode
				found = true
				break
			}
		}
		if !found {
			root.Content = append(root.Content,
				&yaml.Node{Kind: yaml.ScalarNode, Value: "definitions"},
				defsNode,
			)
		}
	}

	var buf bytes.Buffer
	encoder := yaml.NewEncoder(&buf)
	encoder.SetIndent(2)
	if err := encoder.Encode(&doc); err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	_ = encoder.Close()

	return writeAtomic(configPath, buf.Bytes())
}

// AddDefinition appends path to the definitions list unless it is already there.
func AddDefinition(configPath string, existing []string, path string) ([]string, error) {
	if slices.Contains(existing, path) {
		return existing, nil
	}
	updated := append(slices.Clone(existing), path)
	if err := SaveDefinitions(configPath, updated); err != nil {
		return nil, err
	}
	return updated, nil
}

// RemoveDefinition drops path from the definitions list.
func RemoveDefinition(configPath string, existing []string, path string) ([]string, error) {
	idx := slices.Index(existing, path)
	if idx < 0 {
		return nil, fmt.Errorf("definition %q is not configured", path)
	}
	updated := slices.Delete(slices.Clone(existing), idx, idx+1)
	if err := SaveDefinitions(configPath, updated); err != nil {
		return nil, err
	}
	return updated, nil
}

func buildDefinitionsNode(definitions []string) *yaml.Node {
	node := &yaml.Node{Kind: yaml.SequenceNode}
	for _, def := range definitions {
		node.Content = append(node.Content, &yaml.Node{Kind: yaml.ScalarNode, Value: def})
	}
	return node
}

// writeAtomic writes to a temp file in the same directory, then renames.
func writeAtomic(path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	temp, err := os.CreateTemp(dir, ".measured.yaml.tmp.*")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	tempPath := temp.Name()

	if _, err := temp.Write(data); err != nil {
		_ = temp.Close()
		_ = os.Remove(tempPath)
		return fmt.Errorf("writing temp file: %w", err)
	}
	if err := temp.Close(); err != nil {
		_ = os.Remove(tempPath)
		return fmt.Errorf("closing temp file: %w", err)
	}

	if err := os.Rename(tempPath, path); err != nil {
		_ = os.Remove(tempPath)
		return fmt.Errorf("renaming temp file: %w", err)
	}
	return nil
}
