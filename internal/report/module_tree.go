package report

import (
	"path/filepath"
	"sort"
	"strings"

	"github.com/mvp-joe/pymap/internal/pattern"
)

// BuildModuleTree groups the discovered file paths into a package/module
// hierarchy. Files become module leaves, ancestor directories become
// package nodes. Children are always alphabetical, independent of the
// symbol sort mode.
func BuildModuleTree(paths []string) *Map[*ModuleNode] {
	sorted := make([]string, len(paths))
	copy(sorted, paths)
	sort.Strings(sorted)

	root := NewMap[*ModuleNode]()
	for _, p := range sorted {
		insertPath(root, filepath.ToSlash(p))
	}
	return root
}

func insertPath(tree *Map[*ModuleNode], path string) {
	parts := strings.Split(path, "/")
	current := tree
	for i := range parts {
		key := strings.Join(parts[:i+1], "/")
		if i == len(parts)-1 {
			current.Set(key, &ModuleNode{Type: ModuleModule})
			return
		}
		node, ok := current.Get(key)
		if !ok {
			node = &ModuleNode{Type: ModulePackage, Children: NewMap[*ModuleNode]()}
			current.Set(key, node)
		}
		current = node.Children
	}
}

// FilterModuleTree applies cascading matching level by level: a node
// survives when its name reaches the winning tier for its level, or when
// any descendant survives. Names are the last path segment with a .py
// suffix stripped.
func FilterModuleTree(tree *Map[*ModuleNode], patterns []string) *Map[*ModuleNode] {
	if len(patterns) == 0 {
		return tree
	}

	names := make([]string, 0, tree.Len())
	for _, key := range tree.Keys() {
		names = append(names, moduleName(key))
	}
	keep := pattern.Filter(names, patterns)

	out := NewMap[*ModuleNode]()
	for _, key := range tree.Keys() {
		node, _ := tree.Get(key)

		var children *Map[*ModuleNode]
		if node.Children != nil {
			children = FilterModuleTree(node.Children, patterns)
		}

		_, matched := keep[moduleName(key)]
		if !matched && (children == nil || children.Len() == 0) {
			continue
		}
		kept := &ModuleNode{Type: node.Type, Children: children}
		if kept.Children != nil && kept.Children.Len() == 0 {
			kept.Children = nil
		}
		out.Set(key, kept)
	}
	return out
}

func moduleName(path string) string {
	name := path
	if i := strings.LastIndex(path, "/"); i >= 0 {
		name = path[i+1:]
	}
	return strings.TrimSuffix(name, ".py")
}
