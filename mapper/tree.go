package mapper

import (
	"strconv"

	"github.com/sirupsen/logrus"

	"record-mapper/internal/common"
	"record-mapper/object"
	"record-mapper/record"
)

// TreeBuild maps root and its descendants to a composite tree
// {records: [node]} for a batch-create request.
func (m *Mapper) TreeBuild(root *object.Object) (*record.Record, error) {
	node, err := m.newTreeBuilder().node(root, 0, rootPath(root))
	if err != nil {
		return nil, err
	}

	out := record.New()
	out.Set(record.RecordsKey, []*record.Record{node})

	return out, nil
}

// BuildNode maps obj to a bare composite-tree node, as TreeBuild does for a
// child at position index of its parent's sequence.
func (m *Mapper) BuildNode(obj *object.Object, index int) (*record.Record, error) {
	return m.newTreeBuilder().node(obj, index, rootPath(obj))
}

// treeBuilder is the state of one TreeBuild call.
type treeBuilder struct {
	m        *Mapper
	counters map[string]int
	visiting map[*object.Object]bool
}

func (m *Mapper) newTreeBuilder() *treeBuilder {
	return &treeBuilder{
		m:        m,
		counters: map[string]int{},
		visiting: map[*object.Object]bool{},
	}
}

func (b *treeBuilder) node(obj *object.Object, index int, path common.Path) (*record.Record, error) {
	if obj == nil {
		return nil, schemaMismatch(path, "", nil, "nil object in composite tree")
	}

	external, ok := b.m.registry.GetTypeAlias(obj.Type())
	if !ok {
		return nil, schemaMismatch(path, obj.Type(), nil, "type %q has no external type name", obj.Type())
	}

	if b.visiting[obj] {
		return nil, cyclicMetadata(path, obj.Type())
	}

	b.visiting[obj] = true
	defer delete(b.visiting, obj)

	node := record.New()
	node.SetAttributes(record.Attributes{
		Type:        external,
		ReferenceID: b.referenceID(external, index),
	})

	fields := b.m.registry.Fields(obj.Type())
	b.m.traceUndeclared(obj, fields)

	for _, f := range fields {
		v, ok := obj.Get(f.Name)
		if !ok {
			continue
		}

		switch {
		case f.IsIdentity():
			node.Set(record.IDKey, v)

		case f.Alias == "":
			b.m.skipUnmapped(obj.Type(), f.Name)

		case f.IsParent():
			b.m.logger.WithFields(logrus.Fields{
				"type":  obj.Type(),
				"field": f.Name,
			}).Debug("parent reference is not embedded in composite tree")

		case f.IsChild():
			children, ok := obj.Children(f.Name)
			if !ok {
				return nil, schemaMismatch(path.Field(f.Name), obj.Type(), nil,
					"child field holds %T, not a sequence of objects", v)
			}

			if common.IsEmpty(children) {
				continue
			}

			nodes := make([]*record.Record, 0, len(children))
			for i, child := range children {
				n, err := b.node(child, i, path.Field(f.Name).Index(i))
				if err != nil {
					return nil, err
				}

				nodes = append(nodes, n)
			}

			node.Set(f.Alias, record.Collection(nodes))

		default:
			node.Set(f.Alias, v)
		}
	}

	return node, nil
}

func (b *treeBuilder) referenceID(external string, index int) string {
	if b.m.refMode == RefPerType {
		index = b.counters[external]
		b.counters[external]++
	}

	return external + "Ref" + strconv.Itoa(index)
}

func rootPath(obj *object.Object) common.Path {
	if obj == nil {
		return common.NewPath("<nil>")
	}

	return common.NewPath(obj.Type())
}
