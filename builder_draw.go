package glbatch

import "github.com/gogpu/glbatch/wire"

func checkRange(op string, first, count int) error {
	if first < 0 {
		return invalid(op, "first", first)
	}
	if count < 0 {
		return invalid(op, "count", count)
	}
	return nil
}

func checkElements(op string, count int, typ IndexType, offset int) error {
	if count < 0 {
		return invalid(op, "count", count)
	}
	if offset < 0 || offset%typ.Size() != 0 {
		return invalidf(op, "offset", offset, "must be a non-negative multiple of %d", typ.Size())
	}
	return nil
}

// DrawArrays draws count vertices starting at first.
func (b *Builder) DrawArrays(mode DrawMode, first, count int) error {
	const op = "DrawArrays"
	if err := validate(op, arg{"mode", mode}); err != nil {
		return err
	}
	if err := checkRange(op, first, count); err != nil {
		return err
	}
	b.push(wire.DrawArrays{Mode: mode.String(), First: first, Count: count})
	return nil
}

// DrawArraysInstanced draws instances copies of a vertex range.
func (b *Builder) DrawArraysInstanced(mode DrawMode, first, count, instances int) error {
	const op = "DrawArraysInstanced"
	if err := validate(op, arg{"mode", mode}); err != nil {
		return err
	}
	if err := checkRange(op, first, count); err != nil {
		return err
	}
	if instances < 0 {
		return invalid(op, "instanceCount", instances)
	}
	b.push(wire.DrawArraysInstanced{Mode: mode.String(), First: first, Count: count, InstanceCount: instances})
	return nil
}

// DrawElements draws count indices of type typ read from the bound element
// array buffer at byte offset.
func (b *Builder) DrawElements(mode DrawMode, count int, typ IndexType, offset int) error {
	const op = "DrawElements"
	if err := validate(op, arg{"mode", mode}, arg{"type", typ}); err != nil {
		return err
	}
	if err := checkElements(op, count, typ, offset); err != nil {
		return err
	}
	b.push(wire.DrawElements{Mode: mode.String(), Count: count, Type: typ.String(), Offset: offset})
	return nil
}

// DrawElementsInstanced draws instances copies of an indexed range.
func (b *Builder) DrawElementsInstanced(mode DrawMode, count int, typ IndexType, offset, instances int) error {
	const op = "DrawElementsInstanced"
	if err := validate(op, arg{"mode", mode}, arg{"type", typ}); err != nil {
		return err
	}
	if err := checkElements(op, count, typ, offset); err != nil {
		return err
	}
	if instances < 0 {
		return invalid(op, "instanceCount", instances)
	}
	b.push(wire.DrawElementsInstanced{
		Mode:          mode.String(),
		Count:         count,
		Type:          typ.String(),
		Offset:        offset,
		InstanceCount: instances,
	})
	return nil
}
