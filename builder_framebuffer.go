package glbatch

import (
	"github.com/gogpu/glbatch/resource"
	"github.com/gogpu/glbatch/wire"
)

// CreateFramebuffer allocates a framebuffer handle.
func (b *Builder) CreateFramebuffer() Handle {
	h := b.allocate(resource.Framebuffer)
	b.push(wire.CreateFramebuffer{Resource: h})
	return h
}

// BindFramebuffer binds fb to target. None binds the default framebuffer.
func (b *Builder) BindFramebuffer(target FramebufferTarget, fb Handle) error {
	if err := validate("BindFramebuffer", arg{"target", target}); err != nil {
		return err
	}
	b.push(wire.BindFramebuffer{Target: target.String(), Framebuffer: fb})
	return nil
}

// FramebufferTexture2D attaches level of tex to attachment of the
// framebuffer bound to target. None detaches.
func (b *Builder) FramebufferTexture2D(target FramebufferTarget, attachment Attachment,
	texTarget TexImageTarget, tex Handle, level int) error {
	const op = "FramebufferTexture2D"
	if err := validate(op,
		arg{"target", target}, arg{"attachment", attachment}, arg{"textarget", texTarget}); err != nil {
		return err
	}
	if level < 0 {
		return invalid(op, "level", level)
	}
	b.push(wire.FramebufferTexture2D{
		Target:     target.String(),
		Attachment: attachment.String(),
		TexTarget:  texTarget.String(),
		Texture:    tex,
		Level:      level,
	})
	return nil
}

// DrawBuffers selects the color buffers fragment outputs are written to.
// Entry i receives output location i.
func (b *Builder) DrawBuffers(bufs ...DrawBuffer) error {
	names := make([]string, len(bufs))
	for i, d := range bufs {
		if !d.Valid() {
			return invalid("DrawBuffers", "buffer", d)
		}
		names[i] = d.String()
	}
	b.push(wire.DrawBuffers{Buffers: names})
	return nil
}
