package glbatch

// Dispatch sends the batch to the transport and empties it.
//
// executeOnce asks the executor to run the batch once without keeping it
// for replay. clearPrevious asks it to drop previously kept batches
// instead of appending to them.
//
// Dispatch does not report delivery: a transport error or a missing
// transport is logged at warn level and the batch is dropped. Either way
// the builder holds an empty batch afterwards, and dispatching it again
// sends a message with no commands.
func (b *Builder) Dispatch(executeOnce, clearPrevious bool) {
	msg := b.Message(executeOnce, clearPrevious)
	defer b.reset()

	log := Logger()
	if b.transport == nil {
		log.Warn("glbatch: no transport, batch dropped",
			"commands", len(msg.Commands),
			"buffers", len(msg.Buffers))
		return
	}
	if err := b.transport.Send(msg); err != nil {
		log.Warn("glbatch: dispatch failed",
			"commands", len(msg.Commands),
			"buffers", len(msg.Buffers),
			"err", err)
		return
	}
	log.Debug("glbatch: batch dispatched",
		"commands", len(msg.Commands),
		"buffers", len(msg.Buffers),
		"payload_bytes", msg.PayloadBytes(),
		"only_once", executeOnce,
		"clear", clearPrevious)
}
