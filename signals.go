package schematic

import (
	"context"
	"time"

	"github.com/zoobzio/capitan"
)

// Signals for entity processing events.
var (
	SignalProcessorCreated  = capitan.NewSignal("schematic.processor.created", "Processor instantiated")
	SignalParseStart        = capitan.NewSignal("schematic.parse.start", "Validating deserialization beginning")
	SignalParseComplete     = capitan.NewSignal("schematic.parse.complete", "Validating deserialization finished")
	SignalSerializeStart    = capitan.NewSignal("schematic.serialize.start", "Serialization beginning")
	SignalSerializeComplete = capitan.NewSignal("schematic.serialize.complete", "Serialization finished")
	SignalCloneComplete     = capitan.NewSignal("schematic.clone.complete", "Clone cycle finished")
)

// Keys for typed event data.
var (
	KeyTypeName    = capitan.NewStringKey("type_name")
	KeySize        = capitan.NewIntKey("size")
	KeyDuration    = capitan.NewDurationKey("duration")
	KeyError       = capitan.NewErrorKey("error")
	KeyMaskedCount = capitan.NewIntKey("masked_count")
	KeyIssueCount  = capitan.NewIntKey("issue_count")
)

// emitProcessorCreated emits an event when a processor is created.
func emitProcessorCreated(ctx context.Context, typeName string) {
	capitan.Emit(ctx, SignalProcessorCreated,
		KeyTypeName.Field(typeName),
	)
}

// emitParseStart emits an event when deserialization begins.
func emitParseStart(ctx context.Context, typeName string, size int) {
	capitan.Emit(ctx, SignalParseStart,
		KeyTypeName.Field(typeName),
		KeySize.Field(size),
	)
}

// emitParseComplete emits an event when deserialization finishes.
func emitParseComplete(ctx context.Context, typeName string, duration time.Duration, issues int, err error) {
	fields := []capitan.Field{
		KeyTypeName.Field(typeName),
		KeyDuration.Field(duration),
		KeyIssueCount.Field(issues),
	}
	if err != nil {
		fields = append(fields, KeyError.Field(err))
		capitan.Error(ctx, SignalParseComplete, fields...)
	} else {
		capitan.Emit(ctx, SignalParseComplete, fields...)
	}
}

// emitSerializeStart emits an event when serialization begins.
func emitSerializeStart(ctx context.Context, typeName string) {
	capitan.Emit(ctx, SignalSerializeStart,
		KeyTypeName.Field(typeName),
	)
}

// emitSerializeComplete emits an event when serialization finishes.
func emitSerializeComplete(ctx context.Context, typeName string, size int, duration time.Duration, masked int, err error) {
	fields := []capitan.Field{
		KeyTypeName.Field(typeName),
		KeySize.Field(size),
		KeyDuration.Field(duration),
		KeyMaskedCount.Field(masked),
	}
	if err != nil {
		fields = append(fields, KeyError.Field(err))
		capitan.Error(ctx, SignalSerializeComplete, fields...)
	} else {
		capitan.Emit(ctx, SignalSerializeComplete, fields...)
	}
}

// emitCloneComplete emits an event when a clone cycle finishes.
func emitCloneComplete(ctx context.Context, typeName string, duration time.Duration, err error) {
	fields := []capitan.Field{
		KeyTypeName.Field(typeName),
		KeyDuration.Field(duration),
	}
	if err != nil {
		fields = append(fields, KeyError.Field(err))
		capitan.Error(ctx, SignalCloneComplete, fields...)
	} else {
		capitan.Emit(ctx, SignalCloneComplete, fields...)
	}
}
