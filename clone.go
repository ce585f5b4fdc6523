package schematic

import (
	"context"
	"time"
)

// Clone deep-copies the entity through a compact, unmasked serialize/
// deserialize round trip on the same type. The result is structurally
// independent of the original: every nested entity, array, and object value
// is reconstructed. The copy is bounded by what the schema accepts — a
// field outside the declared list does not survive the trip.
func (p *Processor[T, PT]) Clone(e PT) (PT, error) {
	ctx := context.Background()
	start := time.Now()

	var retErr error
	defer func() {
		emitCloneComplete(ctx, p.typeName, time.Since(start), retErr)
	}()

	data, err := p.ToJSON(e)
	if err != nil {
		retErr = err
		return nil, retErr
	}

	out, err := p.FromJSON(data)
	if err != nil {
		retErr = err
		return nil, retErr
	}
	return out, nil
}

// Validate runs the entity through a clone cycle purely for its validation
// side effect and discards the result. Failures propagate unchanged from
// the serializer and deserializer.
func (p *Processor[T, PT]) Validate(e PT) error {
	_, err := p.Clone(e)
	return err
}
