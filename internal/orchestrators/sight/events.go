package sight

import (
	"context"
	"log/slog"

	"github.com/KirkDiggler/rpg-toolkit/core"
	"github.com/KirkDiggler/rpg-toolkit/events"
)

// Event types published on the bus
const (
	EventEyesAdaptationCalculated = "lighting.eyes_adaptation"
	EventGlareCalculated          = "lighting.glare"
)

// Event context keys
const (
	ContextCalculationID   = "calculation_id"
	ContextSpecies         = "species"
	ContextAdaptation      = "eyes_adaptation"
	ContextContrast        = "contrast"
	ContextFromDarkToLight = "from_dark_to_light"
	ContextPerceptionCheck = "perception_check"
	ContextMalus           = "malus"
	ContextShined          = "shined"
)

const entityTypeCharacter = "character"

// characterEntity identifies the character a calculation was made for
type characterEntity struct {
	id string
}

var _ core.Entity = (*characterEntity)(nil)

func (c *characterEntity) GetID() string {
	return c.id
}

func (c *characterEntity) GetType() string {
	return entityTypeCharacter
}

// publish sends the event; a failing subscriber never fails the calculation
func (o *orchestrator) publish(ctx context.Context, eventType, characterID string, values map[string]interface{}) {
	var source core.Entity
	if characterID != "" {
		source = &characterEntity{id: characterID}
	}

	event := events.NewGameEvent(eventType, source, nil)
	for key, value := range values {
		event.Context().Set(key, value)
	}

	if err := o.eventBus.Publish(ctx, event); err != nil {
		slog.WarnContext(ctx, "failed to publish lighting event",
			"event_type", eventType,
			"character_id", characterID,
			"error", err,
		)
	}
}

// SubscribeCalculationLog logs every lighting event at debug level and
// returns the subscription IDs
func SubscribeCalculationLog(bus events.EventBus, logger *slog.Logger) []string {
	keys := []string{
		ContextCalculationID, ContextSpecies, ContextAdaptation, ContextContrast,
		ContextFromDarkToLight, ContextPerceptionCheck, ContextMalus, ContextShined,
	}

	ids := make([]string, 0, 2)
	for _, eventType := range []string{EventEyesAdaptationCalculated, EventGlareCalculated} {
		ids = append(ids, bus.SubscribeFunc(eventType, 100, func(ctx context.Context, e events.Event) error {
			attrs := []any{"event_type", eventType}
			if source := e.Source(); source != nil {
				attrs = append(attrs, "character_id", source.GetID())
			}
			for _, key := range keys {
				if value, ok := e.Context().Get(key); ok {
					attrs = append(attrs, key, value)
				}
			}
			logger.DebugContext(ctx, "Lighting event", attrs...)
			return nil
		}))
	}
	return ids
}
