package insights

import (
	"fmt"

	"rescue-dog-favorites/internal/domain/dogs"
	"rescue-dog-favorites/internal/platform/logger"
	"rescue-dog-favorites/internal/platform/metrics"
)

// Calculator combina basic + enhanced. Cualquier falla del cálculo enhanced
// degrada a basic-only y se loguea; nunca corta el render.
type Calculator struct {
	log     logger.Logger
	enhance func([]dogs.Dog) Enhanced
}

func NewCalculator(log logger.Logger) *Calculator {
	if log == nil {
		log = logger.Discard()
	}
	return &Calculator{
		log:     log,
		enhance: ComputeEnhanced,
	}
}

func (c *Calculator) Compute(list []dogs.Dog) Result {
	res := Basic(list)

	malformed := 0
	for _, d := range list {
		if d.Profiler.Malformed {
			malformed++
		}
	}
	if malformed > 0 {
		c.log.Debug("dogs with malformed profiler data", map[string]any{"count": malformed})
	}

	enh, err := c.safeEnhance(list)
	if err != nil {
		metrics.RecordInsights("degraded")
		c.log.Warn("enhanced insights failed, using basic only", map[string]any{"error": err.Error()})
		return res
	}
	if !enh.HasData {
		metrics.RecordInsights("basic")
		return res
	}

	metrics.RecordInsights("enhanced")
	res.apply(enh)
	return res
}

func (c *Calculator) safeEnhance(list []dogs.Dog) (enh Enhanced, err error) {
	defer func() {
		if r := recover(); r != nil {
			enh = Enhanced{}
			err = fmt.Errorf("enhanced insights panic: %v", r)
		}
	}()
	return c.enhance(list), nil
}
