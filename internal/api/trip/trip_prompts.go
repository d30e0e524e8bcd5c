package trip

import (
	"errors"
	"fmt"

	"github.com/FACorreiaa/go-yatra/internal/types"
)

// Prompt is the system/user message pair sent upstream.
type Prompt struct {
	System string
	User   string
}

// ContentKind is one variant of generated trip content. Each variant validates
// its own request and builds its own prompt.
type ContentKind interface {
	Type() types.ContentType
	Validate(req types.GenerateTripRequest, maxDays int) error
	Prompt(req types.GenerateTripRequest) Prompt
}

var contentKinds = map[types.ContentType]ContentKind{
	types.ContentSchedule:   scheduleKind{},
	types.ContentHistory:    historyKind{},
	types.ContentTraditions: traditionsKind{},
}

// KindFor resolves a content type to its variant.
func KindFor(t types.ContentType) (ContentKind, bool) {
	k, ok := contentKinds[t]
	return k, ok
}

type scheduleKind struct{}

func (scheduleKind) Type() types.ContentType { return types.ContentSchedule }

func (scheduleKind) Validate(req types.GenerateTripRequest, maxDays int) error {
	if req.Days < 1 {
		return errors.New("days is required for schedule and must be at least 1")
	}
	if maxDays > 0 && req.Days > maxDays {
		return fmt.Errorf("days must not exceed %d", maxDays)
	}
	return nil
}

func (scheduleKind) Prompt(req types.GenerateTripRequest) Prompt {
	return Prompt{
		System: `You are a helpful travel guide specializing in Indian tourism. Create concise, practical day-wise trip itineraries. Keep responses clear and easy to understand for tourists. Use simple language and be specific about timings and places.`,
		User: fmt.Sprintf(`Create a %d-day trip itinerary for %s, India. Include:
- Morning, afternoon, and evening activities for each day
- Specific places to visit with estimated time at each location
- Local food recommendations
- Best times to visit each place
- Practical tips for tourists

Format it clearly with day headers and bullet points. Keep it practical and beginner-friendly.`, req.Days, req.City),
	}
}

type historyKind struct{}

func (historyKind) Type() types.ContentType { return types.ContentHistory }

func (historyKind) Validate(types.GenerateTripRequest, int) error { return nil }

func (historyKind) Prompt(req types.GenerateTripRequest) Prompt {
	return Prompt{
		System: `You are a knowledgeable historian specializing in Indian cities. Provide engaging, easy-to-understand historical summaries. Keep it concise but informative.`,
		User: fmt.Sprintf(`Write a brief but engaging history of %s, India (about 150-200 words). Include:
- When and how the city was founded
- Important historical events
- Famous rulers or historical figures
- How the city evolved over time

Keep it interesting and easy to understand for tourists.`, req.City),
	}
}

type traditionsKind struct{}

func (traditionsKind) Type() types.ContentType { return types.ContentTraditions }

func (traditionsKind) Validate(types.GenerateTripRequest, int) error { return nil }

func (traditionsKind) Prompt(req types.GenerateTripRequest) Prompt {
	return Prompt{
		System: `You are a cultural expert on Indian traditions and customs. Explain local traditions in an engaging way that helps tourists understand and respect local culture.`,
		User: fmt.Sprintf(`Describe the local traditions and culture of %s, India (about 150-200 words). Include:
- Major festivals celebrated
- Traditional clothing and attire
- Local cuisine specialties
- Cultural practices and customs
- Art forms or crafts the city is known for

Make it interesting and help tourists connect with local culture.`, req.City),
	}
}
