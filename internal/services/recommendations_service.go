package services

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/famigo-app/api/internal/helpers"
	"github.com/famigo-app/api/internal/llm"
	"github.com/famigo-app/api/internal/models"
)

const (
	// Venue summaries sent upstream are bounded for token efficiency.
	maxPromptVenues  = 10
	maxPromptDescLen = 100
)

type RecommendationRequest struct {
	UserLocation struct {
		City        string              `json:"city"`
		Coordinates *models.Coordinates `json:"coordinates,omitempty"`
	} `json:"user_location"`
	KidsAges  []int  `json:"kids_ages"`
	Weather   string `json:"weather"`
	TimeOfDay string `json:"time_of_day"`
}

type Recommendation struct {
	VenueID string `json:"venue_id"`
	Reason  string `json:"reason"`
}

// RecommendationResult keeps the raw upstream text when it does not parse
// as JSON; the request still succeeds in that case, with an empty list.
type RecommendationResult struct {
	Recommendations []Recommendation       `json:"recommendations"`
	Context         *RecommendationRequest `json:"context,omitempty"`
	RawResponse     string                 `json:"raw_response,omitempty"`
}

type venueSummary struct {
	Name        string          `json:"name"`
	Category    string          `json:"category"`
	Description string          `json:"description"`
	AgeRange    models.AgeRange `json:"age_range"`
	Pricing     models.Pricing  `json:"pricing"`
	Rating      float64         `json:"rating"`
	ID          string          `json:"id"`
}

// RecommendationsService is a pure passthrough: it projects venues into a
// prompt, relays the chat completion, and parses the structured reply. No
// local ranking happens here.
type RecommendationsService struct {
	venuesRepo models.VenuesRepo
	completer  llm.ChatCompleter
}

func NewRecommendationsService(venuesRepo models.VenuesRepo, completer llm.ChatCompleter) *RecommendationsService {
	return &RecommendationsService{
		venuesRepo: venuesRepo,
		completer:  completer,
	}
}

func (rs *RecommendationsService) Recommend(ctx context.Context, req *RecommendationRequest) (*RecommendationResult, error) {
	venues, err := rs.venuesRepo.ListVenues(ctx, models.ListCap)
	if err != nil {
		return nil, err
	}

	prompt, err := buildPrompt(req, summarizeVenues(venues))
	if err != nil {
		return nil, err
	}

	text, err := rs.completer.Complete(ctx, prompt)
	if err != nil {
		return nil, fmt.Errorf("recommendation error: %w", err)
	}

	recs, ok := parseRecommendations(text)
	if !ok {
		return &RecommendationResult{Recommendations: []Recommendation{}, RawResponse: text}, nil
	}
	return &RecommendationResult{Recommendations: recs, Context: req}, nil
}

func summarizeVenues(venues []*models.Venue) []venueSummary {
	if len(venues) > maxPromptVenues {
		venues = venues[:maxPromptVenues]
	}
	summaries := make([]venueSummary, 0, len(venues))
	for _, v := range venues {
		summaries = append(summaries, venueSummary{
			Name:        v.Name,
			Category:    v.Category,
			Description: helpers.Truncate(v.Description, maxPromptDescLen),
			AgeRange:    v.AgeRange,
			Pricing:     v.Pricing,
			Rating:      v.Rating,
			ID:          v.ID.Hex(),
		})
	}
	return summaries
}

func buildPrompt(req *RecommendationRequest, venues []venueSummary) (string, error) {
	venuesJSON, err := json.MarshalIndent(venues, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to encode venue summaries: %w", err)
	}

	city := req.UserLocation.City
	if city == "" {
		city = "Unknown"
	}
	weather := req.Weather
	if weather == "" {
		weather = "unknown"
	}
	timeOfDay := req.TimeOfDay
	if timeOfDay == "" {
		timeOfDay = "unknown"
	}

	var b strings.Builder
	fmt.Fprintf(&b, "User Context:\n")
	fmt.Fprintf(&b, "- Location: %s\n", city)
	fmt.Fprintf(&b, "- Kids Ages: %v\n", req.KidsAges)
	fmt.Fprintf(&b, "- Weather: %s\n", weather)
	fmt.Fprintf(&b, "- Time: %s\n\n", timeOfDay)
	fmt.Fprintf(&b, "Available Venues:\n%s\n\n", venuesJSON)
	b.WriteString(`Please recommend top 3 activities from the available venues. Consider:
1. Age appropriateness for the kids
2. Weather conditions (indoor for rain, outdoor for sunshine)
3. Time of day
4. Ratings and reviews

Return ONLY a JSON array with this structure:
[{
    "venue_id": "id",
    "reason": "brief explanation why this is good for them"
}]`)
	return b.String(), nil
}

func parseRecommendations(text string) ([]Recommendation, bool) {
	var recs []Recommendation
	if err := json.Unmarshal([]byte(strings.TrimSpace(text)), &recs); err != nil {
		return nil, false
	}
	return recs, true
}
