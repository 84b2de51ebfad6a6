package services

import (
	"context"
	"encoding/json"
	"strconv"
	"strings"
	"time"

	"stayhub/config"
	"stayhub/dto"
	"stayhub/models"

	"github.com/fiam/gounidecode/unidecode"
	"github.com/schollz/closestmatch"
	"github.com/texttheater/golang-levenshtein/levenshtein"
)

// faqEntry pairs the trigger phrases of a question with its canned answer
type faqEntry struct {
	Keywords []string
	Answer   string
}

var faqEntries = []faqEntry{
	{
		Keywords: []string{"cancel booking", "cancel my booking", "cancellation", "how to cancel"},
		Answer:   "You can cancel a pending or confirmed booking from the booking detail page. Completed stays cannot be cancelled.",
	},
	{
		Keywords: []string{"refund", "money back", "request refund", "partial refund"},
		Answer:   "Open the booking and submit a refund request with the amount and reason. An administrator reviews every request; approved refunds go back to your original payment method.",
	},
	{
		Keywords: []string{"check in time", "checkin", "check-in", "arrival time"},
		Answer:   "Standard check-in starts at 14:00 on your arrival date. Early check-in depends on the hotel.",
	},
	{
		Keywords: []string{"check out time", "checkout", "check-out", "departure time"},
		Answer:   "Standard check-out is before 12:00 on your departure date.",
	},
	{
		Keywords: []string{"payment failed", "card declined", "pay again", "retry payment"},
		Answer:   "A failed payment keeps your booking pending, so you can retry with the same or another card. The room stays reserved for you until the booking is cancelled.",
	},
	{
		Keywords: []string{"price", "weekend price", "why more expensive", "pricing"},
		Answer:   "The total is the nightly rate times the number of nights and the guest count, with a 20% weekend uplift when the stay touches a Friday or Saturday.",
	},
}

const (
	faqSimilarityThreshold = 0.55
	chatContextTTL         = 30 * time.Minute
)

// GetCacheKey scopes chat context per logged-in user, falling back to the
// anonymous session id.
func GetCacheKey(userID int, sessionID string) string {
	if userID > 0 {
		return strconv.Itoa(userID)
	}
	return sessionID
}

func normalizeMessage(input string) string {
	input = strings.TrimSpace(input)
	return strings.ToLower(unidecode.Unidecode(input))
}

func messageSimilarity(a, b string) float64 {
	distance := levenshtein.DistanceForStrings([]rune(a), []rune(b), levenshtein.DefaultOptions)
	maxLen := float64(len(a))
	if float64(len(b)) > maxLen {
		maxLen = float64(len(b))
	}
	if maxLen == 0 {
		return 1.0
	}
	return 1.0 - float64(distance)/maxLen
}

// matchFAQ returns the best FAQ answer for a normalized message, empty when
// nothing clears the threshold.
func matchFAQ(normalized string) string {
	var allKeywords []string
	keywordAnswer := map[string]string{}
	for _, entry := range faqEntries {
		for _, kw := range entry.Keywords {
			nkw := normalizeMessage(kw)
			allKeywords = append(allKeywords, nkw)
			keywordAnswer[nkw] = entry.Answer
		}
	}

	cm := closestmatch.New(allKeywords, []int{2, 3})
	best := cm.Closest(normalized)
	if best == "" {
		return ""
	}
	if strings.Contains(normalized, best) || messageSimilarity(normalized, best) >= faqSimilarityThreshold {
		return keywordAnswer[best]
	}
	return ""
}

// searchHotelsByMessage treats the message as a hotel search when no FAQ
// matched and returns up to five summaries.
func searchHotelsByMessage(normalized string) []dto.HotelSummary {
	var hotels []models.Hotel
	if err := config.DB.Find(&hotels).Error; err != nil {
		return nil
	}

	var summaries []dto.HotelSummary
	for _, h := range hotels {
		name := normalizeMessage(h.Name)
		province := normalizeMessage(h.Province)
		if strings.Contains(normalized, name) || (province != "" && strings.Contains(normalized, province)) ||
			messageSimilarity(normalized, name) >= faqSimilarityThreshold {
			summaries = append(summaries, dto.HotelSummary{
				ID:     h.ID,
				Name:   h.Name,
				Price:  h.BasePrice,
				Rating: h.AverageRating,
				Avatar: h.Avatar,
			})
			if len(summaries) == 5 {
				break
			}
		}
	}
	return summaries
}

// HandleUserMessageWS answers one chat message over the websocket. FAQ
// answers win over hotel lookups; "reset" clears the stored context.
func HandleUserMessageWS(ctx context.Context, redisKey string, userInput string) [][]byte {
	var responses [][]byte

	normalized := normalizeMessage(userInput)
	if normalized == "reset" {
		if config.RedisClient != nil {
			_ = DeleteFromRedis(ctx, config.RedisClient, "chat:"+redisKey)
		}
		responses = append(responses, []byte("Search context cleared."))
		return responses
	}

	if answer := matchFAQ(normalized); answer != "" {
		responses = append(responses, []byte(answer))
		return responses
	}

	summaries := searchHotelsByMessage(normalized)
	if len(summaries) == 0 {
		responses = append(responses, []byte("I could not find anything matching that. Try a hotel name, a city, or a question about bookings, payments or refunds."))
		return responses
	}

	if config.RedisClient != nil {
		_ = SetToRedis(ctx, config.RedisClient, "chat:"+redisKey, normalized, chatContextTTL)
	}

	payload, err := json.Marshal(summaries)
	if err != nil {
		responses = append(responses, []byte("Something went wrong while sending the results."))
		return responses
	}
	responses = append(responses, payload)
	return responses
}
