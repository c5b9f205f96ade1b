package analytics

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"

	"github.com/Abhiwarkar/Intellica/internal/models"
)

var (
	sampleEventTypes = []string{
		"page_view", "button_click", "form_submit", "user_signup", "purchase",
		"download", "search", "video_play", "share", "like",
	}
	sampleSources  = []string{"google", "facebook", "direct", "twitter"}
	sampleDevices  = []string{"desktop", "mobile", "tablet"}
	sampleBrowsers = []string{"Chrome", "Firefox", "Safari", "Edge"}
	sampleOS       = []string{"Windows", "macOS", "Linux", "iOS", "Android"}
	sampleCountry  = []string{"US", "UK", "Canada", "India", "Germany"}
)

// SampleDataDays is the lookback window the seeder fills.
const SampleDataDays = 30

// GenerateSampleEvents produces synthetic events for the trailing 30 days,
// 5-50 per day, drawn from fixed event-type/property/metadata pools. The rng
// is injected so tests can seed it.
func GenerateSampleEvents(orgID uuid.UUID, now time.Time, rng *rand.Rand) []models.Event {
	var events []models.Event
	for days := 0; days < SampleDataDays; days++ {
		date := now.AddDate(0, 0, -days)
		perDay := rng.Intn(45) + 5
		for i := 0; i < perDay; i++ {
			ts := time.Date(date.Year(), date.Month(), date.Day(),
				rng.Intn(24), rng.Intn(60), rng.Intn(60), 0, date.Location())
			userID := fmt.Sprintf("user_%d", rng.Intn(1000))
			sessionID := fmt.Sprintf("session_%d", rng.Intn(10000))
			name := sampleEventTypes[rng.Intn(len(sampleEventTypes))]
			properties := map[string]any{
				"page":   fmt.Sprintf("/page-%d", rng.Intn(10)),
				"source": sampleSources[rng.Intn(len(sampleSources))],
			}
			if name == "purchase" {
				// Purchase events carry the amount/product the revenue
				// pipelines aggregate over.
				properties["amount"] = float64(rng.Intn(190) + 10)
				properties["product"] = fmt.Sprintf("Product %c", 'A'+rune(rng.Intn(5)))
			}
			events = append(events, models.Event{
				Name:           name,
				OrganizationID: orgID,
				UserID:         &userID,
				SessionID:      &sessionID,
				Timestamp:      ts,
				Properties:     properties,
				Metadata: map[string]any{
					"browser": sampleBrowsers[rng.Intn(len(sampleBrowsers))],
					"device":  sampleDevices[rng.Intn(len(sampleDevices))],
					"os":      sampleOS[rng.Intn(len(sampleOS))],
					"country": sampleCountry[rng.Intn(len(sampleCountry))],
				},
			})
		}
	}
	return events
}
